package resource

import (
	"encoding/json"
	"strings"
)

// Host is a car owner listed on the hosts page. ApprovalStatus tracks the
// verification workflow (pending/approved/rejected) separately from the
// account Status.
type Host struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Status         string  `json:"status"`
	ApprovalStatus string  `json:"approval_status"`
	JoinDate       string  `json:"joinDate"`
	TotalCars      int     `json:"totalCars"`
	TotalTrips     int     `json:"totalTrips"`
	TotalEarnings  float64 `json:"totalEarnings"`
	Rating         float64 `json:"rating"`
	Verified       bool    `json:"verified"`
}

func (h Host) RecordID() string    { return h.ID }
func (h Host) StatusValue() string { return strings.ToLower(h.Status) }

func (h Host) SearchText() []string { return []string{h.ID, h.Name, h.Email} }

// PendingApproval reports whether the host awaits verification.
func (h Host) PendingApproval() bool {
	return strings.EqualFold(h.ApprovalStatus, "pending")
}

// DecodeHosts normalizes a raw /admin/hosts payload.
func DecodeHosts(raw json.RawMessage) ([]Host, error) {
	items, err := listItems(raw, "hosts", "data")
	if err != nil {
		return nil, err
	}
	hosts := make([]Host, 0, len(items))
	for _, m := range items {
		hosts = append(hosts, decodeHost(m))
	}
	return hosts, nil
}

func decodeHost(m map[string]any) Host {
	return Host{
		ID:             str(m, "", "id", "_id"),
		Name:           str(m, "Unknown", "name", "full_name", "fullName"),
		Email:          str(m, "", "email"),
		Phone:          str(m, "", "phone", "phone_number"),
		Status:         str(m, "Unknown", "status", "account_status"),
		ApprovalStatus: strings.ToLower(str(m, "pending", "approval_status", "approvalStatus")),
		JoinDate:       date(m, "joinDate", "join_date", "createdAt", "created_at"),
		TotalCars:      count(m, "totalCars", "total_cars", "cars"),
		TotalTrips:     count(m, "totalTrips", "total_trips", "trips"),
		TotalEarnings:  num(m, "totalEarnings", "total_earnings", "earnings"),
		Rating:         num(m, "rating", "average_rating", "avg_rating"),
		Verified:       boolean(m, false, "verified", "is_verified"),
	}
}
