package resource

import (
	"encoding/json"
	"strings"
)

// DashboardStats are the aggregate counters shown on the dashboard.
type DashboardStats struct {
	TotalUsers           int     `json:"totalUsers"`
	TotalHosts           int     `json:"totalHosts"`
	TotalRenters         int     `json:"totalRenters"`
	TotalCars            int     `json:"totalCars"`
	ActiveCars           int     `json:"activeCars"`
	TotalBookings        int     `json:"totalBookings"`
	ActiveTrips          int     `json:"activeTrips"`
	TotalRevenue         float64 `json:"totalRevenue"`
	MonthlyRevenue       float64 `json:"monthlyRevenue"`
	PendingVerifications int     `json:"pendingVerifications"`
	ReportedIssues       int     `json:"reportedIssues"`
	NewSignups           int     `json:"newSignups"`
}

// DecodeDashboard normalizes a raw /admin/dashboard payload.
func DecodeDashboard(raw json.RawMessage) (DashboardStats, error) {
	m, err := object(raw, "stats", "data")
	if err != nil {
		return DashboardStats{}, err
	}
	return DashboardStats{
		TotalUsers:           count(m, "totalUsers", "total_users"),
		TotalHosts:           count(m, "totalHosts", "total_hosts"),
		TotalRenters:         count(m, "totalRenters", "total_renters"),
		TotalCars:            count(m, "totalCars", "total_cars"),
		ActiveCars:           count(m, "activeCars", "active_cars"),
		TotalBookings:        count(m, "totalBookings", "total_bookings"),
		ActiveTrips:          count(m, "activeTrips", "active_trips"),
		TotalRevenue:         num(m, "totalRevenue", "total_revenue"),
		MonthlyRevenue:       num(m, "monthlyRevenue", "monthly_revenue"),
		PendingVerifications: count(m, "pendingVerifications", "pending_verifications"),
		ReportedIssues:       count(m, "reportedIssues", "reported_issues"),
		NewSignups:           count(m, "newSignups", "new_signups"),
	}, nil
}

// Notification is an admin inbox entry.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

func (n Notification) RecordID() string { return n.ID }

// StatusValue maps the read flag onto the shared status filter.
func (n Notification) StatusValue() string {
	if n.Read {
		return "read"
	}
	return "unread"
}

func (n Notification) SearchText() []string { return []string{n.ID, n.Message} }

// DecodeNotifications normalizes a raw /admin/notifications payload.
func DecodeNotifications(raw json.RawMessage) ([]Notification, error) {
	items, err := listItems(raw, "notifications", "data")
	if err != nil {
		return nil, err
	}
	notifications := make([]Notification, 0, len(items))
	for _, m := range items {
		notifications = append(notifications, Notification{
			ID:        str(m, "", "id", "_id"),
			Type:      strings.ToLower(str(m, "info", "type")),
			Message:   str(m, "", "message", "text"),
			Read:      boolean(m, false, "read", "is_read"),
			CreatedAt: date(m, "createdAt", "created_at", "time"),
		})
	}
	return notifications, nil
}
