package resource

import (
	"encoding/json"
	"strings"
)

// User is a platform account (renter or host) as shown on the users page.
type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	UserType   string  `json:"userType"`
	Status     string  `json:"status"`
	JoinDate   string  `json:"joinDate"`
	TotalTrips int     `json:"totalTrips"`
	TotalSpent float64 `json:"totalSpent"`
	Verified   bool    `json:"verified"`
}

func (u User) RecordID() string    { return u.ID }
func (u User) StatusValue() string { return strings.ToLower(u.Status) }

// SearchText matches the users page: search by id, name, or email.
func (u User) SearchText() []string { return []string{u.ID, u.Name, u.Email} }

// DecodeUsers normalizes a raw /admin/users payload.
func DecodeUsers(raw json.RawMessage) ([]User, error) {
	items, err := listItems(raw, "users", "data")
	if err != nil {
		return nil, err
	}
	users := make([]User, 0, len(items))
	for _, m := range items {
		users = append(users, decodeUser(m))
	}
	return users, nil
}

func decodeUser(m map[string]any) User {
	return User{
		ID:         str(m, "", "id", "_id"),
		Name:       str(m, "Unknown", "name", "full_name", "fullName"),
		Email:      str(m, "", "email"),
		Phone:      str(m, "", "phone", "phone_number", "phoneNumber"),
		UserType:   str(m, "Renter", "userType", "user_type", "type"),
		Status:     str(m, "Unknown", "status", "account_status"),
		JoinDate:   date(m, "joinDate", "join_date", "createdAt", "created_at", "date_created"),
		TotalTrips: count(m, "totalTrips", "total_trips", "trips"),
		TotalSpent: num(m, "totalSpent", "total_spent", "totalEarned", "total_earned"),
		Verified:   boolean(m, false, "verified", "is_verified"),
	}
}
