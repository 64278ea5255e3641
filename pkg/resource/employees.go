package resource

import (
	"encoding/json"
	"strings"
)

// Employee is a console operator account (admin, manager, or support).
type Employee struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"createdAt"`
}

func (e Employee) RecordID() string { return e.ID }

// StatusValue maps the active flag onto the shared status filter.
func (e Employee) StatusValue() string {
	if e.Active {
		return "active"
	}
	return "inactive"
}

func (e Employee) SearchText() []string { return []string{e.ID, e.Name, e.Email} }

// DecodeEmployees normalizes a raw /admin/employees payload.
func DecodeEmployees(raw json.RawMessage) ([]Employee, error) {
	items, err := listItems(raw, "employees", "data")
	if err != nil {
		return nil, err
	}
	employees := make([]Employee, 0, len(items))
	for _, m := range items {
		employees = append(employees, decodeEmployee(m))
	}
	return employees, nil
}

// DecodeEmployee normalizes a single employee object, as echoed by
// POST /admin/auth/register (which may nest the account under "user").
func DecodeEmployee(raw json.RawMessage) (Employee, error) {
	m, err := object(raw, "user", "employee")
	if err != nil {
		return Employee{}, err
	}
	return decodeEmployee(m), nil
}

func decodeEmployee(m map[string]any) Employee {
	return Employee{
		ID:        str(m, "", "id", "_id"),
		Name:      str(m, "Unknown", "name", "full_name", "fullName"),
		Email:     str(m, "", "email"),
		Role:      titleCase(str(m, "Admin", "role")),
		Active:    boolean(m, true, "active", "is_active"),
		CreatedAt: date(m, "createdAt", "created_at", "date_created", "updated_at"),
	}
}

// titleCase renders roles consistently ("admin" -> "Admin") for display.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}
