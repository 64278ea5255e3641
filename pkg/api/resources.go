package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/fliits/fliitsctl/pkg/resource"
)

// Users

// ListUsers returns all platform users, normalized.
func (c *Client) ListUsers(ctx context.Context) ([]resource.User, error) {
	raw, err := c.get(ctx, "/admin/users")
	if err != nil {
		return nil, err
	}
	return resource.DecodeUsers(raw)
}

// UpdateUser patches a user and returns the server's partial response
// (nil when the server answers 204).
func (c *Client) UpdateUser(ctx context.Context, id string, updates map[string]any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, "/admin/users/"+url.PathEscape(id), updates)
}

// DeleteUser removes a user account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin/users/"+url.PathEscape(id), nil)
	return err
}

// Hosts

// ListHosts returns all hosts, normalized.
func (c *Client) ListHosts(ctx context.Context) ([]resource.Host, error) {
	raw, err := c.get(ctx, "/admin/hosts")
	if err != nil {
		return nil, err
	}
	return resource.DecodeHosts(raw)
}

// UpdateHost replaces host fields via PUT and returns the server's
// partial response.
func (c *Client) UpdateHost(ctx context.Context, id string, updates map[string]any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, "/admin/hosts/"+url.PathEscape(id), updates)
}

// Cars

// ListCars returns all car listings, normalized.
func (c *Client) ListCars(ctx context.Context) ([]resource.Car, error) {
	raw, err := c.get(ctx, "/admin/cars")
	if err != nil {
		return nil, err
	}
	return resource.DecodeCars(raw)
}

// UpdateCar patches a car listing and returns the server's partial response.
func (c *Client) UpdateCar(ctx context.Context, id string, updates map[string]any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, "/admin/cars/"+url.PathEscape(id), updates)
}

// Bookings

// ListBookings returns all bookings, normalized.
func (c *Client) ListBookings(ctx context.Context) ([]resource.Booking, error) {
	raw, err := c.get(ctx, "/admin/bookings")
	if err != nil {
		return nil, err
	}
	return resource.DecodeBookings(raw)
}

// UpdateBooking replaces booking fields via PUT and returns the server's
// partial response.
func (c *Client) UpdateBooking(ctx context.Context, id string, updates map[string]any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, "/admin/bookings/"+url.PathEscape(id), updates)
}

// Payments

// ListPayments returns all payments, normalized. Read-mostly: there is no
// payment mutate endpoint.
func (c *Client) ListPayments(ctx context.Context) ([]resource.Payment, error) {
	raw, err := c.get(ctx, "/admin/payments")
	if err != nil {
		return nil, err
	}
	return resource.DecodePayments(raw)
}

// ListCommissions returns the platform commission ledger, normalized.
func (c *Client) ListCommissions(ctx context.Context) ([]resource.Commission, error) {
	raw, err := c.get(ctx, "/admin/commissions")
	if err != nil {
		return nil, err
	}
	return resource.DecodeCommissions(raw)
}

// Reports

// ListReports returns all filed reports, normalized.
func (c *Client) ListReports(ctx context.Context) ([]resource.Report, error) {
	raw, err := c.get(ctx, "/admin/reports")
	if err != nil {
		return nil, err
	}
	return resource.DecodeReports(raw)
}

// CreateReport files a new report and returns the server echo, normalized.
func (c *Client) CreateReport(ctx context.Context, report map[string]any) (resource.Report, error) {
	raw, err := c.do(ctx, http.MethodPost, "/admin/reports", report)
	if err != nil {
		return resource.Report{}, err
	}
	return resource.DecodeReport(raw)
}

// UpdateReport patches a report and returns the server's partial response.
func (c *Client) UpdateReport(ctx context.Context, id string, updates map[string]any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, "/admin/reports/"+url.PathEscape(id), updates)
}

// Employees

// ListEmployees returns all console operator accounts, normalized.
func (c *Client) ListEmployees(ctx context.Context) ([]resource.Employee, error) {
	raw, err := c.get(ctx, "/admin/employees")
	if err != nil {
		return nil, err
	}
	return resource.DecodeEmployees(raw)
}

// RegisterEmployee creates an operator account and returns it normalized.
func (c *Client) RegisterEmployee(ctx context.Context, email, password, name, role string) (resource.Employee, error) {
	raw, err := c.do(ctx, http.MethodPost, "/admin/auth/register", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"role":     role,
	})
	if err != nil {
		return resource.Employee{}, err
	}
	return resource.DecodeEmployee(raw)
}

// UpdateEmployee patches an operator account and returns the server's
// partial response.
func (c *Client) UpdateEmployee(ctx context.Context, id string, updates map[string]any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, "/admin/employees/"+url.PathEscape(id), updates)
}

// DeleteEmployee removes an operator account.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin/employees/"+url.PathEscape(id), nil)
	return err
}

// Dashboard

// Dashboard returns the aggregate platform counters.
func (c *Client) Dashboard(ctx context.Context) (resource.DashboardStats, error) {
	raw, err := c.get(ctx, "/admin/dashboard")
	if err != nil {
		return resource.DashboardStats{}, err
	}
	return resource.DecodeDashboard(raw)
}

// ListNotifications returns the admin inbox, normalized.
func (c *Client) ListNotifications(ctx context.Context) ([]resource.Notification, error) {
	raw, err := c.get(ctx, "/admin/notifications")
	if err != nil {
		return nil, err
	}
	return resource.DecodeNotifications(raw)
}

// MarkNotificationsRead flags the whole inbox as read.
func (c *Client) MarkNotificationsRead(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/admin/notifications/read-all", nil)
	return err
}

// DeleteNotification removes a single notification.
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin/notifications/"+url.PathEscape(id), nil)
	return err
}
