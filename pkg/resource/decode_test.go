package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUsersDefaultsMissingFields(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[{"_id": "u1"}]`)
	users, err := DecodeUsers(raw)
	require.NoError(t, err)
	require.Len(t, users, 1)

	u := users[0]
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "Unknown", u.Name)
	assert.Equal(t, "Unknown", u.Status)
	assert.Equal(t, "", u.Email)
	assert.Equal(t, "", u.JoinDate)
	assert.Equal(t, 0, u.TotalTrips)
	assert.Equal(t, 0.0, u.TotalSpent)
	assert.False(t, u.Verified)
}

func TestDecodeUsersFieldFallbacks(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[{
		"_id": "u2",
		"full_name": "Ada Lovelace",
		"phone_number": "+49 151 000",
		"total_trips": "7",
		"total_spent": "255.50",
		"is_verified": 1
	}]`)
	users, err := DecodeUsers(raw)
	require.NoError(t, err)
	require.Len(t, users, 1)

	u := users[0]
	assert.Equal(t, "Ada Lovelace", u.Name)
	assert.Equal(t, "+49 151 000", u.Phone)
	assert.Equal(t, 7, u.TotalTrips)
	assert.Equal(t, 255.50, u.TotalSpent)
	assert.True(t, u.Verified)
}

func TestDecodeUsersEnvelope(t *testing.T) {
	t.Parallel()

	bare := json.RawMessage(`[{"id": "a"}, {"id": "b"}]`)
	wrapped := json.RawMessage(`{"users": [{"id": "a"}, {"id": "b"}]}`)

	fromBare, err := DecodeUsers(bare)
	require.NoError(t, err)
	fromWrapped, err := DecodeUsers(wrapped)
	require.NoError(t, err)
	assert.Equal(t, fromBare, fromWrapped)

	empty, err := DecodeUsers(json.RawMessage(`{"unrelated": true}`))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStatusKeepsDisplayCaseButComparesLowered(t *testing.T) {
	t.Parallel()

	users, err := DecodeUsers(json.RawMessage(`[{"id": "u1", "status": "Active"}]`))
	require.NoError(t, err)
	require.Len(t, users, 1)

	assert.Equal(t, "Active", users[0].Status)
	assert.Equal(t, "active", users[0].StatusValue())
}

func TestDateFormats(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"rfc3339", `{"id": "x", "createdAt": "2024-03-05T10:30:00Z"}`, "2024-03-05"},
		{"date only", `{"id": "x", "createdAt": "2024-03-05"}`, "2024-03-05"},
		{"epoch millis", `{"id": "x", "createdAt": 1709634600000}`, "2024-03-05"},
		{"mongo date string", `{"id": "x", "createdAt": {"$date": "2024-03-05T10:30:00Z"}}`, "2024-03-05"},
		{"mongo number long", `{"id": "x", "createdAt": {"$date": {"$numberLong": "1709634600000"}}}`, "2024-03-05"},
		{"unparseable passthrough", `{"id": "x", "createdAt": "yesterday"}`, "yesterday"},
		{"missing", `{"id": "x"}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			users, err := DecodeUsers(json.RawMessage("[" + tc.raw + "]"))
			require.NoError(t, err)
			require.Len(t, users, 1)
			assert.Equal(t, tc.want, users[0].JoinDate)
		})
	}
}

func TestDecodeBookingsAmountFallbackChain(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[
		{"id": "b1", "totalAmount": 120.5},
		{"id": "b2", "total_price": 99},
		{"id": "b3"}
	]`)
	bookings, err := DecodeBookings(raw)
	require.NoError(t, err)
	require.Len(t, bookings, 3)

	assert.Equal(t, 120.5, bookings[0].TotalAmount)
	assert.Equal(t, 99.0, bookings[1].TotalAmount)
	assert.Equal(t, 0.0, bookings[2].TotalAmount)
	assert.Equal(t, "Unknown", bookings[2].RenterName)
}

func TestDecodeHostsApprovalStatus(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"hosts": [
		{"id": "h1", "approval_status": "Pending"},
		{"id": "h2", "approvalStatus": "approved"},
		{"id": "h3"}
	]}`)
	hosts, err := DecodeHosts(raw)
	require.NoError(t, err)
	require.Len(t, hosts, 3)

	assert.Equal(t, "pending", hosts[0].ApprovalStatus)
	assert.True(t, hosts[0].PendingApproval())
	assert.Equal(t, "approved", hosts[1].ApprovalStatus)
	assert.False(t, hosts[1].PendingApproval())
	// Missing approval defaults to pending so new hosts show up for review.
	assert.True(t, hosts[2].PendingApproval())
}

func TestDecodeCarsAvailabilityDefaultsTrue(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`[
		{"id": "c1", "make": "BMW", "model": "3 Series", "year": 2020},
		{"id": "c2", "is_available": "false"}
	]`)
	cars, err := DecodeCars(raw)
	require.NoError(t, err)
	require.Len(t, cars, 2)

	assert.True(t, cars[0].Available)
	assert.Equal(t, "2020 BMW 3 Series", cars[0].DisplayName())
	assert.False(t, cars[1].Available)
}

func TestDecodeReportDefaults(t *testing.T) {
	t.Parallel()

	report, err := DecodeReport(json.RawMessage(`{"report": {"_id": "r1"}}`))
	require.NoError(t, err)

	assert.Equal(t, "r1", report.ID)
	assert.Equal(t, "Open", report.Status)
	assert.Equal(t, "Medium", report.Priority)
}

func TestDecodeEmployeeActiveMapsToStatus(t *testing.T) {
	t.Parallel()

	employees, err := DecodeEmployees(json.RawMessage(`[
		{"id": "e1", "role": "admin"},
		{"id": "e2", "active": false}
	]`))
	require.NoError(t, err)
	require.Len(t, employees, 2)

	assert.Equal(t, "active", employees[0].StatusValue())
	assert.Equal(t, "inactive", employees[1].StatusValue())
}

func TestDecodeDashboardSnakeCaseFallback(t *testing.T) {
	t.Parallel()

	stats, err := DecodeDashboard(json.RawMessage(`{"stats": {
		"total_users": 42,
		"monthly_revenue": 1234.56,
		"pending_verifications": 3
	}}`))
	require.NoError(t, err)

	assert.Equal(t, 42, stats.TotalUsers)
	assert.Equal(t, 1234.56, stats.MonthlyRevenue)
	assert.Equal(t, 3, stats.PendingVerifications)
}

func TestDecodeNotificationsReadFlag(t *testing.T) {
	t.Parallel()

	notifications, err := DecodeNotifications(json.RawMessage(`{"notifications": [
		{"id": "n1", "message": "Host signup", "is_read": 1},
		{"id": "n2", "message": "New report"}
	]}`))
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	assert.Equal(t, "read", notifications[0].StatusValue())
	assert.Equal(t, "unread", notifications[1].StatusValue())
}
