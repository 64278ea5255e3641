package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fliits/fliitsctl/pkg/listview"
	"github.com/fliits/fliitsctl/pkg/resource"
)

func sampleUsers() []resource.User {
	return []resource.User{
		{ID: "u1", Name: "Max Weber", Email: "max@example.com", Status: "Active", TotalSpent: 50},
		{ID: "u2", Name: "Lena Braun", Email: "lena@example.com", Status: "Suspended", TotalSpent: 500},
		{ID: "u3", Name: "Omar Haddad", Email: "omar@example.com", Status: "Active", TotalSpent: 150},
	}
}

func staticFetch(users []resource.User) func(context.Context) ([]resource.User, error) {
	return func(context.Context) ([]resource.User, error) { return users, nil }
}

func TestLoadViewAppliesAllFilters(t *testing.T) {
	t.Parallel()

	ctrl, view, err := loadView(context.Background(), staticFetch(sampleUsers()), listFlags{
		status: "active",
		where:  "totalSpent > 100",
	})
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, "u3", view[0].ID)
	// The full collection stays loaded behind the view.
	assert.Equal(t, 3, ctrl.Len())
}

func TestLoadViewRejectsBadWhereExpression(t *testing.T) {
	t.Parallel()

	_, _, err := loadView(context.Background(), staticFetch(sampleUsers()), listFlags{
		where: "totalSpent >",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--where")
}

func TestReconcileMergesServerEcho(t *testing.T) {
	t.Parallel()

	ctrl := listview.New[resource.User]()
	ctrl.SetRecords(sampleUsers())
	rec, ok := ctrl.Select("u1")
	require.True(t, ok)

	merged, err := reconcile(ctrl, rec, json.RawMessage(`{"status": "Suspended"}`), map[string]any{"status": "suspended"})
	require.NoError(t, err)
	assert.Equal(t, "Suspended", merged.Status)
	assert.Equal(t, "Max Weber", merged.Name)

	records := ctrl.Records()
	assert.Equal(t, "Suspended", records[0].Status)
}

func TestReconcileFallsBackToRequestBodyOn204(t *testing.T) {
	t.Parallel()

	ctrl := listview.New[resource.User]()
	ctrl.SetRecords(sampleUsers())
	rec, ok := ctrl.Select("u2")
	require.True(t, ok)

	merged, err := reconcile(ctrl, rec, nil, map[string]any{"status": "active"})
	require.NoError(t, err)
	assert.Equal(t, "active", merged.Status)
	assert.Equal(t, "Lena Braun", merged.Name)
}

func TestParseSetArgsCoercesTypes(t *testing.T) {
	t.Parallel()

	updates, err := parseSetArgs([]string{"status=suspended", "verified=true", "totalTrips=7", "rating=4.5"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"status":     "suspended",
		"verified":   true,
		"totalTrips": 7.0,
		"rating":     4.5,
	}, updates)
}

func TestParseSetArgsRejectsMalformedPairs(t *testing.T) {
	t.Parallel()

	_, err := parseSetArgs([]string{"statussuspended"})
	assert.Error(t, err)
	_, err = parseSetArgs([]string{"=value"})
	assert.Error(t, err)
	_, err = parseSetArgs(nil)
	assert.Error(t, err)
}

func TestWriteExportFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")

	flags := exportFlags{output: path}
	require.NoError(t, writeExport(flags, "users", sampleUsers(), userColumns()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded []resource.User
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded, 3)
}

func TestWriteExportRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	err := writeExport(exportFlags{format: "pdf"}, "users", sampleUsers(), userColumns())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestWriteExportDefaultsToCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "export-test")

	flags := exportFlags{output: path}
	require.NoError(t, writeExport(flags, "users", sampleUsers()[:1], userColumns()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ID,Name,Email")
	assert.Contains(t, string(data), "u1,Max Weber")
}
