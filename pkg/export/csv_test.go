package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type row struct {
	ID   string
	Note string
}

func rowColumns() []Column[row] {
	return []Column[row]{
		{Header: "ID", Value: func(r row) string { return r.ID }},
		{Header: "Note", Value: func(r row) string { return r.Note }},
	}
}

func TestWriteCSVQuotesSpecialCharacters(t *testing.T) {
	t.Parallel()

	rows := []row{
		{ID: "1", Note: "plain"},
		{ID: "2", Note: `He said "hi", then left` + "\nbye"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, rowColumns()))

	got := buf.String()
	assert.True(t, strings.HasPrefix(got, "ID,Note\n"))
	assert.Contains(t, got, "1,plain\n")
	// Embedded quotes doubled, whole field wrapped.
	assert.Contains(t, got, `2,"He said ""hi"", then left`+"\nbye\"")
}

func TestWriteCSVEmptyViewStillWritesHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, rowColumns()))
	assert.Equal(t, "ID,Note\n", buf.String())
}

func TestWriteCSVRowCountMatchesInput(t *testing.T) {
	t.Parallel()

	rows := []row{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows, rowColumns()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 4) // header + 3 rows
}

func TestFilenameIsFilesystemSafe(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 25, 14, 30, 5, 0, time.UTC)
	name := Filename("bookings", "csv", now)

	assert.Equal(t, "bookings_2024-01-25_14-30-05.csv", name)
	assert.NotContains(t, name, ":")
	assert.NotContains(t, name, "T")
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	t.Parallel()

	rows := []row{{ID: "1", Note: "first"}, {ID: "2", Note: "second"}}
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, "Bookings", rows, rowColumns()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cells, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, cells, 3)
	assert.Equal(t, []string{"ID", "Note"}, cells[0])
	assert.Equal(t, []string{"2", "second"}, cells[2])
}
