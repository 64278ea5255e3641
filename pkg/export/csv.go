// Package export serializes filtered admin views to CSV and XLSX files.
//
// Export always receives the filtered view, never the full collection;
// the caller decides what is visible, the exporter only renders it.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// Column maps a record to one exported cell.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// WriteCSV writes a header row followed by one row per record, in
// iteration order. Quoting follows RFC 4180: fields containing a comma,
// double quote, or newline are wrapped in double quotes with embedded
// quotes doubled.
func WriteCSV[T any](w io.Writer, rows []T, columns []Column[T]) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = col.Value(row)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename builds a timestamped, filesystem-safe export name such as
// "bookings_2024-01-25_14-30-05.csv". No colons, no "T" separator.
func Filename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("2006-01-02_15-04-05"), ext)
}
