package resource

import (
	"encoding/json"
	"strings"
)

// Report is a user-filed issue: damage, behavior, payment, or safety.
type Report struct {
	ID              string `json:"id"`
	Type            string `json:"type"`
	Category        string `json:"category"`
	ReportedBy      string `json:"reportedBy"`
	ReportedAgainst string `json:"reportedAgainst"`
	BookingID       string `json:"bookingId"`
	Description     string `json:"description"`
	Status          string `json:"status"`
	Priority        string `json:"priority"`
	Date            string `json:"date"`
}

func (r Report) RecordID() string    { return r.ID }
func (r Report) StatusValue() string { return strings.ToLower(r.Status) }

// SearchText matches the reports page: id, involved users, or description.
func (r Report) SearchText() []string {
	return []string{r.ID, r.ReportedBy, r.ReportedAgainst, r.Description}
}

// DecodeReports normalizes a raw /admin/reports payload.
func DecodeReports(raw json.RawMessage) ([]Report, error) {
	items, err := listItems(raw, "reports", "data")
	if err != nil {
		return nil, err
	}
	reports := make([]Report, 0, len(items))
	for _, m := range items {
		reports = append(reports, decodeReport(m))
	}
	return reports, nil
}

// DecodeReport normalizes a single report object, as echoed by
// POST /admin/reports.
func DecodeReport(raw json.RawMessage) (Report, error) {
	m, err := object(raw, "report")
	if err != nil {
		return Report{}, err
	}
	return decodeReport(m), nil
}

func decodeReport(m map[string]any) Report {
	return Report{
		ID:              str(m, "", "id", "_id", "report_id"),
		Type:            str(m, "Damage Report", "type", "report_type"),
		Category:        str(m, "", "category"),
		ReportedBy:      str(m, "Unknown", "reportedBy", "reported_by"),
		ReportedAgainst: str(m, "Unknown", "reportedAgainst", "reported_against"),
		BookingID:       str(m, "", "bookingId", "booking_id"),
		Description:     str(m, "", "description", "details"),
		Status:          str(m, "Open", "status"),
		Priority:        str(m, "Medium", "priority"),
		Date:            date(m, "date", "createdAt", "created_at"),
	}
}
