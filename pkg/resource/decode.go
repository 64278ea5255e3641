// Package resource defines the canonical record types for the FLIITS admin
// API and the decoders that produce them from raw server payloads.
//
// Backend responses are loosely shaped: fields may be missing, spelled in
// camelCase or snake_case, dates may arrive as wrapped objects, and booleans
// as 0/1 or strings. Decoders absorb all of that and always emit records
// with every field populated, so filtering and search never have to guard
// against missing values. A malformed record is defaulted, never rejected.
package resource

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is a canonical admin record. Implemented by every resource type
// in this package; it is what the list-view controller operates on.
type Record interface {
	// RecordID returns the unique merge/delete key within a collection.
	RecordID() string
	// StatusValue returns the record's status lower-cased for filtering.
	StatusValue() string
	// SearchText returns the fields searched by the list view.
	SearchText() []string
}

// listItems extracts the object array from a list payload. The payload may
// be a bare JSON array or an envelope wrapping the array under one of the
// given keys. Anything else yields an empty list.
func listItems(raw json.RawMessage, keys ...string) ([]map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var arr []map[string]any
	if err := json.Unmarshal(raw, &arr); err == nil {
		return arr, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected list payload: %w", err)
	}
	for _, key := range keys {
		inner, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(inner, &arr); err != nil {
			return nil, fmt.Errorf("unexpected %q payload: %w", key, err)
		}
		return arr, nil
	}
	return nil, nil
}

// object decodes a single-object payload, optionally unwrapping an envelope.
func object(raw json.RawMessage, keys ...string) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unexpected object payload: %w", err)
	}
	for _, key := range keys {
		if inner, ok := m[key].(map[string]any); ok {
			return inner, nil
		}
	}
	return m, nil
}

// str returns the first non-empty string among the named fields, or def.
// Non-string scalars are stringified so numeric ids survive.
func str(m map[string]any, def string, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return formatNumber(v)
		case bool:
			return strconv.FormatBool(v)
		}
	}
	return def
}

// num returns the first numeric value among the named fields, or 0.
// Numeric strings are parsed so amounts encoded as "255.50" survive.
func num(m map[string]any, keys ...string) float64 {
	for _, key := range keys {
		switch v := m[key].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return f
			}
		case bool:
			if v {
				return 1
			}
			return 0
		}
	}
	return 0
}

// count is num truncated to an integer, for trip/car counters.
func count(m map[string]any, keys ...string) int {
	return int(num(m, keys...))
}

// boolean coerces boolean-like values: true/false, 0/1, "true"/"1".
// Returns def when none of the fields is present.
func boolean(m map[string]any, def bool, keys ...string) bool {
	for _, key := range keys {
		switch v := m[key].(type) {
		case bool:
			return v
		case float64:
			return v != 0
		case string:
			switch strings.ToLower(v) {
			case "true", "1", "yes":
				return true
			case "false", "0", "no":
				return false
			}
		}
	}
	return def
}

// date returns the first date-like value among the named fields formatted
// as YYYY-MM-DD, or "". Handles plain strings, epoch milliseconds, and
// Mongo extended JSON wrappers ({"$date": ...}, {"$date": {"$numberLong": ...}}).
func date(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := formatDate(m[key]); s != "" {
			return s
		}
	}
	return ""
}

func formatDate(v any) string {
	switch d := v.(type) {
	case string:
		if d == "" {
			return ""
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t.Format("2006-01-02")
			}
		}
		// Not a recognized layout; pass through rather than drop it.
		return d
	case float64:
		return time.UnixMilli(int64(d)).UTC().Format("2006-01-02")
	case map[string]any:
		if inner, ok := d["$date"]; ok {
			switch w := inner.(type) {
			case string, float64:
				return formatDate(w)
			case map[string]any:
				if ms, ok := w["$numberLong"].(string); ok {
					if n, err := strconv.ParseInt(ms, 10, 64); err == nil {
						return time.UnixMilli(n).UTC().Format("2006-01-02")
					}
				}
			}
		}
	}
	return ""
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
