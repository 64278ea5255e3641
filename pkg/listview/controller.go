// Package listview implements the in-memory collection behind every admin
// list command: load, filter, search, select, and reconcile after mutations.
//
// One generic controller replaces the per-page copies the console would
// otherwise need. The collection preserves server response order; the
// filtered view is derived on demand and never stored.
package listview

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// Record is the minimal surface a collection element must expose.
// Satisfied by every type in pkg/resource.
type Record interface {
	RecordID() string
	StatusValue() string
	SearchText() []string
}

// StatusAll is the sentinel status filter matching every record.
const StatusAll = "all"

// Controller owns one page's collection and its view state.
type Controller[T Record] struct {
	mu           sync.Mutex
	records      []T
	searchTerm   string
	statusFilter string
	selectedID   string

	// loadSeq identifies the newest load; responses from superseded loads
	// are discarded so a slow stale fetch cannot overwrite fresh state.
	loadSeq int
	cancel  context.CancelFunc
}

// New creates an empty controller with no filters applied.
func New[T Record]() *Controller[T] {
	return &Controller[T]{statusFilter: StatusAll}
}

// Load fetches the collection. Starting a load cancels any load still in
// flight; if this load is itself superseded or its fetch fails, the
// existing collection is left untouched.
func (c *Controller[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.loadSeq++
	seq := c.loadSeq
	c.mu.Unlock()

	records, err := fetch(ctx)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.loadSeq {
		// A newer load took over while we were waiting.
		return context.Canceled
	}
	c.cancel = nil
	if err != nil {
		return err
	}
	c.records = records
	return nil
}

// SetRecords replaces the collection directly. Used by tests and by
// commands that already hold a decoded list.
func (c *Controller[T]) SetRecords(records []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = records
}

// Records returns a copy of the full collection in server order.
func (c *Controller[T]) Records() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the collection size.
func (c *Controller[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// SetSearchTerm updates the search term; the view recomputes on next read.
func (c *Controller[T]) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
}

// SetStatusFilter updates the status filter ("all" matches everything).
func (c *Controller[T]) SetStatusFilter(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if status == "" {
		status = StatusAll
	}
	c.statusFilter = status
}

// View returns the filtered view: the subset of the collection matching
// the current search term and status filter, in collection order.
func (c *Controller[T]) View() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Filter(c.records, c.searchTerm, c.statusFilter)
}

// Select marks the record with the given id as selected and returns it.
// A stale id (deleted meanwhile) reports false and selects nothing.
func (c *Controller[T]) Select(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, rec := range c.records {
		if rec.RecordID() == id {
			c.selectedID = id
			return rec, true
		}
	}
	var zero T
	c.selectedID = ""
	return zero, false
}

// Selected returns the currently selected record, if it still exists.
func (c *Controller[T]) Selected() (T, bool) {
	c.mu.Lock()
	id := c.selectedID
	c.mu.Unlock()
	if id == "" {
		var zero T
		return zero, false
	}
	return c.Select(id)
}

// Replace swaps the record with the given id for rec. Reports whether a
// record with that id existed.
func (c *Controller[T]) Replace(id string, rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if c.records[i].RecordID() == id {
			c.records[i] = rec
			return true
		}
	}
	return false
}

// Remove deletes the record with the given id from the collection.
// Removing a missing id is a no-op.
func (c *Controller[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.records {
		if c.records[i].RecordID() == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			if c.selectedID == id {
				c.selectedID = ""
			}
			return true
		}
	}
	return false
}

// Append adds a record to the end of the collection.
func (c *Controller[T]) Append(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, rec)
}

// Filter returns the records matching both predicates, preserving order.
// A record matches when the status filter is "all" or equals the record's
// lower-cased status, and when the search term is empty or is a
// case-insensitive substring of at least one searchable field.
func Filter[T Record](records []T, searchTerm, statusFilter string) []T {
	search := strings.ToLower(searchTerm)
	status := strings.ToLower(statusFilter)

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if status != StatusAll && status != "" && rec.StatusValue() != status {
			continue
		}
		if search != "" && !matchesSearch(rec, search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesSearch[T Record](rec T, loweredTerm string) bool {
	for _, field := range rec.SearchText() {
		if strings.Contains(strings.ToLower(field), loweredTerm) {
			return true
		}
	}
	return false
}

// Merge shallow-merges a partial JSON mutation response onto an existing
// record: fields present in partial overwrite, everything else is kept.
// When the server returned no body (204), callers pass the request body
// they sent instead. An unparseable partial leaves the record unchanged.
func Merge[T Record](rec T, partial json.RawMessage) (T, error) {
	if len(partial) == 0 {
		return rec, nil
	}
	merged := rec
	if err := json.Unmarshal(partial, &merged); err != nil {
		return rec, err
	}
	return merged, nil
}
