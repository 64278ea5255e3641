package listview

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// defaultBulkLimit bounds how many verification requests run at once.
const defaultBulkLimit = 8

// BulkFailure is one failed item of a bulk operation.
type BulkFailure struct {
	ID  string
	Err error
}

// BulkOutcome aggregates a settled fan-out: which ids succeeded, in input
// order, and which failed. Failures are reported as a count plus detail;
// they never abort the remaining items.
type BulkOutcome struct {
	Succeeded []string
	Failures  []BulkFailure
}

// FailureCount returns the number of failed items.
func (o BulkOutcome) FailureCount() int { return len(o.Failures) }

// BulkApply runs op once per id concurrently, waits for every item to
// settle, and partitions the outcomes. Each item gets its own timeout so a
// hung backend call cannot stall the whole batch. Item order in Succeeded
// follows the input order.
func BulkApply(ctx context.Context, ids []string, perItemTimeout time.Duration, op func(context.Context, string) error) BulkOutcome {
	errs := make([]error, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultBulkLimit)
	for i, id := range ids {
		g.Go(func() error {
			itemCtx, cancel := context.WithTimeout(ctx, perItemTimeout)
			defer cancel()
			errs[i] = op(itemCtx, id)
			// Individual failures are collected, not propagated: the rest
			// of the batch still runs.
			return nil
		})
	}
	_ = g.Wait()

	outcome := BulkOutcome{Succeeded: make([]string, 0, len(ids))}
	for i, id := range ids {
		if errs[i] != nil {
			outcome.Failures = append(outcome.Failures, BulkFailure{ID: id, Err: errs[i]})
			continue
		}
		outcome.Succeeded = append(outcome.Succeeded, id)
	}
	return outcome
}
