package listview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkApplyPartitionsOutcomes(t *testing.T) {
	t.Parallel()

	ids := []string{"a", "b", "c", "d"}
	failing := map[string]bool{"b": true, "d": true}

	outcome := BulkApply(context.Background(), ids, time.Second, func(ctx context.Context, id string) error {
		if failing[id] {
			return errors.New("rejected")
		}
		return nil
	})

	assert.Equal(t, []string{"a", "c"}, outcome.Succeeded)
	require.Equal(t, 2, outcome.FailureCount())
	assert.Equal(t, "b", outcome.Failures[0].ID)
	assert.Equal(t, "d", outcome.Failures[1].ID)
}

func TestBulkApplyWaitsForEveryItem(t *testing.T) {
	t.Parallel()

	ids := make([]string, 20)
	for i := range ids {
		ids[i] = string(rune('a' + i))
	}

	var mu sync.Mutex
	seen := map[string]bool{}

	outcome := BulkApply(context.Background(), ids, time.Second, func(ctx context.Context, id string) error {
		mu.Lock()
		seen[id] = true
		mu.Unlock()
		return nil
	})

	assert.Len(t, seen, len(ids))
	assert.Equal(t, ids, outcome.Succeeded)
	assert.Zero(t, outcome.FailureCount())
}

func TestBulkApplyOneFailureDoesNotAbortTheRest(t *testing.T) {
	t.Parallel()

	ids := []string{"first", "second", "third"}
	outcome := BulkApply(context.Background(), ids, time.Second, func(ctx context.Context, id string) error {
		if id == "first" {
			return errors.New("boom")
		}
		return nil
	})

	assert.Equal(t, []string{"second", "third"}, outcome.Succeeded)
	assert.Equal(t, 1, outcome.FailureCount())
}

func TestBulkApplyPerItemTimeout(t *testing.T) {
	t.Parallel()

	outcome := BulkApply(context.Background(), []string{"hung", "quick"}, 20*time.Millisecond,
		func(ctx context.Context, id string) error {
			if id == "hung" {
				<-ctx.Done()
				return ctx.Err()
			}
			return nil
		})

	assert.Equal(t, []string{"quick"}, outcome.Succeeded)
	require.Equal(t, 1, outcome.FailureCount())
	assert.ErrorIs(t, outcome.Failures[0].Err, context.DeadlineExceeded)
}

func TestBulkApplyEmptyInput(t *testing.T) {
	t.Parallel()

	outcome := BulkApply(context.Background(), nil, time.Second, func(ctx context.Context, id string) error {
		t.Fatal("op must not run for an empty batch")
		return nil
	})
	assert.Empty(t, outcome.Succeeded)
	assert.Zero(t, outcome.FailureCount())
}
