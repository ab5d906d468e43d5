package item

import (
	"context"
	"time"
)

// UseCase defines the business logic interface for the item domain.
//
// Every read-for-display (List, Detail) first runs the lifecycle
// evaluation so statuses stay consistent with wall-clock time without a
// background timer.
type UseCase interface {
	// List returns items filtered by status and search, ordered by
	// date_added.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Detail returns a single item. Returns ErrItemNotFound when absent.
	Detail(ctx context.Context, id string) (DetailOutput, error)

	// Add validates and appends a new item, assigning an id, then
	// persists.
	Add(ctx context.Context, input AddInput) (AddOutput, error)

	// Update replaces the record matching input.ID. Returns
	// ErrItemNotFound when absent.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	// Delete removes the record; absent id is a no-op.
	Delete(ctx context.Context, id string) (DeleteOutput, error)

	// End marks the item ended regardless of its end date.
	End(ctx context.Context, id string) (StatusOutput, error)

	// Restore marks the item active regardless of its end date; the
	// next lifecycle pass may immediately re-end it.
	Restore(ctx context.Context, id string) (StatusOutput, error)

	// EvaluateLifecycle ends every active item whose end date is on or
	// before today, persisting when anything changed. Idempotent.
	EvaluateLifecycle(ctx context.Context, today time.Time) (bool, error)
}
