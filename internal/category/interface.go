package category

import "context"

// UseCase defines the business logic interface for the category domain.
type UseCase interface {
	// List returns categories, optionally filtered by a case-insensitive
	// substring match over name and description.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Add validates and appends a new category, then persists.
	Add(ctx context.Context, input AddInput) (AddOutput, error)

	// Update replaces the category at input.Index. Renaming cascades to
	// items that reference the old name.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	// Remove deletes the category at index; out-of-range is a no-op.
	Remove(ctx context.Context, index int) (RemoveOutput, error)
}
