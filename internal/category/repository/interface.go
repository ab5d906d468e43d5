package repository

import (
	"context"

	"ebaylistingapp/internal/model"
)

// Repository is the data store for the category domain: an ordered
// in-memory collection mirrored to a JSON array file.
type Repository interface {
	// Load (re)reads the backing file. A missing file yields an empty
	// collection; a corrupt one yields an empty collection AND the
	// underlying *jsonstore.LoadError so the caller can surface a
	// non-fatal warning.
	Load(ctx context.Context) error

	// SetPath re-points the repository at a new storage directory and
	// reloads from it.
	SetPath(ctx context.Context, dir string) error

	// List returns a defensive copy of all records.
	List(ctx context.Context) []model.Category

	// Get returns the record at index, reporting whether it exists.
	Get(ctx context.Context, index int) (model.Category, bool)

	// Append adds a record at the end of the collection.
	Append(ctx context.Context, c model.Category)

	// Replace swaps the record at index; false when out of range.
	Replace(ctx context.Context, index int, c model.Category) bool

	// Remove deletes the record at index; false when out of range.
	Remove(ctx context.Context, index int) bool

	// Save writes the full collection back to the backing file.
	// Failure returns *jsonstore.SaveError; memory stays intact.
	Save(ctx context.Context) error
}
