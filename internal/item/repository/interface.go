package repository

import (
	"context"

	"ebaylistingapp/internal/model"
)

// Repository is the data store for the item domain: an ordered
// in-memory collection mirrored to a JSON array file.
type Repository interface {
	// Load (re)reads and normalizes the backing file. A missing file
	// yields an empty collection; a corrupt one yields an empty
	// collection AND the underlying *jsonstore.LoadError so the caller
	// can surface a non-fatal warning.
	Load(ctx context.Context) error

	// SetPath re-points the repository at a new storage directory and
	// reloads from it.
	SetPath(ctx context.Context, dir string) error

	// List returns a defensive copy of all records.
	List(ctx context.Context) []model.Item

	// FindByID returns the record with the given id, reporting whether
	// it exists.
	FindByID(ctx context.Context, id string) (model.Item, bool)

	// Append adds a record at the end of the collection.
	Append(ctx context.Context, it model.Item)

	// ReplaceByID swaps the record matching it.ID; false when absent.
	ReplaceByID(ctx context.Context, it model.Item) bool

	// RemoveByID deletes the record; false when absent.
	RemoveByID(ctx context.Context, id string) bool

	// SetStatus overwrites the status of the record; false when absent.
	SetStatus(ctx context.Context, id string, status model.Status) bool

	// RenameCategory rewrites the category field of every record whose
	// category equals oldName, returning how many changed.
	RenameCategory(ctx context.Context, oldName, newName string) int

	// Save writes the full collection back to the backing file.
	// Failure returns *jsonstore.SaveError; memory stays intact.
	Save(ctx context.Context) error
}
