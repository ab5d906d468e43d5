package repository

import (
	"context"

	"ebaylistingapp/internal/model"
)

// Repository persists the settings document as a single JSON object
// file in the user profile.
type Repository interface {
	// Load reads the settings file. A missing file yields defaults; a
	// malformed one yields defaults AND the underlying
	// *jsonstore.LoadError so the caller can surface a warning.
	Load(ctx context.Context) error

	// Get returns the current in-memory settings.
	Get(ctx context.Context) model.Settings

	// Set replaces the in-memory settings.
	Set(ctx context.Context, s model.Settings)

	// Save writes the settings file. Failure returns
	// *jsonstore.SaveError; memory stays intact.
	Save(ctx context.Context) error
}
