package jsonfile

import (
	"context"
	"strings"

	"ebaylistingapp/internal/model"
	"ebaylistingapp/pkg/jsonstore"
)

// Load reads the settings file. A missing file leaves the defaults in
// place; a malformed one resets to defaults and returns the
// *jsonstore.LoadError for the caller to surface. A blank storage path
// is treated as unset.
func (r *implRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = model.Settings{}
	if err := jsonstore.ReadObject(r.path, &r.settings); err != nil {
		r.l.Warnf(ctx, "settings/repository/jsonfile.Load: %v", err)
		r.settings = model.Settings{}
		return err
	}

	if r.settings.StoragePath != nil {
		trimmed := strings.TrimSpace(*r.settings.StoragePath)
		if trimmed == "" {
			r.settings.StoragePath = nil
		} else {
			r.settings.StoragePath = &trimmed
		}
	}
	return nil
}

// Get returns the current in-memory settings.
func (r *implRepository) Get(ctx context.Context) model.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// Set replaces the in-memory settings.
func (r *implRepository) Set(ctx context.Context, s model.Settings) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = s
}

// Save writes the settings file.
func (r *implRepository) Save(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := jsonstore.WriteObject(r.path, r.settings); err != nil {
		r.l.Errorf(ctx, "settings/repository/jsonfile.Save: %v", err)
		return err
	}
	return nil
}
