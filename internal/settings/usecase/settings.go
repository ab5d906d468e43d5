package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ebaylistingapp/internal/eventbus"
	"ebaylistingapp/internal/model"
	"ebaylistingapp/internal/settings"
)

// Detail returns the current settings. FirstRun stays true until a
// storage path has been chosen and saved.
func (uc *implUseCase) Detail(ctx context.Context) (settings.DetailOutput, error) {
	s := uc.repo.Get(ctx)
	return settings.DetailOutput{
		Settings: s,
		FirstRun: s.StoragePath == nil,
		Warning:  uc.loadWarning,
	}, nil
}

// Update persists the fullscreen preference.
func (uc *implUseCase) Update(ctx context.Context, input settings.UpdateInput) (settings.UpdateOutput, error) {
	s := uc.repo.Get(ctx)
	s.Fullscreen = input.Fullscreen
	uc.repo.Set(ctx, s)

	return settings.UpdateOutput{
		Settings: s,
		Warning:  uc.persist(ctx),
	}, nil
}

// SetStoragePath resolves the storage directory under the chosen base
// path and makes it the active one. The base path is absolutized and
// the well-known directory name appended unless the user already picked
// a folder with that name, so re-selecting an existing storage dir does
// not nest another level.
func (uc *implUseCase) SetStoragePath(ctx context.Context, input settings.SetStoragePathInput) (settings.SetStoragePathOutput, error) {
	base := strings.TrimSpace(input.BasePath)
	if base == "" {
		return settings.SetStoragePathOutput{}, settings.ErrInvalidBasePath
	}

	resolved, err := ResolveStorageDir(base)
	if err != nil {
		return settings.SetStoragePathOutput{}, settings.ErrInvalidBasePath
	}

	if err := os.MkdirAll(resolved, 0o755); err != nil {
		uc.l.Errorf(ctx, "uc.SetStoragePath mkdir %s: %v", resolved, err)
		return settings.SetStoragePathOutput{}, fmt.Errorf("%w: %v", settings.ErrCreateStorage, err)
	}

	s := uc.repo.Get(ctx)
	s.StoragePath = &resolved
	uc.repo.Set(ctx, s)
	warning := uc.persist(ctx)

	if uc.bus != nil {
		uc.bus.Publish(ctx, eventbus.Event{
			Topic:   model.TopicStoragePathChanged,
			Payload: resolved,
		})
	}

	return settings.SetStoragePathOutput{
		Settings:    s,
		StoragePath: resolved,
		Warning:     warning,
	}, nil
}

// persist saves the settings file, converting failure into a non-fatal
// warning. A successful save clears a stale load warning since the file
// now reflects memory.
func (uc *implUseCase) persist(ctx context.Context) string {
	if err := uc.repo.Save(ctx); err != nil {
		uc.l.Warnf(ctx, "uc.persist settings: %v", err)
		return err.Error()
	}
	uc.loadWarning = ""
	return ""
}

// ResolveStorageDir maps a user-chosen base path to the storage
// directory: the absolute base with the well-known directory name
// appended, unless the base is already named that.
func ResolveStorageDir(base string) (string, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	if filepath.Base(abs) == model.StorageDirName {
		return abs, nil
	}
	return filepath.Join(abs, model.StorageDirName), nil
}
