package settings

import "ebaylistingapp/internal/model"

// --- UseCase Inputs ---

// UpdateInput changes the persisted window preference.
type UpdateInput struct {
	Fullscreen bool
}

// SetStoragePathInput carries the base path the user picked. The
// resolved storage directory may differ (see UseCase.SetStoragePath).
type SetStoragePathInput struct {
	BasePath string
}

// --- UseCase Outputs ---

// DetailOutput is the current settings document. FirstRun is true until
// a storage path has been chosen and saved.
type DetailOutput struct {
	Settings model.Settings
	FirstRun bool
	// Warning carries the non-fatal message when the settings file was
	// malformed and defaults were used.
	Warning string
}

type UpdateOutput struct {
	Settings model.Settings
	Warning  string
}

// SetStoragePathOutput reports the resolved storage directory that the
// stores now read from and write to.
type SetStoragePathOutput struct {
	Settings    model.Settings
	StoragePath string
	Warning     string
}
