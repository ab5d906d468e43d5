package settings

import "context"

// UseCase defines the business logic interface for application settings.
type UseCase interface {
	// Detail returns the current settings. FirstRun is set until a
	// storage path exists.
	Detail(ctx context.Context) (DetailOutput, error)

	// Update persists the fullscreen preference.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)

	// SetStoragePath resolves the storage directory under the chosen
	// base path, creates it, persists the setting and announces the
	// change so the stores re-point at the new location.
	SetStoragePath(ctx context.Context, input SetStoragePathInput) (SetStoragePathOutput, error)
}
