package jsonfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ebaylistingapp/internal/model"
	"ebaylistingapp/internal/settings/repository/jsonfile"
	"ebaylistingapp/pkg/jsonstore"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing File Yields Defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		repo := jsonfile.New(path, &mockLogger{})

		if err := repo.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := repo.Get(ctx)
		if s.Fullscreen || s.StoragePath != nil {
			t.Errorf("expected zero-value settings, got %+v", s)
		}
	})

	t.Run("Reads Stored Document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		if err := os.WriteFile(path, []byte(`{"fullscreen": true, "storage_path": "/data/listings"}`), 0o644); err != nil {
			t.Fatal(err)
		}
		repo := jsonfile.New(path, &mockLogger{})

		if err := repo.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s := repo.Get(ctx)
		if !s.Fullscreen {
			t.Error("expected fullscreen true")
		}
		if s.StoragePath == nil || *s.StoragePath != "/data/listings" {
			t.Errorf("unexpected storage path: %v", s.StoragePath)
		}
	})

	t.Run("Blank Storage Path Treated As Unset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		if err := os.WriteFile(path, []byte(`{"fullscreen": false, "storage_path": "   "}`), 0o644); err != nil {
			t.Fatal(err)
		}
		repo := jsonfile.New(path, &mockLogger{})

		if err := repo.Load(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.Get(ctx).StoragePath != nil {
			t.Error("expected blank storage path to become nil")
		}
	})

	t.Run("Corrupt File Yields Defaults And LoadError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
			t.Fatal(err)
		}
		repo := jsonfile.New(path, &mockLogger{})

		err := repo.Load(ctx)
		var loadErr *jsonstore.LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *jsonstore.LoadError, got %v", err)
		}
		s := repo.Get(ctx)
		if s.Fullscreen || s.StoragePath != nil {
			t.Errorf("expected defaults after corrupt load, got %+v", s)
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "settings.json")

	repo := jsonfile.New(path, &mockLogger{})
	storage := "/data/listings/ebaylistingsconfig"
	repo.Set(ctx, model.Settings{Fullscreen: true, StoragePath: &storage})

	if err := repo.Save(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fresh := jsonfile.New(path, &mockLogger{})
	if err := fresh.Load(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := fresh.Get(ctx)
	if !s.Fullscreen || s.StoragePath == nil || *s.StoragePath != storage {
		t.Errorf("round trip mismatch: %+v", s)
	}
}
