package jsonfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ebaylistingapp/internal/item/repository/jsonfile"
	"ebaylistingapp/internal/model"
	"ebaylistingapp/pkg/jsonstore"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func writeItems(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, model.ItemsFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadNormalization(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Id Assigned", func(t *testing.T) {
		dir := t.TempDir()
		writeItems(t, dir, `[{"name": "Phone", "category": "Electronics"}]`)

		repo := jsonfile.New(dir, nopLogger{})
		repo.Load(ctx)

		got := repo.List(ctx)
		if len(got) != 1 {
			t.Fatalf("expected 1 item, got %d", len(got))
		}
		if got[0].ID == "" {
			t.Error("expected generated id")
		}
	})

	t.Run("Status Defaults To Active", func(t *testing.T) {
		dir := t.TempDir()
		writeItems(t, dir, `[
			{"id": "a", "name": "Phone"},
			{"id": "b", "name": "Lamp", "status": "ended"},
			{"id": "c", "name": "Desk", "status": "ARCHIVED"}
		]`)

		repo := jsonfile.New(dir, nopLogger{})
		repo.Load(ctx)

		got := repo.List(ctx)
		if got[0].Status != model.StatusActive {
			t.Errorf("missing status: expected active, got %q", got[0].Status)
		}
		if got[1].Status != model.StatusEnded {
			t.Errorf("expected ended, got %q", got[1].Status)
		}
		if got[2].Status != model.StatusActive {
			t.Errorf("unknown status: expected active, got %q", got[2].Status)
		}
	})

	t.Run("Strings Trimmed", func(t *testing.T) {
		dir := t.TempDir()
		writeItems(t, dir, `[{
			"id": " a1 ",
			"category": " Electronics ",
			"name": " Phone ",
			"description": " Barely used ",
			"notes": " box included ",
			"date_added": " 2024-01-01 ",
			"end_date": " 2024-01-10 ",
			"image_url": " http://example.com/p.jpg "
		}]`)

		repo := jsonfile.New(dir, nopLogger{})
		repo.Load(ctx)

		got := repo.List(ctx)[0]
		want := model.Item{
			ID:          "a1",
			Category:    "Electronics",
			Name:        "Phone",
			Description: "Barely used",
			Notes:       "box included",
			DateAdded:   "2024-01-01",
			EndDate:     "2024-01-10",
			ImageURL:    "http://example.com/p.jpg",
			Status:      model.StatusActive,
		}
		if got != want {
			t.Errorf("normalization mismatch:\n got %+v\nwant %+v", got, want)
		}
	})

	t.Run("Non Object Entries Dropped", func(t *testing.T) {
		dir := t.TempDir()
		writeItems(t, dir, `[{"id": "a", "name": "Phone"}, "junk", 12, null]`)

		repo := jsonfile.New(dir, nopLogger{})
		repo.Load(ctx)

		if got := repo.List(ctx); len(got) != 1 {
			t.Errorf("expected 1 item, got %d", len(got))
		}
	})

	t.Run("Corrupt File Yields Empty Plus LoadError", func(t *testing.T) {
		dir := t.TempDir()
		writeItems(t, dir, `[{"id": "a"`)

		repo := jsonfile.New(dir, nopLogger{})
		err := repo.Load(ctx)

		var loadErr *jsonstore.LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *LoadError, got %v", err)
		}
		if got := repo.List(ctx); len(got) != 0 {
			t.Errorf("expected empty collection, got %v", got)
		}
	})
}

func TestMutations(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		dir := t.TempDir()
		repo := jsonfile.New(dir, nopLogger{})

		it := model.Item{
			ID:          "a1",
			Category:    "Electronics",
			Name:        "Phone",
			Description: "x",
			DateAdded:   "2024-01-01",
			EndDate:     "2024-01-10",
			Status:      model.StatusActive,
		}
		repo.Append(ctx, it)
		if err := repo.Save(ctx); err != nil {
			t.Fatalf("save: %v", err)
		}

		fresh := jsonfile.New(dir, nopLogger{})
		if err := fresh.Load(ctx); err != nil {
			t.Fatalf("load: %v", err)
		}
		got := fresh.List(ctx)
		if len(got) != 1 || got[0] != it {
			t.Errorf("round trip mismatch: %+v", got)
		}
	})

	t.Run("FindByID ReplaceByID RemoveByID", func(t *testing.T) {
		repo := jsonfile.New(t.TempDir(), nopLogger{})
		repo.Append(ctx, model.Item{ID: "a1", Name: "Phone", Status: model.StatusActive})

		if _, ok := repo.FindByID(ctx, "missing"); ok {
			t.Error("expected miss for unknown id")
		}

		if repo.ReplaceByID(ctx, model.Item{ID: "missing"}) {
			t.Error("expected ReplaceByID miss")
		}
		if !repo.ReplaceByID(ctx, model.Item{ID: "a1", Name: "Lamp", Status: model.StatusActive}) {
			t.Error("expected ReplaceByID hit")
		}
		if got, _ := repo.FindByID(ctx, "a1"); got.Name != "Lamp" {
			t.Errorf("expected Lamp, got %+v", got)
		}

		if repo.RemoveByID(ctx, "missing") {
			t.Error("expected RemoveByID miss")
		}
		if !repo.RemoveByID(ctx, "a1") {
			t.Error("expected RemoveByID hit")
		}
		if got := repo.List(ctx); len(got) != 0 {
			t.Errorf("expected empty, got %v", got)
		}
	})

	t.Run("SetStatus", func(t *testing.T) {
		repo := jsonfile.New(t.TempDir(), nopLogger{})
		repo.Append(ctx, model.Item{ID: "a1", Status: model.StatusActive})

		if !repo.SetStatus(ctx, "a1", model.StatusEnded) {
			t.Error("expected SetStatus hit")
		}
		if got, _ := repo.FindByID(ctx, "a1"); got.Status != model.StatusEnded {
			t.Errorf("expected ended, got %q", got.Status)
		}
		if repo.SetStatus(ctx, "missing", model.StatusEnded) {
			t.Error("expected SetStatus miss")
		}
	})

	t.Run("RenameCategory", func(t *testing.T) {
		repo := jsonfile.New(t.TempDir(), nopLogger{})
		repo.Append(ctx, model.Item{ID: "a", Category: "Books"})
		repo.Append(ctx, model.Item{ID: "b", Category: "Books"})
		repo.Append(ctx, model.Item{ID: "c", Category: "Games"})

		if n := repo.RenameCategory(ctx, "Books", "Literature"); n != 2 {
			t.Errorf("expected 2 renames, got %d", n)
		}
		if got, _ := repo.FindByID(ctx, "c"); got.Category != "Games" {
			t.Errorf("unrelated item touched: %+v", got)
		}
	})

	t.Run("List Is Defensive Copy", func(t *testing.T) {
		repo := jsonfile.New(t.TempDir(), nopLogger{})
		repo.Append(ctx, model.Item{ID: "a1", Name: "Phone"})

		list := repo.List(ctx)
		list[0].Name = "Mutated"

		if got, _ := repo.FindByID(ctx, "a1"); got.Name != "Phone" {
			t.Errorf("internal state mutated through List: %+v", got)
		}
	})
}
