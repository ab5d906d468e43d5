package jsonfile

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"ebaylistingapp/internal/model"
	"ebaylistingapp/pkg/jsonstore"
)

// Load reads and normalizes the backing file. Records with an empty
// name are dropped; an absent or non-positive duration falls back to
// the default. On a read/parse failure the collection resets to empty
// and the *jsonstore.LoadError is returned for the caller to surface.
func (r *implRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(ctx)
}

func (r *implRepository) loadLocked(ctx context.Context) error {
	r.categories = nil
	if r.path == "" {
		return nil
	}

	records, err := jsonstore.ReadArray(r.path)
	if err != nil {
		r.l.Warnf(ctx, "category/repository/jsonfile.Load: %v", err)
		return err
	}

	parsed := make([]model.Category, 0, len(records))
	for _, entry := range records {
		c := model.Category{
			Name:        trimField(entry, "name"),
			Description: trimField(entry, "description"),
			Days:        trimField(entry, "days"),
		}
		if c.Name == "" {
			continue
		}
		if !validDays(c.Days) {
			c.Days = model.DefaultCategoryDays
		}
		parsed = append(parsed, c)
	}
	r.categories = parsed
	return nil
}

// SetPath re-points the repository at dir and reloads from it.
func (r *implRepository) SetPath(ctx context.Context, dir string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = filepath.Join(dir, model.CategoriesFile)
	return r.loadLocked(ctx)
}

// List returns a defensive copy of all records.
func (r *implRepository) List(ctx context.Context) []model.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Get returns the record at index, reporting whether it exists.
func (r *implRepository) Get(ctx context.Context, index int) (model.Category, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.categories) {
		return model.Category{}, false
	}
	return r.categories[index], true
}

// Append adds a record at the end of the collection.
func (r *implRepository) Append(ctx context.Context, c model.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, c)
}

// Replace swaps the record at index; false when out of range.
func (r *implRepository) Replace(ctx context.Context, index int, c model.Category) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.categories) {
		return false
	}
	r.categories[index] = c
	return true
}

// Remove deletes the record at index; false when out of range.
func (r *implRepository) Remove(ctx context.Context, index int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.categories) {
		return false
	}
	r.categories = append(r.categories[:index], r.categories[index+1:]...)
	return true
}

// Save writes the full collection to the backing file.
func (r *implRepository) Save(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.path == "" {
		return nil
	}
	if err := jsonstore.WriteArray(r.path, r.categories); err != nil {
		r.l.Errorf(ctx, "category/repository/jsonfile.Save: %v", err)
		return err
	}
	return nil
}

func trimField(entry map[string]any, key string) string {
	s, _ := entry[key].(string)
	return strings.TrimSpace(s)
}

func validDays(days string) bool {
	n, err := strconv.Atoi(days)
	return err == nil && n > 0
}
