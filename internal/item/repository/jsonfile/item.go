package jsonfile

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"ebaylistingapp/internal/model"
	"ebaylistingapp/pkg/jsonstore"
)

// Load reads and normalizes the backing file: string fields trimmed,
// missing ids assigned, unknown statuses mapped to active. Non-object
// entries never make it here (jsonstore drops them). On a read/parse
// failure the collection resets to empty and the *jsonstore.LoadError
// is returned for the caller to surface.
func (r *implRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(ctx)
}

func (r *implRepository) loadLocked(ctx context.Context) error {
	r.items = nil
	if r.path == "" {
		return nil
	}

	records, err := jsonstore.ReadArray(r.path)
	if err != nil {
		r.l.Warnf(ctx, "item/repository/jsonfile.Load: %v", err)
		return err
	}

	parsed := make([]model.Item, 0, len(records))
	for _, entry := range records {
		it := model.Item{
			ID:          trimField(entry, "id"),
			Category:    trimField(entry, "category"),
			Name:        trimField(entry, "name"),
			Description: trimField(entry, "description"),
			Notes:       trimField(entry, "notes"),
			DateAdded:   trimField(entry, "date_added"),
			EndDate:     trimField(entry, "end_date"),
			ImageURL:    trimField(entry, "image_url"),
			Status:      model.NormalizeStatus(trimField(entry, "status")),
		}
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		parsed = append(parsed, it)
	}
	r.items = parsed
	return nil
}

// SetPath re-points the repository at dir and reloads from it.
func (r *implRepository) SetPath(ctx context.Context, dir string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.path = filepath.Join(dir, model.ItemsFile)
	return r.loadLocked(ctx)
}

// List returns a defensive copy of all records.
func (r *implRepository) List(ctx context.Context) []model.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out
}

// FindByID returns the record with the given id.
func (r *implRepository) FindByID(ctx context.Context, id string) (model.Item, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.Item{}, false
}

// Append adds a record at the end of the collection.
func (r *implRepository) Append(ctx context.Context, it model.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, it)
}

// ReplaceByID swaps the record matching it.ID; false when absent.
func (r *implRepository) ReplaceByID(ctx context.Context, it model.Item) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == it.ID {
			r.items[i] = it
			return true
		}
	}
	return false
}

// RemoveByID deletes the record; false when absent.
func (r *implRepository) RemoveByID(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetStatus overwrites the status of the record; false when absent.
func (r *implRepository) SetStatus(ctx context.Context, id string, status model.Status) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Status = status
			return true
		}
	}
	return false
}

// RenameCategory rewrites the soft category reference on every matching
// record, returning how many changed.
func (r *implRepository) RenameCategory(ctx context.Context, oldName, newName string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := 0
	for i := range r.items {
		if r.items[i].Category == oldName {
			r.items[i].Category = newName
			changed++
		}
	}
	return changed
}

// Save writes the full collection to the backing file.
func (r *implRepository) Save(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.path == "" {
		return nil
	}
	if err := jsonstore.WriteArray(r.path, r.items); err != nil {
		r.l.Errorf(ctx, "item/repository/jsonfile.Save: %v", err)
		return err
	}
	return nil
}

func trimField(entry map[string]any, key string) string {
	s, _ := entry[key].(string)
	return strings.TrimSpace(s)
}
