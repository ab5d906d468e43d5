package jsonfile

import (
	"path/filepath"
	"sync"

	"ebaylistingapp/internal/item/repository"
	"ebaylistingapp/internal/model"
	"ebaylistingapp/pkg/log"
)

type implRepository struct {
	mu    sync.RWMutex
	path  string
	items []model.Item
	l     log.Logger
}

// New creates a JSON-file-backed Repository for the item domain. dir
// may be empty when the first-run setup has not completed yet; the
// repository then holds an empty collection until SetPath is called.
func New(dir string, l log.Logger) repository.Repository {
	r := &implRepository{l: l}
	if dir != "" {
		r.path = filepath.Join(dir, model.ItemsFile)
	}
	return r
}
