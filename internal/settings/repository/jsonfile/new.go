package jsonfile

import (
	"sync"

	"ebaylistingapp/internal/model"
	"ebaylistingapp/internal/settings/repository"
	"ebaylistingapp/pkg/log"
)

type implRepository struct {
	mu       sync.RWMutex
	path     string
	settings model.Settings
	l        log.Logger
}

// New creates a JSON-file-backed Repository for application settings.
// path is the full path of the settings file.
func New(path string, l log.Logger) repository.Repository {
	return &implRepository{path: path, l: l}
}
