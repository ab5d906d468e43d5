// Package jsonstore reads and writes the JSON files backing the stores.
//
// The on-disk convention is a single JSON array per store, written with
// two-space indentation so the files stay human-diffable. Reads are
// deliberately forgiving: a missing file or a non-array top level yields
// an empty collection instead of an error.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadError reports a failed read or parse of a backing file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports a failed write of a backing file.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }

// ReadArray reads a JSON array file into raw records. A missing file is
// not an error: it returns an empty slice. A top-level value that is not
// an array is treated as empty. I/O or parse failures return *LoadError.
func ReadArray(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	entries, ok := raw.([]any)
	if !ok {
		return nil, nil
	}

	// Non-object entries are dropped here so every store sees only
	// map-shaped records.
	records := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		if m, ok := entry.(map[string]any); ok {
			records = append(records, m)
		}
	}
	return records, nil
}

// WriteArray serializes records as an indented JSON array, creating
// parent directories as needed. Failures return *SaveError.
func WriteArray(path string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}

// ReadObject reads a single JSON object file into dst. Missing file is
// not an error and leaves dst untouched. Returns *LoadError on failure.
func ReadObject(path string, dst any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &LoadError{Path: path, Err: err}
	}
	return nil
}

// WriteObject serializes a single JSON object with the same conventions
// as WriteArray.
func WriteObject(path string, src any) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}
