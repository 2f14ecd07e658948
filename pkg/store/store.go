// Package store provides whole-document JSON persistence for the three
// scheduling stores (role rules, roster, availability) and for named
// snapshot saves. Every operation reads or writes an entire document;
// there is no partial update. Single-writer by design.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	rulesFileName        = "role_rules.json"
	employeesFileName    = "employees.json"
	availabilityFileName = "availability.json"
)

// Store is the file-backed scheduling context handle. Services receive
// it (or a narrow interface over it) explicitly; there is no ambient
// global state.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory the store is rooted at
func (s *Store) Dir() string {
	return s.dir
}

// readDocument unmarshals one JSON document into v.
// Returns fs.ErrNotExist (wrapped) when the file is absent.
func (s *Store) readDocument(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// writeDocument marshals v and replaces the document in one write
func (s *Store) writeDocument(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
