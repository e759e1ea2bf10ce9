package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"launchdex/internal/application"
	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// IndexFile implements ports.IndexStore as a JSON array of programs
type IndexFile struct {
	path string
}

// Ensure IndexFile implements IndexStore
var _ ports.IndexStore = (*IndexFile)(nil)

// NewIndexFile creates an index store backed by path
func NewIndexFile(path string) *IndexFile {
	return &IndexFile{path: path}
}

// Path returns the file backing the store
func (f *IndexFile) Path() string {
	return f.path
}

// Load reads the index. A missing file is reported as ErrIndexMissing so
// the caller can tell the user to build it first.
func (f *IndexFile) Load() ([]domain.Program, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s: run `launchdex index` first", application.ErrIndexMissing, f.path)
		}
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	var programs []domain.Program
	if err := json.Unmarshal(data, &programs); err != nil {
		return nil, &application.CorruptDocumentError{Path: f.path, Kind: application.ErrCorruptIndex, Err: err}
	}
	return programs, nil
}

// Save replaces the index file
func (f *IndexFile) Save(programs []domain.Program) error {
	if programs == nil {
		programs = []domain.Program{}
	}
	return writeJSON(f.path, programs)
}
