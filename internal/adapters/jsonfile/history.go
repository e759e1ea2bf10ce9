package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"launchdex/internal/application"
	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// HistoryFile implements ports.HistoryStore as a JSON object keyed by
// canonical program path
type HistoryFile struct {
	path string
}

// Ensure HistoryFile implements HistoryStore
var _ ports.HistoryStore = (*HistoryFile)(nil)

// NewHistoryFile creates a history store backed by path
func NewHistoryFile(path string) *HistoryFile {
	return &HistoryFile{path: path}
}

// Path returns the file backing the store
func (f *HistoryFile) Path() string {
	return f.path
}

// Load reads the history. A missing or empty file is an empty history.
func (f *HistoryFile) Load() (domain.History, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewHistory(), nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.NewHistory(), nil
	}

	var h domain.History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, &application.CorruptDocumentError{Path: f.path, Kind: application.ErrCorruptHistory, Err: err}
	}
	if h == nil {
		h = domain.NewHistory()
	}
	return h, nil
}

// Save replaces the history file
func (f *HistoryFile) Save(h domain.History) error {
	if h == nil {
		h = domain.NewHistory()
	}
	return writeJSON(f.path, h)
}
