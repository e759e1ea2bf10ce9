package ports

import "launchdex/internal/domain"

// IndexStore persists the program index
type IndexStore interface {
	// Load returns the persisted programs in stored order
	Load() ([]domain.Program, error)

	// Save replaces the persisted index with programs
	Save(programs []domain.Program) error
}

// HistoryStore persists launch statistics
type HistoryStore interface {
	// Load returns the persisted history. A store that has never been
	// written returns an empty history and no error.
	Load() (domain.History, error)

	// Save replaces the persisted history with h
	Save(h domain.History) error
}
