package ports

import "launchdex/internal/domain"

// ProgramScanner discovers launchable programs under a set of roots
type ProgramScanner interface {
	// Scan walks every root and returns the deduplicated catalog.
	// Roots that are missing or unreadable are skipped.
	Scan(roots []domain.Root) (domain.Catalog, error)
}
