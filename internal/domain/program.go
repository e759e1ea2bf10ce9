package domain

import (
	"sort"
	"strings"
)

// Program is a launchable entry in the catalog
type Program struct {
	Title  string     `json:"title"`    // Path relative to the discovery root
	Source SourceKind `json:"source"`   // Where the program was found
	Path   string     `json:"abs_path"` // Absolute path used to launch it
}

// Key returns the canonical identity of the program: its absolute path, case-folded.
func (p Program) Key() string {
	return CanonicalPath(p.Path)
}

// CanonicalPath folds an absolute path into the key used for deduplication
// and history lookups.
func CanonicalPath(path string) string {
	return strings.ToLower(path)
}

// Root is a directory the catalog builder scans
type Root struct {
	Dir       string
	Source    SourceKind
	Recursive bool
}

// Catalog is the deduplicated set of discovered programs, keyed by canonical path.
type Catalog map[string]Program

// Add inserts p, replacing any program already stored under the same key.
func (c Catalog) Add(p Program) {
	c[p.Key()] = p
}

// Programs returns the catalog entries ordered by key.
func (c Catalog) Programs() []Program {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	programs := make([]Program, 0, len(keys))
	for _, k := range keys {
		programs = append(programs, c[k])
	}
	return programs
}
