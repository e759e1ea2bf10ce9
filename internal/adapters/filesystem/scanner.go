package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"launchdex/internal/domain"
	"launchdex/internal/ports"
)

// DefaultExtensions lists the file extensions treated as launchable
var DefaultExtensions = []string{"exe", "lnk", "bat", "cmd", "com"}

// Scanner implements ports.ProgramScanner by walking the filesystem
type Scanner struct {
	extensions map[string]bool
	logger     *log.Logger
}

// Ensure Scanner implements ProgramScanner
var _ ports.ProgramScanner = (*Scanner)(nil)

// NewScanner creates a scanner accepting the given extensions (without the
// leading dot, any case). An empty list falls back to DefaultExtensions.
func NewScanner(extensions []string, logger *log.Logger) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	if logger == nil {
		logger = log.Default()
	}

	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			exts[e] = true
		}
	}
	return &Scanner{extensions: exts, logger: logger}
}

// Scan walks the roots in order. A program found later replaces an earlier
// one with the same canonical path. Roots are taken as given; home
// directory expansion is done by the configuration.
func (s *Scanner) Scan(roots []domain.Root) (domain.Catalog, error) {
	catalog := make(domain.Catalog)
	visited := make(map[string]bool)
	for _, root := range roots {
		if root.Dir == "" {
			continue
		}
		abs, err := filepath.Abs(root.Dir)
		if err != nil {
			s.logger.Debug("skipping root", "dir", root.Dir, "err", err)
			continue
		}
		s.scanDir(catalog, visited, abs, abs, root)
	}
	return catalog, nil
}

// scanDir adds the launchable files of dir to catalog. Unreadable
// directories are skipped so one bad directory does not abort the scan.
// A directory reached twice through symlinks is only walked once per root.
func (s *Scanner) scanDir(catalog domain.Catalog, visited map[string]bool, dir, prefix string, root domain.Root) {
	if real, err := filepath.EvalSymlinks(dir); err == nil {
		id := prefix + "\x00" + real
		if visited[id] {
			return
		}
		visited[id] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("skipping directory", "dir", dir, "err", err)
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		isDir, isFile := entry.IsDir(), entry.Type().IsRegular()
		if entry.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				continue // dangling link
			}
			isDir, isFile = info.IsDir(), info.Mode().IsRegular()
		}

		switch {
		case isFile:
			if !s.accepts(entry.Name()) {
				continue
			}
			title, err := filepath.Rel(prefix, path)
			if err != nil {
				title = entry.Name()
			}
			catalog.Add(domain.Program{
				Title:  title,
				Source: root.Source,
				Path:   path,
			})
		case isDir && root.Recursive:
			s.scanDir(catalog, visited, path, prefix, root)
		}
	}
}

func (s *Scanner) accepts(name string) bool {
	ext := filepath.Ext(name)
	if ext == "" {
		return false
	}
	return s.extensions[strings.ToLower(ext[1:])]
}
