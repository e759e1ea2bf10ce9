package config

import (
	"launchdex/internal/adapters/jsonfile"
	"launchdex/internal/adapters/sqlite"
	"launchdex/internal/ports"
)

// IndexStore returns the store for the configured index path
func (c *Config) IndexStore() *jsonfile.IndexFile {
	return jsonfile.NewIndexFile(c.IndexPath)
}

// OpenHistoryStore opens the history backend selected by the history path
// extension. The returned close function must be called when done.
func (c *Config) OpenHistoryStore() (ports.HistoryStore, func() error, error) {
	if !c.HistoryUsesSQLite() {
		return jsonfile.NewHistoryFile(c.HistoryPath), func() error { return nil }, nil
	}

	db, err := sqlite.OpenHistoryDB(c.HistoryPath)
	if err != nil {
		return nil, nil, err
	}
	return db, db.Close, nil
}
