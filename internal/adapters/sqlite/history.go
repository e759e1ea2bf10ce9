// Package sqlite stores launch history in a SQLite database.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"launchdex/internal/application"
	"launchdex/internal/domain"
	"launchdex/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// HistoryDB implements ports.HistoryStore using SQLite
type HistoryDB struct {
	db     *sql.DB
	dbPath string
}

// Ensure HistoryDB implements HistoryStore
var _ ports.HistoryStore = (*HistoryDB)(nil)

// OpenHistoryDB opens (creating if needed) the history database at path
func OpenHistoryDB(path string) (*HistoryDB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	// WAL mode lets a list run read while a launch writes
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS history (
			path TEXT PRIMARY KEY,
			rank INTEGER NOT NULL,
			access INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, &application.CorruptDocumentError{Path: path, Kind: application.ErrCorruptHistory, Err: err}
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &HistoryDB{db: db, dbPath: path}, nil
}

// Path returns the database file
func (h *HistoryDB) Path() string {
	return h.dbPath
}

// Close closes the database connection
func (h *HistoryDB) Close() error {
	if h.db != nil {
		return h.db.Close()
	}
	return nil
}

// Load reads every history record
func (h *HistoryDB) Load() (domain.History, error) {
	rows, err := h.db.Query(`SELECT path, rank, access FROM history`)
	if err != nil {
		return nil, &application.CorruptDocumentError{Path: h.dbPath, Kind: application.ErrCorruptHistory, Err: err}
	}
	defer rows.Close()

	history := domain.NewHistory()
	for rows.Next() {
		var (
			key  string
			rank int64
			rec  domain.HistoryRecord
		)
		if err := rows.Scan(&key, &rank, &rec.Access); err != nil {
			return nil, &application.CorruptDocumentError{Path: h.dbPath, Kind: application.ErrCorruptHistory, Err: err}
		}
		if rank < 0 || rank > int64(^uint32(0)) {
			return nil, &application.CorruptDocumentError{
				Path: h.dbPath,
				Kind: application.ErrCorruptHistory,
				Err:  fmt.Errorf("rank %d out of range for %s", rank, key),
			}
		}
		rec.Rank = uint32(rank)
		history[key] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, &application.CorruptDocumentError{Path: h.dbPath, Kind: application.ErrCorruptHistory, Err: err}
	}
	return history, nil
}

// Save replaces the stored history with hist in a single transaction
func (h *HistoryDB) Save(hist domain.History) error {
	tx, err := h.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	htx := &historyTx{tx: tx}

	if err := htx.replaceAll(hist); err != nil {
		htx.Rollback()
		return fmt.Errorf("failed to save history: %w", err)
	}
	return htx.Commit()
}
