package sqlite

import (
	"database/sql"

	"launchdex/internal/domain"
)

// historyTx groups the statements of one history write
type historyTx struct {
	tx *sql.Tx
}

// replaceAll clears the table and inserts every record of h
func (t *historyTx) replaceAll(h domain.History) error {
	if err := t.deleteAll(); err != nil {
		return err
	}

	stmt, err := t.tx.Prepare(`INSERT INTO history (path, rank, access) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, rec := range h {
		if _, err := stmt.Exec(key, int64(rec.Rank), rec.Access); err != nil {
			return err
		}
	}
	return nil
}

// deleteAll removes every record
func (t *historyTx) deleteAll() error {
	_, err := t.tx.Exec(`DELETE FROM history`)
	return err
}

// Commit commits the transaction
func (t *historyTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *historyTx) Rollback() error {
	return t.tx.Rollback()
}
