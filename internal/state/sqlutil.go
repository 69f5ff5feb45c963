package state

import (
	"database/sql"
)

// withTx runs fn inside a transaction, committing only if fn succeeds.
func withTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func nullString(n sql.NullString) string {
	if !n.Valid {
		return ""
	}
	return n.String
}

func nullBool(n sql.NullInt64) bool {
	return n.Valid && n.Int64 != 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
