package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Retry policy for transient store failures. Deadlocks and lock-wait
// timeouts are retried a bounded number of times; every other error
// surfaces immediately.
const (
	maxTxAttempts = 3
	retryBackoff  = 25 * time.Millisecond
)

// WithTx runs fn inside one transaction. fn errors roll the transaction
// back; commit errors are returned to the caller. Transient MySQL
// failures restart the whole unit of work.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = runTx(db, fn)
		if err == nil || !isTransient(err) {
			return err
		}
		if attempt < maxTxAttempts {
			time.Sleep(retryBackoff * time.Duration(attempt))
		}
	}
	return err
}

func runTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// MySQL error codes: 1213 deadlock, 1205 lock wait timeout.
func isTransient(err error) bool {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return false
	}
	return me.Number == 1213 || me.Number == 1205
}

// NullIfEmpty helps store optional strings without wiping existing data.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
