// Package dbx carries the small database/sql plumbing the credential store
// needs: a statement-execution interface satisfied by both *sql.DB and
// *sql.Tx, and a transaction wrapper so multi-key writes land atomically.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX lets a write helper run against either a plain connection or an open
// transaction without knowing which one it was handed.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// WithTx runs fn inside a transaction: commit when fn returns nil, rollback
// when it returns an error or panics. A panic is rolled back and rethrown.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
