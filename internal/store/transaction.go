package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/storefront/storefront-api/internal/platform/logger"
)

// TxRunner executes a function within a database transaction. Services
// depend on this interface rather than on *sql.DB so that transactional
// flows can be exercised without a live database.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn TxFn) error
}

// TxManager is the database-backed TxRunner used in production wiring.
type TxManager struct {
	db *sql.DB
}

// NewTxManager creates a TxManager over the given database handle.
// It panics if db is nil, as that is an unrecoverable programmer error.
func NewTxManager(db *sql.DB) *TxManager {
	if db == nil {
		panic("db cannot be nil for TxManager")
	}
	return &TxManager{db: db}
}

// RunInTransaction implements TxRunner.
func (m *TxManager) RunInTransaction(ctx context.Context, fn TxFn) error {
	return RunInTransaction(ctx, m.db, fn)
}

// TxFn is a function that executes within a database transaction.
// It receives the context and a transaction, and returns an error if the operation fails.
// The transaction is committed if the function returns nil, or rolled back if it returns an error.
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction executes the given function within a database transaction.
// This is the scoped session of the persistence layer: the transaction is
// committed on a nil return, rolled back on any error or panic, and the
// underlying connection is always returned to the pool.
func RunInTransaction(ctx context.Context, db *sql.DB, fn TxFn) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: begin: %v", ErrTransactionFailed, err)
	}

	// Roll back on panic so an abandoned request cannot leak a transaction,
	// then re-panic to preserve the caller-visible behavior.
	defer func() {
		if p := recover(); p != nil {
			if txErr := tx.Rollback(); txErr != nil {
				log.Error("failed to roll back transaction after panic",
					slog.String("error", txErr.Error()),
					slog.Any("panic", p))
			} else {
				log.Error("rolled back transaction after panic",
					slog.Any("panic", p))
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			log.Error("failed to roll back transaction",
				slog.String("rollback_error", rollbackErr.Error()),
				slog.String("original_error", err.Error()))
			return fmt.Errorf(
				"error rolling back transaction: %v (original error: %w)",
				rollbackErr,
				err,
			)
		}
		log.Debug("rolled back transaction due to error",
			slog.String("error", err.Error()))
		// Return the original error unmodified so sentinel and typed
		// errors survive the transaction boundary.
		return err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit transaction",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: commit: %v", ErrTransactionFailed, err)
	}

	log.Debug("transaction committed successfully")
	return nil
}
