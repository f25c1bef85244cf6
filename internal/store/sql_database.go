package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/migrations"
)

// DB wraps a *sql.DB together with the driver-specific error classifier used
// to translate driver failures into store sentinels.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator maps a driver error onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the outcome of classifying a driver error.
type ErrorClassification int

const (
	// NonRetryable is the default classification for errors that carry no
	// more specific meaning.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures: lost connections, busy or locked
	// databases, serialization failures. They surface as
	// [ErrStorageUnavailable].
	Retryable

	// UniqueViolation surfaces as [ErrDuplicateKey].
	UniqueViolation

	// ForeignKeyViolation surfaces as [ErrReferenceNotFound].
	ForeignKeyViolation

	// CheckViolation surfaces as [ErrInvalidSyncState].
	CheckViolation
)

var classificationErrors = map[ErrorClassification]error{
	Retryable:           ErrStorageUnavailable,
	UniqueViolation:     ErrDuplicateKey,
	ForeignKeyViolation: ErrReferenceNotFound,
	CheckViolation:      ErrInvalidSyncState,
}

// Migrate applies the embedded goose migrations of target.
func (db *DB) Migrate(target migrations.Target) error {
	return migrations.Migrate(db.DB, target)
}

// wrapError wraps err with the sentinel matching its classification, or with
// base when the classification carries no sentinel.
func (db *DB) wrapError(base, err error) error {
	if sentinel, ok := classificationErrors[db.classify(err)]; ok {
		return fmt.Errorf("%w: %w: %w", sentinel, base, err)
	}

	return fmt.Errorf("%w: %w", base, err)
}

func (db *DB) classify(err error) ErrorClassification {
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) || isClosedDBError(err) {
		return Retryable
	}

	if db.errorClassificator == nil {
		return NonRetryable
	}

	return db.errorClassificator.Classify(err)
}

// withTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return db.wrapError(ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return db.wrapError(ErrCommitingTransaction, err)
	}

	return nil
}

// isClosedDBError reports the "sql: database is closed" error, which
// database/sql does not export.
func isClosedDBError(err error) bool {
	return err != nil && err.Error() == "sql: database is closed"
}
