package persistence

import (
	"errors"
	"fmt"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes that mean "retry the transaction"
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// translateError maps driver and GORM errors onto domain errors.
// A unique violation on a master-data table is ALREADY_EXISTS.
func translateError(err error) error {
	return translate(err, shared.ErrAlreadyExists)
}

// translateDocumentError is translateError for numbered document tables,
// where a unique violation means the sequence handed out a used number.
func translateDocumentError(err error) error {
	return translate(err, shared.ErrSequenceCollision)
}

func translate(err error, onDuplicate *shared.DomainError) error {
	if err == nil {
		return nil
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return onDuplicate
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected:
			return shared.ErrConcurrencyConflict
		case "23505":
			return onDuplicate
		}
	}
	return fmt.Errorf("database error: %w", err)
}
