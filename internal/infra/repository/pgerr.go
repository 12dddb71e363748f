package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/booking-api/internal/domain/resource"
)

// SQLSTATE codes of integrity constraint violations.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// translateError maps driver and gorm errors onto the resource error taxonomy.
// Anything unrecognised is returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resource.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		kind, ok := constraintKind(pgErr.Code)
		if !ok {
			return err
		}
		return &resource.ConstraintError{
			Kind:       kind,
			Table:      pgErr.TableName,
			Column:     pgErr.ColumnName,
			Constraint: pgErr.ConstraintName,
			Err:        err,
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &resource.ConstraintError{Kind: resource.ConstraintUnique, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &resource.ConstraintError{Kind: resource.ConstraintForeignKey, Err: err}
	}

	return err
}

func constraintKind(code string) (resource.ConstraintKind, bool) {
	switch code {
	case pgUniqueViolation:
		return resource.ConstraintUnique, true
	case pgForeignKeyViolation:
		return resource.ConstraintForeignKey, true
	case pgNotNullViolation:
		return resource.ConstraintNotNull, true
	case pgCheckViolation:
		return resource.ConstraintCheck, true
	}
	return "", false
}
