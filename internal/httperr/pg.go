package httperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation detecta violação de índice único no Postgres (23505)
// e no sqlite usado nos testes.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// UniqueViolationOn informa se a violação foi no índice/coluna indicado.
func UniqueViolationOn(err error, column string) bool {
	if !IsUniqueViolation(err) {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.Contains(pgErr.ConstraintName, column)
	}

	return strings.Contains(err.Error(), "."+column)
}
