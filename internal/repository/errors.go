// Package repository provides the gorm-backed persistence layer. Each
// entity gets its own repository with context-aware methods; storage
// errors are wrapped and the interesting ones mapped to sentinels the
// service layer can test with errors.Is.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when an identity does not resolve.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert collides with a unique
	// index, e.g. the case-insensitive genre name index.
	ErrDuplicate = errors.New("duplicate record")
)

const pgUniqueViolation = "23505"

func mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicate
	}
	return err
}
