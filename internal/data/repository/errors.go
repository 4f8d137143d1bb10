package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicate      = errors.New("duplicate record")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type rowScanner interface {
	Scan(dest ...any) error
}
