package postgresrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kirinyoku/entrydesk/internal/repository"
)

const (
	codeUniqueViolation = "23505"
	codeNoDataFound     = "P0002"
	codeTooManyRows     = "P0003"
)

// wrapDBErr maps common DB errors to repository-level errors and wraps them with
// the provided operation name.
func wrapDBErr(op string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", op, translateDBErr(err))
}

func translateDBErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		switch pge.Code {
		case codeNoDataFound:
			return fmt.Errorf("%s: %w", pge.Message, repository.ErrNotFound)
		case codeUniqueViolation, codeTooManyRows:
			return fmt.Errorf("%s: %w", pge.Message, repository.ErrConflict)
		}
	}

	return err
}
