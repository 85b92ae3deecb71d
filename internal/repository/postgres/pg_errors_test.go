package postgresrepo

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/kirinyoku/entrydesk/internal/repository"
)

func TestWrapDBErr(t *testing.T) {
	other := errors.New("connection refused")

	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantMsg string
	}{
		{
			name:    "no rows",
			err:     pgx.ErrNoRows,
			wantIs:  repository.ErrNotFound,
			wantMsg: "op: not found",
		},
		{
			name:   "unknown member raised by function",
			err:    &pgconn.PgError{Code: "P0002", Message: "member Nobody not found on ticket TKT-1"},
			wantIs: repository.ErrNotFound,
		},
		{
			name:   "ambiguous member name",
			err:    &pgconn.PgError{Code: "P0003", Message: "member name Kiran is ambiguous on ticket TKT-G"},
			wantIs: repository.ErrConflict,
		},
		{
			name:   "unique violation",
			err:    &pgconn.PgError{Code: "23505", Message: "duplicate key value"},
			wantIs: repository.ErrConflict,
		},
		{
			name:   "passthrough",
			err:    other,
			wantIs: other,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapDBErr("op", tt.err)
			assert.ErrorIs(t, got, tt.wantIs)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, got.Error())
			}
		})
	}

	assert.NoError(t, wrapDBErr("op", nil))
}

func TestTranslateKeepsUnmappedPgError(t *testing.T) {
	pge := &pgconn.PgError{Code: "42P01", Message: `relation "registration_summary" does not exist`}

	got := translateDBErr(pge)

	assert.Same(t, pge, got)
	assert.NotErrorIs(t, got, repository.ErrNotFound)
}
