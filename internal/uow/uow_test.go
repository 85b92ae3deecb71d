package uow

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	postgresrepo "github.com/kirinyoku/entrydesk/internal/repository/postgres"
)

type fakeRunner struct {
	commitErr error
	opts      *pgx.TxOptions
}

func (f *fakeRunner) RunTx(ctx context.Context, opts *pgx.TxOptions, fn func(ctx context.Context, tx postgresrepo.DB) error) error {
	f.opts = opts
	if err := fn(ctx, nil); err != nil {
		return err
	}
	return f.commitErr
}

func TestDoRunsHooksAfterCommit(t *testing.T) {
	u := NewUoW(&fakeRunner{})

	var order []string
	err := u.Do(context.Background(), func(ctx context.Context, tx postgresrepo.DB, after func(AfterCommit)) error {
		after(func(context.Context) { order = append(order, "first") })
		after(func(context.Context) { order = append(order, "second") })
		order = append(order, "body")
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"body", "first", "second"}, order)
}

func TestDoSkipsHooksOnFailure(t *testing.T) {
	tests := []struct {
		name      string
		bodyErr   error
		commitErr error
	}{
		{name: "body fails", bodyErr: errors.New("boom")},
		{name: "commit fails", commitErr: errors.New("commit: boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUoW(&fakeRunner{commitErr: tt.commitErr})

			ran := false
			err := u.Do(context.Background(), func(ctx context.Context, tx postgresrepo.DB, after func(AfterCommit)) error {
				after(func(context.Context) { ran = true })
				return tt.bodyErr
			})

			require.Error(t, err)
			assert.False(t, ran)
		})
	}
}

func TestDoWithOptsPassesOptions(t *testing.T) {
	r := &fakeRunner{}
	opts := &pgx.TxOptions{IsoLevel: pgx.Serializable}

	err := NewUoW(r).DoWithOpts(context.Background(), opts, func(context.Context, postgresrepo.DB, func(AfterCommit)) error {
		return nil
	})

	require.NoError(t, err)
	assert.Same(t, opts, r.opts)
}
