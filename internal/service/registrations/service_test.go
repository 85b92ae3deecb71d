package registrations_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/entrydesk/internal/domain"
	"github.com/kirinyoku/entrydesk/internal/repository/memory"
	"github.com/kirinyoku/entrydesk/internal/service/registrations"
)

func seed(store *memory.Store) {
	base := time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)

	store.Add(domain.Registration{
		TicketID: "TKT-OLD", Name: "Asha Rao", Email: "asha@example.com", Phone: "9000000001",
		RegistrationType: domain.RegistrationSingle, CreatedAt: base,
	}, &domain.PaymentVerification{Verified: true}, &domain.EntryStatus{EntryStatus: domain.Entered})

	store.Add(domain.Registration{
		TicketID: "TKT-NEW", Name: "Ravi Kumar", Email: "ravi@example.com", Phone: "9000000002",
		RegistrationType: domain.RegistrationGroup, CreatedAt: base.Add(2 * time.Hour),
		GroupMembers: []domain.GroupMember{{Name: "One"}},
	}, &domain.PaymentVerification{}, &domain.EntryStatus{})

	store.Add(domain.Registration{
		TicketID: "TKT-MID", Name: "Neha", Email: "neha@example.com", Phone: "9000000003",
		RegistrationType: domain.RegistrationSingle, CreatedAt: base.Add(time.Hour),
	}, nil, nil)
}

func newService(store *memory.Store) *registrations.Service {
	return registrations.New(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestListPrimary(t *testing.T) {
	store := memory.New()
	seed(store)

	list, err := newService(store).List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, []string{"TKT-NEW", "TKT-MID", "TKT-OLD"},
		[]string{list[0].TicketID, list[1].TicketID, list[2].TicketID})

	assert.Equal(t, 4, list[0].TotalAttendees)
	assert.Equal(t, 1600, list[0].AmountDue)
	assert.Equal(t, 1, list[1].TotalAttendees)
	assert.Equal(t, 500, list[1].AmountDue)

	assert.False(t, list[1].PaymentVerified)
	assert.Equal(t, domain.NotEntered, list[1].EntryStatus)
	assert.True(t, list[2].PaymentVerified)
	assert.Equal(t, domain.Entered, list[2].EntryStatus)

	assert.Equal(t, 1, store.SummaryCalls)
	assert.Zero(t, store.JoinedCalls)
}

func TestListFallsBackWhenViewFails(t *testing.T) {
	store := memory.New()
	seed(store)
	store.SummaryErr = errors.New(`relation "registration_summary" does not exist`)

	list, err := newService(store).List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, 1, store.JoinedCalls)
}

func TestListStrategiesAgree(t *testing.T) {
	store := memory.New()
	seed(store)
	svc := newService(store)

	primary, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	store.SummaryErr = errors.New("view broken")
	fallback, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, fallback, len(primary))
	for i := range primary {
		assert.Equal(t, primary[i].TicketID, fallback[i].TicketID)
		assert.Equal(t, primary[i].TotalAttendees, fallback[i].TotalAttendees)
		assert.Equal(t, primary[i].AmountDue, fallback[i].AmountDue)
		assert.Equal(t, primary[i].PaymentVerified, fallback[i].PaymentVerified)
		assert.Equal(t, primary[i].EntryStatus, fallback[i].EntryStatus)
	}
}

func TestListEmptyFallback(t *testing.T) {
	store := memory.New()
	store.SummaryErr = errors.New("view broken")

	list, err := newService(store).List(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestListBothStrategiesFail(t *testing.T) {
	store := memory.New()
	store.SummaryErr = errors.New("view broken")
	store.JoinedErr = errors.New("permission denied for table registrations")

	_, err := newService(store).List(context.Background(), "")
	assert.ErrorIs(t, err, store.JoinedErr)
}

func TestListSearch(t *testing.T) {
	store := memory.New()
	seed(store)
	svc := newService(store)

	tests := []struct {
		q    string
		want []string
	}{
		{q: "RAVI", want: []string{"TKT-NEW"}},
		{q: "tkt-", want: []string{"TKT-NEW", "TKT-MID", "TKT-OLD"}},
		{q: "0003", want: []string{"TKT-MID"}},
		{q: "nobody", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.q, func(t *testing.T) {
			list, err := svc.List(context.Background(), tt.q)
			require.NoError(t, err)

			got := make([]string, 0, len(list))
			for _, r := range list {
				got = append(got, r.TicketID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStats(t *testing.T) {
	store := memory.New()
	seed(store)
	svc := newService(store)

	st, err := svc.Stats(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStats{Total: 3, PaymentVerified: 1, Entered: 1, TotalAttendees: 6}, st)

	st, err = svc.Stats(context.Background(), "ravi")
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStats{Total: 1, TotalAttendees: 4}, st)
}
