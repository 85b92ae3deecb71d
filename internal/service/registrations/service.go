package registrations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirinyoku/entrydesk/internal/domain"
)

type Reader interface {
	ListSummary(ctx context.Context) ([]domain.RegistrationRow, error)
	ListJoined(ctx context.Context) ([]domain.RegistrationRow, error)
}

type Service struct {
	reader Reader
	logger *slog.Logger
	now    func() time.Time
}

func New(reader Reader, logger *slog.Logger) *Service {
	return &Service{
		reader: reader,
		logger: logger,
		now:    time.Now,
	}
}

// List returns the aggregated registrations, newest first, filtered by the
// search term q. The summary view is tried first; on any failure the base
// tables are joined instead. The result is never nil.
//
// Parameters:
//   - ctx: request-scoped context.
//   - q: search term; blank means no filter.
//
// Returns:
//   - []domain.RegistrationSummary: matching registrations.
//   - error: the fallback query error if both strategies fail.
func (s *Service) List(ctx context.Context, q string) ([]domain.RegistrationSummary, error) {
	const op = "service.registrations.List"

	rows, err := s.reader.ListSummary(ctx)
	if err != nil {
		s.logger.Warn("registration summary view unavailable, using joined query", "error", err)

		rows, err = s.reader.ListJoined(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	now := s.now()
	out := make([]domain.RegistrationSummary, 0, len(rows))
	for _, row := range rows {
		sum := domain.Summarize(row, now)
		if sum.Matches(q) {
			out = append(out, sum)
		}
	}

	return out, nil
}

// Stats returns the dashboard counters over the registrations matching q.
func (s *Service) Stats(ctx context.Context, q string) (domain.RegistrationStats, error) {
	const op = "service.registrations.Stats"

	list, err := s.List(ctx, q)
	if err != nil {
		return domain.RegistrationStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Stats(list), nil
}
