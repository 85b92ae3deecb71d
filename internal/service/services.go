package service

import (
	"context"
	"log/slog"

	"github.com/kirinyoku/entrydesk/internal/auth"
	"github.com/kirinyoku/entrydesk/internal/domain"
	postgresrepo "github.com/kirinyoku/entrydesk/internal/repository/postgres"
	redisrepo "github.com/kirinyoku/entrydesk/internal/repository/redis"
	"github.com/kirinyoku/entrydesk/internal/service/admission"
	"github.com/kirinyoku/entrydesk/internal/service/registrations"
	"github.com/kirinyoku/entrydesk/internal/service/session"
)

// Pinger reports whether the backend answers queries.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ChangeFeed streams ticket change notifications until ctx is done.
type ChangeFeed interface {
	Subscribe(ctx context.Context, handler func(ctx context.Context, change domain.TicketChange)) error
}

type Services struct {
	Session       *session.Service
	Admission     *admission.Service
	Registrations *registrations.Service
	Health        Pinger
	Changes       ChangeFeed
}

type Config struct {
	Admission admission.Config
	Password  *auth.Password
	Tokens    *auth.Tokens
}

func NewServices(
	store *postgresrepo.Store,
	tx admission.Transactor,
	sessions *redisrepo.SessionStore,
	pubsub *redisrepo.TicketsPubSub,
	limiter *redisrepo.SlidingWindowLimiter,
	logger *slog.Logger,
	cfg Config,
) *Services {
	return &Services{
		Session:       session.New(cfg.Password, cfg.Tokens, sessions, limiter, logger),
		Admission:     admission.New(tx, admission.NewRepositories(store), pubsub, logger, cfg.Admission),
		Registrations: registrations.New(store.Registrations(), logger),
		Health:        store.Health(),
		Changes:       pubsub,
	}
}
