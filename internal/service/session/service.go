package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kirinyoku/entrydesk/internal/auth"
)

// Revoker remembers logged-out token IDs until the tokens expire.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Limiter interface {
	Allow(ctx context.Context, id string) (bool, int64, time.Duration, error)
}

type Session struct {
	Token     string
	ExpiresAt time.Time
}

type Service struct {
	password *auth.Password
	tokens   *auth.Tokens
	revoker  Revoker
	limiter  Limiter
	logger   *slog.Logger
	now      func() time.Time
}

func New(
	password *auth.Password,
	tokens *auth.Tokens,
	revoker Revoker,
	limiter Limiter,
	logger *slog.Logger,
) *Service {
	return &Service{
		password: password,
		tokens:   tokens,
		revoker:  revoker,
		limiter:  limiter,
		logger:   logger,
		now:      time.Now,
	}
}

// TTL is the lifetime of issued sessions.
func (s *Service) TTL() time.Duration {
	return s.tokens.TTL()
}

// Login checks password and issues a session token.
//
// Parameters:
//   - ctx: request-scoped context.
//   - password: the submitted admin password.
//   - clientKey: identifies the caller for rate limiting, usually the client IP.
//
// Returns:
//   - *Session: the issued token and its expiry.
//   - error: session.ErrPasswordRequired if password is empty.
//   - error: *session.RateLimitedError if clientKey made too many attempts.
//   - error: session.ErrInvalidCredentials if password is wrong.
func (s *Service) Login(ctx context.Context, password, clientKey string) (*Session, error) {
	const op = "service.session.Login"

	if password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrPasswordRequired)
	}

	if s.limiter != nil && clientKey != "" {
		ok, _, retry, err := s.limiter.Allow(ctx, clientKey)
		switch {
		case err != nil:
			// Redis trouble must not lock staff out of the gate.
			s.logger.Warn("login rate limiter unavailable", "error", err)
		case !ok:
			return nil, fmt.Errorf("%s: %w", op, &RateLimitedError{RetryAfter: retry})
		}
	}

	if !s.password.Verify(password) {
		s.logger.Warn("admin login rejected", "client", clientKey)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, claims, err := s.tokens.Issue()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Info("admin logged in", "client", clientKey, "session_id", claims.ID)

	return &Session{Token: token, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Authenticate verifies token and checks that it has not been revoked.
//
// Returns:
//   - *auth.Claims: the claims of a valid session.
//   - error: session.ErrUnauthorized if the token is missing, invalid, expired or revoked.
func (s *Service) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	const op = "service.session.Authenticate"

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrUnauthorized, err)
	}

	if s.revoker != nil {
		revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if revoked {
			return nil, fmt.Errorf("%s: %w: session revoked", op, ErrUnauthorized)
		}
	}

	return claims, nil
}

// Logout revokes token for the rest of its lifetime. Invalid or expired
// tokens need no revocation and are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	const op = "service.session.Logout"

	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if s.revoker == nil {
		return nil
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
