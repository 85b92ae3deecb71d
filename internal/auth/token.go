package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CookieName = "admin_token"

	subject     = "admin"
	tokenPrefix = subject + ":"
)

var ErrInvalidToken = errors.New("invalid session token")

type Claims struct {
	jwt.RegisteredClaims
}

// Tokens issues and verifies admin session tokens. A token is the unpadded
// URL-safe base64 of "admin:<jwt>", where the JWT is HS256-signed and
// carries an expiry and a unique ID.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *Tokens) TTL() time.Duration {
	return t.ttl
}

func (t *Tokens) Issue() (string, *Claims, error) {
	const op = "auth.Tokens.Issue"

	now := t.now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return base64.RawURLEncoding.EncodeToString([]byte(tokenPrefix + signed)), claims, nil
}

// Verify checks the prefix, signature, algorithm and expiry of token.
func (t *Tokens) Verify(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	signed, ok := strings.CutPrefix(string(raw), tokenPrefix)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	_, err = jwt.ParseWithClaims(
		signed,
		claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(subject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
