package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokens(now time.Time) *Tokens {
	tk := NewTokens("test-secret", 24*time.Hour)
	tk.now = func() time.Time { return now }
	return tk
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	tk := newTestTokens(now)

	token, claims, err := tk.Issue()
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, now.Add(24*time.Hour), claims.ExpiresAt.Time)

	plain, err := decodeToken(token)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plain, "admin:"))

	got, err := tk.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, claims.ID, got.ID)
}

func TestVerifyRejects(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	tk := newTestTokens(now)

	valid, _, err := tk.Issue()
	require.NoError(t, err)

	other := NewTokens("other-secret", time.Hour)
	other.now = tk.now
	foreign, _, err := other.Issue()
	require.NoError(t, err)

	plain, err := decodeToken(valid)
	require.NoError(t, err)
	signed := strings.TrimPrefix(plain, "admin:")

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		ID:        "x",
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not base64", token: "%%%"},
		{name: "legacy prefix only", token: base64.StdEncoding.EncodeToString([]byte("admin:1700000000000"))},
		{name: "missing prefix", token: base64.RawURLEncoding.EncodeToString([]byte(signed))},
		{name: "wrong prefix", token: base64.RawURLEncoding.EncodeToString([]byte("user:" + signed))},
		{name: "tampered signature", token: base64.RawURLEncoding.EncodeToString([]byte(plain[:len(plain)-2] + "xx"))},
		{name: "foreign secret", token: foreign},
		{name: "alg none", token: base64.RawURLEncoding.EncodeToString([]byte("admin:" + unsigned))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tk.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifyExpired(t *testing.T) {
	now := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	tk := newTestTokens(now)

	token, _, err := tk.Issue()
	require.NoError(t, err)

	tk.now = func() time.Time { return now.Add(24*time.Hour + time.Second) }

	_, err = tk.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	tests := []struct {
		name  string
		p     *Password
		input string
		want  bool
	}{
		{name: "plain match", p: NewPassword("s3cret!", ""), input: "s3cret!", want: true},
		{name: "plain mismatch", p: NewPassword("s3cret!", ""), input: "s3cret", want: false},
		{name: "plain case sensitive", p: NewPassword("s3cret!", ""), input: "S3CRET!", want: false},
		{name: "empty input", p: NewPassword("s3cret!", ""), input: "", want: false},
		{name: "hash match", p: NewPassword("", hash), input: "s3cret!", want: true},
		{name: "hash mismatch", p: NewPassword("", hash), input: "nope", want: false},
		{name: "hash wins over plain", p: NewPassword("plain", hash), input: "plain", want: false},
		{name: "nothing configured", p: NewPassword("", ""), input: "anything", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Verify(tt.input))
		})
	}
}

// decodeToken returns the plain "admin:<jwt>" form of token without verifying it.
func decodeToken(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
