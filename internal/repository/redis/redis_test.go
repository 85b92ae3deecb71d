package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "entrydesk:v1:session:revoked:abc", KeyRevokedSession("abc"))
	assert.Equal(t, "entrydesk:v1:rl:login:10.0.0.1", KeyRateLimit("login", "10.0.0.1"))
	assert.Equal(t, "entrydesk:v1:tickets:changed", ChannelTicketsChanged())
}

func TestParseWindowResult(t *testing.T) {
	tests := []struct {
		name        string
		res         any
		wantAllowed bool
		wantCount   int64
		wantRetry   time.Duration
		wantErr     bool
	}{
		{
			name:        "allowed",
			res:         []any{int64(1), int64(3), int64(0)},
			wantAllowed: true,
			wantCount:   3,
		},
		{
			name:      "blocked",
			res:       []any{int64(0), int64(11), int64(12500)},
			wantCount: 11,
			wantRetry: 12500 * time.Millisecond,
		},
		{
			name:        "string replies",
			res:         []any{"1", "2", "0"},
			wantAllowed: true,
			wantCount:   2,
		},
		{
			name:    "short reply",
			res:     []any{int64(1)},
			wantErr: true,
		},
		{
			name:    "not a list",
			res:     "OK",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, count, retry, err := parseWindowResult(tt.res)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, allowed)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantRetry, retry)
		})
	}
}
