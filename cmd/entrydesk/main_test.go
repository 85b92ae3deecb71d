package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirinyoku/entrydesk/internal/auth"
)

func TestPrintPasswordHash(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printPasswordHash(strings.NewReader("gate pass 42\n"), &out))

	hash := strings.TrimSpace(out.String())
	assert.True(t, strings.HasPrefix(hash, "$2"))

	p := auth.NewPassword("", hash)
	assert.True(t, p.Verify("gate pass 42"))
	assert.False(t, p.Verify("gate pass 43"))
}

func TestPrintPasswordHashWithoutNewline(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, printPasswordHash(strings.NewReader("s3cret"), &out))
	assert.True(t, auth.NewPassword("", strings.TrimSpace(out.String())).Verify("s3cret"))
}

func TestPrintPasswordHashEmpty(t *testing.T) {
	for _, in := range []string{"", "\n", "\r\n"} {
		var out bytes.Buffer
		assert.Error(t, printPasswordHash(strings.NewReader(in), &out))
		assert.Empty(t, out.String())
	}
}
