package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("staff-42", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, role, err := ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-42", subject)
	assert.Equal(t, "admin", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("staff-42", "staff", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaims(token)
	require.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken("staff-42", "staff", time.Hour)
	require.NoError(t, err)

	_, _, err = ExtractClaims(token + "x")
	require.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
