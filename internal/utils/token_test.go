package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "habit-tracker-test"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("user-123", testIssuer, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseToken(token, testSecret, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestGenerateToken_InvalidParams(t *testing.T) {
	_, err := GenerateToken("", testIssuer, testSecret, time.Hour)
	assert.Error(t, err)

	_, err = GenerateToken("user-123", testIssuer, "", time.Hour)
	assert.Error(t, err)

	_, err = GenerateToken("user-123", testIssuer, testSecret, 0)
	assert.Error(t, err)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := GenerateToken("user-123", testIssuer, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "another-secret", testIssuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongIssuer(t *testing.T) {
	token, err := GenerateToken("user-123", "someone-else", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret, testIssuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("user-123", testIssuer, testSecret, time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	_, err = ParseToken(token, testSecret, testIssuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret, testIssuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
