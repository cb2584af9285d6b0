package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionRoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	sessionID, signed, err := svc.NewSession("farmer-42")
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)
	require.NotEmpty(t, signed)

	claims, err := svc.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "farmer-42", claims.UserID)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	other := NewService("another-secret", time.Hour)

	_, signed, err := svc.NewSession("")
	require.NoError(t, err)

	_, err = other.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := NewService("test-secret", -time.Minute)

	_, signed, err := svc.NewSession("")
	require.NoError(t, err)

	_, err = svc.Validate(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
