package token_test

import (
	"testing"
	"time"

	"autoshop/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer, err := token.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	now := time.Now()
	signed, expiresAt, err := issuer.Issue("user-1", "liping", "staff", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "liping", claims.Username)
	assert.Equal(t, "staff", claims.Role)
}

func TestIssuer_RejectsExpiredToken(t *testing.T) {
	issuer, err := token.NewIssuer("test-secret", time.Minute)
	require.NoError(t, err)

	signed, _, err := issuer.Issue("user-1", "liping", "staff", time.Now().Add(-2*time.Minute))
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	require.ErrorIs(t, err, token.ErrTokenIsInvalid)
}

func TestIssuer_RejectsForeignSignature(t *testing.T) {
	issuer, err := token.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	other, err := token.NewIssuer("other-secret", time.Hour)
	require.NoError(t, err)

	signed, _, err := other.Issue("user-1", "liping", "staff", time.Now())
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	require.ErrorIs(t, err, token.ErrTokenIsInvalid)
}

func TestNewIssuer_RequiresSecret(t *testing.T) {
	_, err := token.NewIssuer("", time.Hour)
	require.ErrorIs(t, err, token.ErrSecretIsRequired)
}
