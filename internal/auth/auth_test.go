package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kestrelpm/trustbooks/internal/auth"
)

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("trust-me"), bcrypt.MinCost)
	require.NoError(t, err)

	v := auth.NewBcryptVerifier(string(hash))

	ok, err := v.VerifyPassword(context.Background(), "trust-me")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.VerifyPassword(context.Background(), "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := auth.NewJWTIssuer("test-secret", 5*time.Minute)

	token, err := issuer.Issue("operator")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, issuer.Validate(token))
}

func TestJWTIssuer_RejectsExpired(t *testing.T) {
	issuer := auth.NewJWTIssuer("test-secret", -time.Minute)

	token, err := issuer.Issue("operator")
	require.NoError(t, err)

	assert.ErrorIs(t, issuer.Validate(token), auth.ErrBadToken)
}

func TestJWTIssuer_RejectsForeignSecret(t *testing.T) {
	token, err := auth.NewJWTIssuer("secret-a", 5*time.Minute).Issue("operator")
	require.NoError(t, err)

	assert.ErrorIs(t, auth.NewJWTIssuer("secret-b", 5*time.Minute).Validate(token), auth.ErrBadToken)
}

func TestJWTIssuer_RejectsGarbage(t *testing.T) {
	issuer := auth.NewJWTIssuer("test-secret", 5*time.Minute)
	assert.ErrorIs(t, issuer.Validate("not-a-token"), auth.ErrBadToken)
}
