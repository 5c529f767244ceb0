package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initTestSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWT())
}

func TestTokenRoundTrip(t *testing.T) {
	initTestSecret(t)

	token, err := GenerateToken("user-1", "head@girton.example")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "head@girton.example", claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	initTestSecret(t)

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	initTestSecret(t)
	token, err := GenerateToken("user-1", "head@girton.example")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	require.NoError(t, InitJWT())

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsUnexpectedAlg(t *testing.T) {
	initTestSecret(t)

	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{UserID: "user-1"})
	tokenStr, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestInitJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitJWT())
}
