//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	pkgjwt "sejour/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// SignToken mints an access token the way the external identity provider
// would, so tests can call authenticated endpoints without a login flow.
func SignToken(t *testing.T, secret string, userID int64, role string) string {
	t.Helper()

	claims := pkgjwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err, "Failed to sign test token")

	return signed
}

// ExpiredToken mints a token whose expiry is already in the past.
func ExpiredToken(t *testing.T, secret string, userID int64, role string) string {
	t.Helper()

	claims := pkgjwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err, "Failed to sign test token")

	return signed
}
