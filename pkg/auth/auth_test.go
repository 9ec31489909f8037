package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestToken_RoundTrip(t *testing.T) {
	t.Parallel()
	tokenStr, err := NewToken("maria", "user", time.Hour)
	require.NoError(t, err)

	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return JWTKey, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	require.Equal(t, "maria", claims.Profile.Username)
	require.Equal(t, "user", claims.Profile.Role)
}

func TestAuthContext(t *testing.T) {
	t.Parallel()
	ctx := SetAuthContext(context.Background(), "maria", "user")

	username, err := Username(ctx)
	require.NoError(t, err)
	require.Equal(t, "maria", username)

	_, err = Username(context.Background())
	require.Error(t, err)
}
