package auth

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// JWTKey signs and verifies session tokens. Overridden by JWT_KEY in any
// non-development environment.
var JWTKey = []byte("savor-dev-key")

func init() {
	if key := os.Getenv("JWT_KEY"); key != "" {
		JWTKey = []byte(key)
	}
}

type Profile struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

// NewToken issues a signed HS256 token for the given profile.
func NewToken(username, role string, ttl time.Duration) (string, error) {
	claims := Claims{
		Profile: Profile{Username: username, Role: role},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(JWTKey)
}

type ctxKey int

const authKey ctxKey = iota

func SetAuthContext(ctx context.Context, username, role string) context.Context {
	return context.WithValue(ctx, authKey, Profile{Username: username, Role: role})
}

func Username(ctx context.Context) (string, error) {
	profile, ok := ctx.Value(authKey).(Profile)
	if !ok || profile.Username == "" {
		return "", errors.New("no authenticated user in context")
	}
	return profile.Username, nil
}
