package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTVerifier("")
	require.Error(t, err)
}

func TestJWTVerifier_RoundTrip(t *testing.T) {
	t.Parallel()

	v, err := NewJWTVerifier("s3cret")
	require.NoError(t, err)

	tok, err := v.Issue("uid-1", "ann@example.com", time.Minute)
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	require.Equal(t, "uid-1", claims.UID)
	require.Equal(t, "ann@example.com", claims.Email)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	t.Parallel()

	v, err := NewJWTVerifier("s3cret")
	require.NoError(t, err)
	other, err := NewJWTVerifier("other")
	require.NoError(t, err)

	expired, err := v.Issue("uid-1", "", -time.Minute)
	require.NoError(t, err)
	wrongKey, err := other.Issue("uid-1", "", time.Minute)
	require.NoError(t, err)
	noUID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject: "uid-1",
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"expired", expired},
		{"wrong key", wrongKey},
		{"missing uid", noUID},
		{"unexpected alg", hs512},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tt.token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
