package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWT_SessionToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	session, err := j.GenerateSessionToken(u)
	require.NoError(t, err)
	got, err := j.ParseSessionToken(session)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_WrongSecret(t *testing.T) {
	u := uuid.New()

	session, err := NewJWT("secret").GenerateSessionToken(u)
	require.NoError(t, err)

	_, err = NewJWT("other-secret").ParseSessionToken(session)
	require.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret")

	_, err := j.ParseSessionToken("not.a.token")
	require.Error(t, err)
}

func TestJWT_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	j := &JWT{secretKey: "secret", now: func() time.Time { return issuedAt }}
	u := uuid.New()

	session, err := j.GenerateSessionToken(u)
	require.NoError(t, err)

	// Accepted anywhere inside the 30-day window.
	j.now = func() time.Time { return issuedAt.Add(sessionTTL - time.Minute) }
	got, err := j.ParseSessionToken(session)
	require.NoError(t, err)
	require.Equal(t, u, got)

	// Rejected once the window has passed.
	j.now = func() time.Time { return issuedAt.Add(sessionTTL + time.Minute) }
	_, err = j.ParseSessionToken(session)
	require.Error(t, err)
}

func TestJWT_TokenType_Mismatch(t *testing.T) {
	// A token signed with the right secret but the wrong typ claim
	// must not be accepted as a session.
	now := time.Now()
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID:    uuid.New(),
		TokenType: "refresh",
	})
	tokenString, err := forged.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWT("secret").ParseSessionToken(tokenString)
	require.Error(t, err)
}
