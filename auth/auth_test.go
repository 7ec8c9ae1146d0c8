package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hanksha/padel-booking-backend/auth"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestParseRole(t *testing.T) {
	role, err := auth.ParseRole("administrator")
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdministrator, role)

	role, err = auth.ParseRole("user")
	require.NoError(t, err)
	require.Equal(t, auth.RoleUser, role)

	_, err = auth.ParseRole("admin-1")
	require.ErrorIs(t, err, auth.ErrInvalidRole)
}

func TestTokenRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour).WithClock(fixedClock(now))
	principal := auth.Principal{UserID: 42, Email: "ana@padel.test", Role: auth.RoleAdministrator}

	token, err := issuer.Issue(principal)
	require.NoError(t, err)

	parsed, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, principal, parsed)
	require.True(t, parsed.IsAdministrator())
}

func TestTokenRejected(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour).WithClock(fixedClock(now))

	token, err := issuer.Issue(auth.Principal{UserID: 1, Role: auth.RoleUser})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := auth.NewTokenIssuer("other-secret", time.Hour).WithClock(fixedClock(now))
		_, err := other.Parse(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := auth.NewTokenIssuer("test-secret", time.Hour).WithClock(fixedClock(now.Add(2 * time.Hour)))
		_, err := later.Parse(token)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("tampered", func(t *testing.T) {
		_, err := issuer.Parse(token + "x")
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("not-a-token")
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, auth.Claims{
			Role: auth.RoleAdministrator,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "1",
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = issuer.Parse(unsigned)
		require.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)

	require.True(t, auth.CheckPassword(hash, "correct horse"))
	require.False(t, auth.CheckPassword(hash, "battery staple"))
}
