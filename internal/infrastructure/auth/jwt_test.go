package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/proximity-api/internal/domain"
	"github.com/marcos-nsantos/proximity-api/internal/infrastructure/auth"
)

func TestJWTService(t *testing.T) {
	svc := auth.NewJWTService("test-secret", time.Hour)

	t.Run("round trips client id", func(t *testing.T) {
		token, expiresAt, err := svc.GenerateAccessToken("mobile-app")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		clientID, err := svc.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, "mobile-app", clientID)
	})

	t.Run("rejects empty client id", func(t *testing.T) {
		_, _, err := svc.GenerateAccessToken("  ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects token signed with another key", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", time.Hour)
		token, _, err := other.GenerateAccessToken("mobile-app")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := auth.NewJWTService("test-secret", -time.Minute)
		token, _, err := expired.GenerateAccessToken("mobile-app")
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects foreign issuer", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "mobile-app",
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
