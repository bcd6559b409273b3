package lib

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestTokenRoundtrip(t *testing.T) {
	sub := uuid.New()

	token, err := GenerateToken(sub, "admin@lumina.example", "admin", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, sub, claims.Sub)
	assert.Equal(t, "admin@lumina.example", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Greater(t, claims.Exp, claims.Iat)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "admin@lumina.example", "admin", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "some-other-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "admin@lumina.example", "admin", testSecret, -time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
}

func TestExtractClaims(t *testing.T) {
	sub := uuid.New()
	token, err := GenerateToken(sub, "admin@lumina.example", "admin", testSecret, time.Hour)
	require.NoError(t, err)

	t.Run("valid bearer token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/admin/orders", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		claims, err := ExtractClaims(r, testSecret)
		require.NoError(t, err)
		assert.Equal(t, sub, claims.Sub)
	})

	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/admin/orders", nil)

		_, err := ExtractClaims(r, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/admin/orders", nil)
		r.Header.Set("Authorization", "Basic "+token)

		_, err := ExtractClaims(r, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty bearer", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/admin/orders", nil)
		r.Header.Set("Authorization", "Bearer ")

		_, err := ExtractClaims(r, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
