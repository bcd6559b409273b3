package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lumina_server/lib"
	"lumina_server/services"
	"lumina_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMiddleware(t *testing.T) *Middleware {
	t.Helper()

	cfg := &structs.Config{
		Auth: &structs.AuthConfig{
			TokenSecret: "middleware-test-secret",
			TokenExpiry: time.Hour,
		},
		RateLimit: &structs.RateLimitConfig{
			AuthLimit:     10,
			AuthWindow:    time.Minute,
			AdminLimit:    120,
			AdminWindow:   time.Minute,
			GeneralLimit:  300,
			GeneralWindow: time.Minute,
		},
	}
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	authService := services.NewAuthService(logger, cfg, nil)

	return NewMiddleware(cfg, logger, nil, authService)
}

func TestSecurityHeaders(t *testing.T) {
	mw := newTestMiddleware(t)

	handler := mw.SecurityHeaders()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/products", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestAdminAuthMiddleware(t *testing.T) {
	mw := newTestMiddleware(t)
	secret := mw.cfg.Auth.TokenSecret

	var gotClaims *structs.AuthClaims
	handler := mw.AdminAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = GetClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/admin/orders", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/admin/orders", nil)
		r.Header.Set("Authorization", "Bearer nonsense")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-admin role", func(t *testing.T) {
		token, err := lib.GenerateToken(uuid.New(), "user@lumina.example", "customer", secret, time.Hour)
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/api/admin/orders", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin token passes and claims land in context", func(t *testing.T) {
		sub := uuid.New()
		token, err := lib.GenerateToken(sub, "admin@lumina.example", "admin", secret, time.Hour)
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/api/admin/orders", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, r)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotClaims)
		assert.Equal(t, sub, gotClaims.Sub)
		assert.Equal(t, "admin", gotClaims.Role)
	})
}

func TestGetRateLimitForEndpoint(t *testing.T) {
	mw := newTestMiddleware(t)

	tests := []struct {
		path  string
		limit int
	}{
		{"/api/auth/login", 10},
		{"/api/admin/orders", 120},
		{"/api/admin/products/123", 120},
		{"/api/products", 300},
		{"/api/checkout", 300},
		{"/health/server", 300},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			limit, window := mw.getRateLimitForEndpoint(tt.path)
			assert.Equal(t, tt.limit, limit)
			assert.Equal(t, time.Minute, window)
		})
	}
}

func TestGetClientIP(t *testing.T) {
	mw := newTestMiddleware(t)

	t.Run("x-forwarded-for wins", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		r.Header.Set("X-Real-IP", "198.51.100.2")

		assert.Equal(t, "203.0.113.9", mw.getClientIP(r))
	})

	t.Run("x-real-ip fallback", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("X-Real-IP", "198.51.100.2")

		assert.Equal(t, "198.51.100.2", mw.getClientIP(r))
	})

	t.Run("remote addr strips port", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = "192.0.2.7:54321"

		assert.Equal(t, "192.0.2.7", mw.getClientIP(r))
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/api/products", "/api/products"},
		{"/api/products/", "/api/products"},
		{"/api/products/lampe-halo", "/api/products"},
		{"/api/orders/track/PANIER-20260830-A1B2C3D4", "/api/orders"},
		{"/api/admin/orders/0b1f3c9a", "/api/admin"},
		{"/api/admin/orders/0b1f3c9a/status", "/api/admin"},
		{"/health/server", "/health/server"},
		{"/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeEndpoint(tt.path))
		})
	}
}
