package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/freelance-hub/internal/config"
	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/internal/service"
	"github.com/MKhiriev/freelance-hub/internal/utils"
	"github.com/MKhiriev/freelance-hub/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	handler := newTestHandler(testServices{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/clients/", nil)
	rec := httptest.NewRecorder()

	handler.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	handler := newTestHandler(testServices{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/clients/", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	handler.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	handler := newTestHandler(testServices{auth: auth})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not be reached")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/clients/", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	handler.auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_StoresUserIDInContext(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			return models.Token{UserID: 42}, nil
		},
	}
	handler := newTestHandler(testServices{auth: auth})

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		userID, ok := utils.GetUserIDFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), userID)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/clients/", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	handler.auth(next).ServeHTTP(rec, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_DisabledModePassesThrough(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(ctx context.Context, tokenString string) (models.Token, error) {
			t.Error("token parsing must not be reached with auth disabled")
			return models.Token{}, nil
		},
	}
	services := &service.Services{
		AuthService:    auth,
		ClientService:  &mockClientService{},
		ProjectService: &mockProjectService{},
	}
	handler := NewHandler(services, config.Auth{Disabled: true}, logger.Nop())

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	// no Authorization header at all
	req := httptest.NewRequest(http.MethodGet, "/api/clients/", nil)
	rec := httptest.NewRecorder()

	handler.auth(next).ServeHTTP(rec, req)

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
