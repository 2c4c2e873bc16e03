package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/freelance-hub/internal/service"
	"github.com/MKhiriev/freelance-hub/internal/store"
	"github.com/MKhiriev/freelance-hub/models"
)

func TestRegister_Success(t *testing.T) {
	handler := newTestHandler(testServices{})
	router := handler.Init()

	body := strings.NewReader(`{"username":"freelancer","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer test-token", rec.Header().Get("Authorization"))

	var response tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "test-token", response.Token)
}

func TestRegister_InvalidJSON(t *testing.T) {
	handler := newTestHandler(testServices{})
	router := handler.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_EmptyCredentials(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	handler := newTestHandler(testServices{auth: auth})
	router := handler.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"username":"","password":""}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}
	handler := newTestHandler(testServices{auth: auth})
	router := handler.Init()

	body := strings.NewReader(`{"username":"freelancer","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	handler := newTestHandler(testServices{})
	router := handler.Init()

	body := strings.NewReader(`{"username":"freelancer","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer test-token", rec.Header().Get("Authorization"))

	var response tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "test-token", response.Token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(ctx context.Context, username, password string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	handler := newTestHandler(testServices{auth: auth})
	router := handler.Init()

	body := strings.NewReader(`{"username":"freelancer","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_InvalidJSON(t *testing.T) {
	handler := newTestHandler(testServices{})
	router := handler.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
