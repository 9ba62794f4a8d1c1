package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/domain/mocks"
)

func setupAuthHandlerTest(t *testing.T) (*mocks.MockAuthService, *mocks.MockUserService, *http.ServeMux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	authService := mocks.NewMockAuthService(ctrl)
	userService := mocks.NewMockUserService(ctrl)

	mux := http.NewServeMux()
	handler := NewAuthHandler(authService, userService, newQuietLogger(ctrl))
	handler.RegisterRoutes(mux, newTestAuth(ctrl))
	return authService, userService, mux
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns token and profile", func(t *testing.T) {
		authService, _, mux := setupAuthHandlerTest(t)
		authService.EXPECT().Login(gomock.Any(), "admin@example.com", "secret-password").
			Return(&domain.LoginResponse{Token: "signed-token", User: testAdmin}, nil)

		body := `{"email":"admin@example.com","password":"secret-password"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "signed-token", gjson.Get(rec.Body.String(), "token").String())
		assert.Equal(t, "admin@example.com", gjson.Get(rec.Body.String(), "user.email").String())
		assert.False(t, gjson.Get(rec.Body.String(), "user.hashed_password").Exists())
	})

	t.Run("bad credentials", func(t *testing.T) {
		authService, _, mux := setupAuthHandlerTest(t)
		authService.EXPECT().Login(gomock.Any(), "admin@example.com", "wrong").
			Return(nil, &domain.ErrInvalidCredentials{Message: "invalid email or password"})

		body := `{"email":"admin@example.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.True(t, gjson.Get(rec.Body.String(), "error").Exists())
	})

	t.Run("missing password", func(t *testing.T) {
		_, _, mux := setupAuthHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"admin@example.com"}`))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, _, mux := setupAuthHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns the authenticated user", func(t *testing.T) {
		_, _, mux := setupAuthHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+operatorToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "op@example.com", gjson.Get(rec.Body.String(), "email").String())
		assert.Equal(t, "operator", gjson.Get(rec.Body.String(), "role").String())
	})

	t.Run("no token", func(t *testing.T) {
		_, _, mux := setupAuthHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_UpdateMe(t *testing.T) {
	_, userService, mux := setupAuthHandlerTest(t)

	name := "Renamed"
	userService.EXPECT().UpdateProfile(gomock.Any(), testOperator, gomock.Any()).
		DoAndReturn(func(_ context.Context, user *domain.User, req *domain.UpdateProfileRequest) (*domain.User, error) {
			require.NotNil(t, req.Name)
			assert.Equal(t, name, *req.Name)
			return &domain.User{ID: user.ID, Email: user.Email, Name: name, Role: user.Role}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/api/auth/me", strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set("Authorization", "Bearer "+operatorToken)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Renamed", gjson.Get(rec.Body.String(), "name").String())
}
