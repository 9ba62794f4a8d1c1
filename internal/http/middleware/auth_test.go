package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/domain/mocks"
)

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	authService := mocks.NewMockAuthService(ctrl)

	operator := &domain.User{ID: 4, Email: "op@example.com", Role: domain.RoleOperator}
	authService.EXPECT().VerifyToken(gomock.Any(), "good-token").Return(operator, nil).AnyTimes()
	authService.EXPECT().VerifyToken(gomock.Any(), "bad-token").
		Return(nil, &domain.ErrInvalidCredentials{}).AnyTimes()

	m := NewAuthMiddleware(authService)

	var seen *domain.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "valid token", header: "Bearer good-token", expectedCode: http.StatusNoContent},
		{name: "lowercase scheme", header: "bearer good-token", expectedCode: http.StatusNoContent},
		{name: "missing header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic Zm9vOmJhcg==", expectedCode: http.StatusUnauthorized},
		{name: "no token", header: "Bearer", expectedCode: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad-token", expectedCode: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			m.RequireAuth(next).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedCode == http.StatusNoContent {
				require.NotNil(t, seen)
				assert.Equal(t, operator.ID, seen.ID)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	authService := mocks.NewMockAuthService(ctrl)

	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	operator := &domain.User{ID: 4, Role: domain.RoleOperator}
	authService.EXPECT().VerifyToken(gomock.Any(), "admin-token").Return(admin, nil).AnyTimes()
	authService.EXPECT().VerifyToken(gomock.Any(), "operator-token").Return(operator, nil).AnyTimes()

	m := NewAuthMiddleware(authService)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		rec := httptest.NewRecorder()
		m.RequireAdmin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("operator is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
		req.Header.Set("Authorization", "Bearer operator-token")
		rec := httptest.NewRecorder()
		m.RequireAdmin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users", nil)
		rec := httptest.NewRecorder()
		m.RequireAdmin(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
