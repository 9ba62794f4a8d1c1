package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRootHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mux := http.NewServeMux()
	NewRootHandler("1.2.3", newQuietLogger(ctrl)).RegisterRoutes(mux)

	t.Run("service metadata", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "sparkle-api", gjson.Get(rec.Body.String(), "service").String())
		assert.Equal(t, "1.2.3", gjson.Get(rec.Body.String(), "version").String())
	})

	t.Run("health probe", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", gjson.Get(rec.Body.String(), "status").String())
	})
}
