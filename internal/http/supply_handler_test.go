package http

import (
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

func setupSupplyHandlerTest(t *testing.T) (*mocks.MockSupplyService, *http.ServeMux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockSupplyService(ctrl)

	mux := http.NewServeMux()
	handler := NewSupplyHandler(service, newQuietLogger(ctrl))
	handler.RegisterRoutes(mux, newTestAuth(ctrl))
	return service, mux
}

func TestSupplyHandler_AssignSupply(t *testing.T) {
	t.Run("duplicate assignment", func(t *testing.T) {
		service, mux := setupSupplyHandlerTest(t)
		service.EXPECT().AssignSupply(gomock.Any(), int64(11), gomock.Any()).
			Return(nil, &domain.ErrSupplyAlreadyAssigned{})

		body := `{"supply_id":21}`
		req := httptest.NewRequest(http.MethodPost, "/api/supplies/apartment/11/supplies", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("assigned with thresholds", func(t *testing.T) {
		service, mux := setupSupplyHandlerTest(t)
		service.EXPECT().AssignSupply(gomock.Any(), int64(11), gomock.Any()).
			Return(&domain.ApartmentSupply{ID: 70, ApartmentID: 11, SupplyID: 21, RequiredQuantity: 4, MinQuantity: 2}, nil)

		body := `{"supply_id":21,"required_quantity":4,"min_quantity":2}`
		req := httptest.NewRequest(http.MethodPost, "/api/supplies/apartment/11/supplies", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(4), gjson.Get(rec.Body.String(), "required_quantity").Int())
	})
}

func TestSupplyHandler_Alerts(t *testing.T) {
	t.Run("operator files an alert", func(t *testing.T) {
		service, mux := setupSupplyHandlerTest(t)
		reportedBy := testOperator.ID
		service.EXPECT().CreateAlert(gomock.Any(), testOperator, gomock.Any()).
			Return(&domain.SupplyAlert{ID: 80, SupplyID: 21, Message: "out of dish soap", ReportedBy: &reportedBy}, nil)

		body := `{"supply_id":21,"message":"out of dish soap"}`
		req := httptest.NewRequest(http.MethodPost, "/api/supply-alerts", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+operatorToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, reportedBy, gjson.Get(rec.Body.String(), "reported_by").Int())
	})

	t.Run("unresolved filter", func(t *testing.T) {
		service, mux := setupSupplyHandlerTest(t)
		unresolved := false
		service.EXPECT().ListAlerts(gomock.Any(), domain.SupplyAlertFilter{IsResolved: &unresolved}).
			Return([]*domain.SupplyAlert{{ID: 80, SupplyID: 21, Message: "out of dish soap"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/supply-alerts?is_resolved=false", nil)
		req.Header.Set("Authorization", "Bearer "+operatorToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(1), gjson.Get(rec.Body.String(), "#").Int())
	})

	t.Run("resolve", func(t *testing.T) {
		service, mux := setupSupplyHandlerTest(t)
		service.EXPECT().ResolveAlert(gomock.Any(), int64(80)).
			Return(&domain.SupplyAlert{ID: 80, SupplyID: 21, IsResolved: true}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/supply-alerts/80/resolve", nil)
		req.Header.Set("Authorization", "Bearer "+operatorToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gjson.Get(rec.Body.String(), "is_resolved").Bool())
	})

	t.Run("resolve unknown alert", func(t *testing.T) {
		service, mux := setupSupplyHandlerTest(t)
		service.EXPECT().ResolveAlert(gomock.Any(), int64(99)).
			Return(nil, &domain.ErrSupplyAlertNotFound{Message: "supply alert not found"})

		req := httptest.NewRequest(http.MethodPut, "/api/supply-alerts/99/resolve", nil)
		req.Header.Set("Authorization", "Bearer "+operatorToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
