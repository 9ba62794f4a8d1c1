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

func setupChecklistHandlerTest(t *testing.T) (*mocks.MockChecklistService, *http.ServeMux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockChecklistService(ctrl)

	mux := http.NewServeMux()
	handler := NewChecklistHandler(service, newQuietLogger(ctrl))
	handler.RegisterRoutes(mux, newTestAuth(ctrl))
	return service, mux
}

func TestChecklistHandler_ListItems(t *testing.T) {
	service, mux := setupChecklistHandlerTest(t)

	room := "kitchen"
	service.EXPECT().ListItems(gomock.Any(), domain.ChecklistItemFilter{RoomName: &room}).
		Return([]*domain.ChecklistItem{
			{ID: 14, Title: "Wipe kitchen counters", ItemType: domain.ItemTypeCheck},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/checklist-items?room_name=kitchen", nil)
	req.Header.Set("Authorization", "Bearer "+operatorToken)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Wipe kitchen counters", gjson.Get(rec.Body.String(), "0.title").String())
}

func TestChecklistHandler_AssignItem(t *testing.T) {
	t.Run("assigns to an apartment", func(t *testing.T) {
		service, mux := setupChecklistHandlerTest(t)
		service.EXPECT().AssignItem(gomock.Any(), int64(11), gomock.Any()).
			Return(&domain.ApartmentChecklistItem{ID: 50, ApartmentID: 11, ChecklistItemID: 14}, nil)

		body := `{"checklist_item_id":14}`
		req := httptest.NewRequest(http.MethodPost, "/api/checklist-items/apartment/11/checklist-items", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, int64(50), gjson.Get(rec.Body.String(), "id").Int())
	})

	t.Run("duplicate assignment", func(t *testing.T) {
		service, mux := setupChecklistHandlerTest(t)
		service.EXPECT().AssignItem(gomock.Any(), int64(11), gomock.Any()).
			Return(nil, &domain.ErrChecklistAlreadyAssigned{})

		body := `{"checklist_item_id":14}`
		req := httptest.NewRequest(http.MethodPost, "/api/checklist-items/apartment/11/checklist-items", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+adminToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("operator cannot assign", func(t *testing.T) {
		_, mux := setupChecklistHandlerTest(t)

		body := `{"checklist_item_id":14}`
		req := httptest.NewRequest(http.MethodPost, "/api/checklist-items/apartment/11/checklist-items", strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+operatorToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestChecklistHandler_CreateCompletion(t *testing.T) {
	service, mux := setupChecklistHandlerTest(t)

	service.EXPECT().CreateCompletion(gomock.Any(), testOperator, gomock.Any()).
		Return(&domain.ChecklistCompletion{ID: 61, ChecklistItemID: 14, UserID: testOperator.ID}, nil)

	body := `{"checklist_item_id":14,"work_session_id":30}`
	req := httptest.NewRequest(http.MethodPost, "/api/completions", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+operatorToken)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testOperator.ID, gjson.Get(rec.Body.String(), "user_id").Int())
}

func TestChecklistHandler_ListCompletions(t *testing.T) {
	t.Run("apartment filter", func(t *testing.T) {
		service, mux := setupChecklistHandlerTest(t)
		apartmentID := int64(11)
		service.EXPECT().ListCompletions(gomock.Any(), domain.CompletionFilter{ApartmentID: &apartmentID}).
			Return([]*domain.CompletionDetail{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/completions?apartment_id=11", nil)
		req.Header.Set("Authorization", "Bearer "+operatorToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		_, mux := setupChecklistHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/completions?limit=-3", nil)
		req.Header.Set("Authorization", "Bearer "+operatorToken)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
