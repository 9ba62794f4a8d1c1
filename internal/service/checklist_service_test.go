package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/domain/mocks"
	pkgmocks "github.com/sparkleclean/sparkle/pkg/mocks"
)

func setupChecklistServiceTest(t *testing.T) (*mocks.MockChecklistRepository, *mocks.MockApartmentRepository, *ChecklistService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockChecklistRepository(ctrl)
	apartmentRepo := mocks.NewMockApartmentRepository(ctrl)

	log := pkgmocks.NewMockLogger(ctrl)
	log.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithFields(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	svc := NewChecklistService(repo, apartmentRepo, log)
	return repo, apartmentRepo, svc
}

func TestChecklistService_CreateItem(t *testing.T) {
	repo, _, svc := setupChecklistServiceTest(t)

	t.Run("creates a catalog item", func(t *testing.T) {
		room := "kitchen"
		req := &domain.CreateChecklistItemRequest{
			Title:    "Wipe kitchen counters",
			RoomName: &room,
			ItemType: domain.ItemTypeCheck,
		}

		repo.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *domain.ChecklistItem) error {
				assert.Equal(t, req.Title, item.Title)
				item.ID = 14
				return nil
			})

		item, err := svc.CreateItem(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(14), item.ID)
	})

	t.Run("invalid request", func(t *testing.T) {
		_, err := svc.CreateItem(context.Background(), &domain.CreateChecklistItemRequest{})
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidRequest{}, err)
	})
}

func TestChecklistService_AssignItem(t *testing.T) {
	req := &domain.AssignChecklistItemRequest{ChecklistItemID: 14}

	t.Run("defaults display order from the catalog item", func(t *testing.T) {
		repo, apartmentRepo, svc := setupChecklistServiceTest(t)

		apartmentRepo.EXPECT().GetApartmentByID(gomock.Any(), int64(11)).
			Return(&domain.Apartment{ID: 11}, nil)
		repo.EXPECT().GetItemByID(gomock.Any(), int64(14)).
			Return(&domain.ChecklistItem{ID: 14, DisplayOrder: 3}, nil)
		repo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, assignment *domain.ApartmentChecklistItem) error {
				assert.Equal(t, int64(11), assignment.ApartmentID)
				assert.Equal(t, int64(14), assignment.ChecklistItemID)
				assert.Equal(t, 3, assignment.DisplayOrder)
				assignment.ID = 50
				return nil
			})

		assignment, err := svc.AssignItem(context.Background(), 11, req)
		require.NoError(t, err)
		assert.Equal(t, int64(50), assignment.ID)
	})

	t.Run("explicit display order wins", func(t *testing.T) {
		repo, apartmentRepo, svc := setupChecklistServiceTest(t)
		order := 9

		apartmentRepo.EXPECT().GetApartmentByID(gomock.Any(), int64(11)).
			Return(&domain.Apartment{ID: 11}, nil)
		repo.EXPECT().GetItemByID(gomock.Any(), int64(14)).
			Return(&domain.ChecklistItem{ID: 14, DisplayOrder: 3}, nil)
		repo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, assignment *domain.ApartmentChecklistItem) error {
				assert.Equal(t, 9, assignment.DisplayOrder)
				return nil
			})

		_, err := svc.AssignItem(context.Background(), 11, &domain.AssignChecklistItemRequest{
			ChecklistItemID: 14,
			DisplayOrder:    &order,
		})
		assert.NoError(t, err)
	})

	t.Run("unknown apartment", func(t *testing.T) {
		_, apartmentRepo, svc := setupChecklistServiceTest(t)

		apartmentRepo.EXPECT().GetApartmentByID(gomock.Any(), int64(99)).
			Return(nil, &domain.ErrApartmentNotFound{Message: "apartment not found"})

		_, err := svc.AssignItem(context.Background(), 99, req)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrApartmentNotFound{}, err)
	})

	t.Run("unknown item", func(t *testing.T) {
		repo, apartmentRepo, svc := setupChecklistServiceTest(t)

		apartmentRepo.EXPECT().GetApartmentByID(gomock.Any(), int64(11)).
			Return(&domain.Apartment{ID: 11}, nil)
		repo.EXPECT().GetItemByID(gomock.Any(), int64(14)).
			Return(nil, &domain.ErrChecklistItemNotFound{Message: "checklist item not found"})

		_, err := svc.AssignItem(context.Background(), 11, req)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrChecklistItemNotFound{}, err)
	})

	t.Run("already assigned", func(t *testing.T) {
		repo, apartmentRepo, svc := setupChecklistServiceTest(t)

		apartmentRepo.EXPECT().GetApartmentByID(gomock.Any(), int64(11)).
			Return(&domain.Apartment{ID: 11}, nil)
		repo.EXPECT().GetItemByID(gomock.Any(), int64(14)).
			Return(&domain.ChecklistItem{ID: 14}, nil)
		repo.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).
			Return(&domain.ErrChecklistAlreadyAssigned{})

		_, err := svc.AssignItem(context.Background(), 11, req)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrChecklistAlreadyAssigned{}, err)
	})
}

func TestChecklistService_ListAssignments(t *testing.T) {
	repo, apartmentRepo, svc := setupChecklistServiceTest(t)

	apartmentRepo.EXPECT().GetApartmentByID(gomock.Any(), int64(11)).
		Return(&domain.Apartment{ID: 11}, nil)
	repo.EXPECT().ListAssignments(gomock.Any(), int64(11)).
		Return([]*domain.ApartmentChecklistItemDetail{
			{ApartmentChecklistItem: domain.ApartmentChecklistItem{ID: 50}},
		}, nil)

	details, err := svc.ListAssignments(context.Background(), 11)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, int64(50), details[0].ID)
}

func TestChecklistService_CreateCompletion(t *testing.T) {
	operator := &domain.User{ID: 4, Role: domain.RoleOperator}

	t.Run("attributes the completion to the caller", func(t *testing.T) {
		repo, _, svc := setupChecklistServiceTest(t)
		sessionID := int64(30)
		req := &domain.CreateCompletionRequest{
			ChecklistItemID: 14,
			WorkSessionID:   &sessionID,
		}

		repo.EXPECT().GetItemByID(gomock.Any(), int64(14)).
			Return(&domain.ChecklistItem{ID: 14}, nil)
		repo.EXPECT().CreateCompletion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, completion *domain.ChecklistCompletion) error {
				assert.Equal(t, operator.ID, completion.UserID)
				require.NotNil(t, completion.WorkSessionID)
				assert.Equal(t, sessionID, *completion.WorkSessionID)
				completion.ID = 61
				return nil
			})

		completion, err := svc.CreateCompletion(context.Background(), operator, req)
		require.NoError(t, err)
		assert.Equal(t, int64(61), completion.ID)
	})

	t.Run("unknown item", func(t *testing.T) {
		repo, _, svc := setupChecklistServiceTest(t)

		repo.EXPECT().GetItemByID(gomock.Any(), int64(99)).
			Return(nil, &domain.ErrChecklistItemNotFound{Message: "checklist item not found"})

		_, err := svc.CreateCompletion(context.Background(), operator, &domain.CreateCompletionRequest{ChecklistItemID: 99})
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrChecklistItemNotFound{}, err)
	})
}
