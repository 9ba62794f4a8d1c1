package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/domain/mocks"
	pkgmocks "github.com/sparkleclean/sparkle/pkg/mocks"
)

func setupWorkSessionServiceTest(t *testing.T) (*mocks.MockWorkSessionRepository, *mocks.MockApartmentRepository, *WorkSessionService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWorkSessionRepository(ctrl)
	apartmentRepo := mocks.NewMockApartmentRepository(ctrl)

	log := pkgmocks.NewMockLogger(ctrl)
	log.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithFields(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	svc := NewWorkSessionService(repo, apartmentRepo, log)
	return repo, apartmentRepo, svc
}

func TestWorkSessionService_CreateSession(t *testing.T) {
	operator := &domain.User{ID: 4, Role: domain.RoleOperator}

	t.Run("starts a session for the caller", func(t *testing.T) {
		repo, apartmentRepo, svc := setupWorkSessionServiceTest(t)
		req := &domain.CreateWorkSessionRequest{ApartmentID: 11}

		apartmentRepo.EXPECT().GetApartmentByID(gomock.Any(), int64(11)).
			Return(&domain.Apartment{ID: 11}, nil)
		repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, session *domain.WorkSession) error {
				assert.Equal(t, operator.ID, session.UserID)
				assert.Equal(t, int64(11), session.ApartmentID)
				session.ID = 30
				return nil
			})

		session, err := svc.CreateSession(context.Background(), operator, req)
		require.NoError(t, err)
		assert.Equal(t, int64(30), session.ID)
	})

	t.Run("unknown apartment", func(t *testing.T) {
		repo, apartmentRepo, svc := setupWorkSessionServiceTest(t)
		_ = repo

		apartmentRepo.EXPECT().GetApartmentByID(gomock.Any(), int64(99)).
			Return(nil, &domain.ErrApartmentNotFound{Message: "apartment not found"})

		_, err := svc.CreateSession(context.Background(), operator, &domain.CreateWorkSessionRequest{ApartmentID: 99})
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrApartmentNotFound{}, err)
	})

	t.Run("invalid request", func(t *testing.T) {
		_, _, svc := setupWorkSessionServiceTest(t)

		_, err := svc.CreateSession(context.Background(), operator, &domain.CreateWorkSessionRequest{})
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidRequest{}, err)
	})
}

func TestWorkSessionService_UpdateSession(t *testing.T) {
	owner := &domain.User{ID: 4, Role: domain.RoleOperator}
	other := &domain.User{ID: 5, Role: domain.RoleOperator}
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	endTime := time.Now().UTC()
	req := &domain.UpdateWorkSessionRequest{EndTime: &endTime}

	t.Run("owner closes own session", func(t *testing.T) {
		repo, _, svc := setupWorkSessionServiceTest(t)

		repo.EXPECT().GetSessionByID(gomock.Any(), int64(30)).
			Return(&domain.WorkSession{ID: 30, UserID: owner.ID}, nil)
		repo.EXPECT().UpdateSession(gomock.Any(), int64(30), req).
			Return(&domain.WorkSession{ID: 30, UserID: owner.ID, EndTime: &endTime}, nil)

		session, err := svc.UpdateSession(context.Background(), 30, owner, req)
		require.NoError(t, err)
		require.NotNil(t, session.EndTime)
	})

	t.Run("another operator is refused", func(t *testing.T) {
		repo, _, svc := setupWorkSessionServiceTest(t)

		repo.EXPECT().GetSessionByID(gomock.Any(), int64(30)).
			Return(&domain.WorkSession{ID: 30, UserID: owner.ID}, nil)

		_, err := svc.UpdateSession(context.Background(), 30, other, req)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrNotSessionOwner{}, err)
	})

	t.Run("admin can close any session", func(t *testing.T) {
		repo, _, svc := setupWorkSessionServiceTest(t)

		repo.EXPECT().GetSessionByID(gomock.Any(), int64(30)).
			Return(&domain.WorkSession{ID: 30, UserID: owner.ID}, nil)
		repo.EXPECT().UpdateSession(gomock.Any(), int64(30), req).
			Return(&domain.WorkSession{ID: 30, UserID: owner.ID, EndTime: &endTime}, nil)

		_, err := svc.UpdateSession(context.Background(), 30, admin, req)
		assert.NoError(t, err)
	})

	t.Run("session not found", func(t *testing.T) {
		repo, _, svc := setupWorkSessionServiceTest(t)

		repo.EXPECT().GetSessionByID(gomock.Any(), int64(77)).
			Return(nil, &domain.ErrWorkSessionNotFound{Message: "work session not found"})

		_, err := svc.UpdateSession(context.Background(), 77, owner, req)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrWorkSessionNotFound{}, err)
	})
}

func TestWorkSessionService_DeleteSession(t *testing.T) {
	repo, _, svc := setupWorkSessionServiceTest(t)

	repo.EXPECT().DeleteSession(gomock.Any(), int64(30)).Return(nil)
	assert.NoError(t, svc.DeleteSession(context.Background(), 30))

	repo.EXPECT().DeleteSession(gomock.Any(), int64(99)).
		Return(&domain.ErrWorkSessionNotFound{Message: "work session not found"})
	err := svc.DeleteSession(context.Background(), 99)
	assert.IsType(t, &domain.ErrWorkSessionNotFound{}, err)
}
