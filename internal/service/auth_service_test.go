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
	"github.com/sparkleclean/sparkle/pkg/crypto"
	pkgmocks "github.com/sparkleclean/sparkle/pkg/mocks"
)

func setupAuthServiceTest(t *testing.T) (*mocks.MockUserRepository, *AuthService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)

	log := pkgmocks.NewMockLogger(ctrl)
	log.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithFields(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	svc := NewAuthService(repo, "test-secret-key", time.Hour, log)
	return repo, svc
}

func testUserWithPassword(t *testing.T, password string) *domain.User {
	t.Helper()

	hashed, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return &domain.User{
		ID:             1,
		Email:          "admin@example.com",
		HashedPassword: hashed,
		Name:           "Admin",
		Role:           domain.RoleAdmin,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestAuthService_Login(t *testing.T) {
	repo, svc := setupAuthServiceTest(t)
	user := testUserWithPassword(t, "correct-password")

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		resp, err := svc.Login(context.Background(), user.Email, "correct-password")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.Email, resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		_, err := svc.Login(context.Background(), user.Email, "wrong-password")
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidCredentials{}, err)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		repo.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").
			Return(nil, &domain.ErrUserNotFound{Message: "user not found"})

		_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidCredentials{}, err)
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	repo, svc := setupAuthServiceTest(t)
	user := testUserWithPassword(t, "correct-password")

	t.Run("round trip", func(t *testing.T) {
		repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil).Times(2)

		resp, err := svc.Login(context.Background(), user.Email, "correct-password")
		require.NoError(t, err)

		verified, err := svc.VerifyToken(context.Background(), resp.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, verified.ID)
		assert.Equal(t, user.Email, verified.Email)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.VerifyToken(context.Background(), "not-a-token")
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidCredentials{}, err)
	})

	t.Run("deleted user", func(t *testing.T) {
		repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)

		resp, err := svc.Login(context.Background(), user.Email, "correct-password")
		require.NoError(t, err)

		repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).
			Return(nil, &domain.ErrUserNotFound{Message: "user not found"})

		_, err = svc.VerifyToken(context.Background(), resp.Token)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidCredentials{}, err)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		otherRepo := mocks.NewMockUserRepository(ctrl)
		otherLog := pkgmocks.NewMockLogger(ctrl)
		otherLog.EXPECT().Error(gomock.Any()).AnyTimes()
		otherSvc := NewAuthService(otherRepo, "a-different-secret", time.Hour, otherLog)

		otherRepo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
		resp, err := otherSvc.Login(context.Background(), user.Email, "correct-password")
		require.NoError(t, err)

		_, err = svc.VerifyToken(context.Background(), resp.Token)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidCredentials{}, err)
	})
}

func TestAuthService_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	log := pkgmocks.NewMockLogger(ctrl)
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	svc := NewAuthService(repo, "test-secret-key", -time.Minute, log)
	user := testUserWithPassword(t, "correct-password")

	repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	resp, err := svc.Login(context.Background(), user.Email, "correct-password")
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), resp.Token)
	assert.Error(t, err)
	assert.IsType(t, &domain.ErrInvalidCredentials{}, err)
}
