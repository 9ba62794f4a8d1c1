package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/internal/domain/mocks"
	"github.com/sparkleclean/sparkle/pkg/crypto"
	pkgmocks "github.com/sparkleclean/sparkle/pkg/mocks"
)

func setupUserServiceTest(t *testing.T) (*mocks.MockUserRepository, *pkgmocks.MockMailer, *UserService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	mail := pkgmocks.NewMockMailer(ctrl)

	log := pkgmocks.NewMockLogger(ctrl)
	log.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithFields(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	svc := NewUserService(repo, mail, log)
	return repo, mail, svc
}

func TestUserService_CreateUser(t *testing.T) {
	repo, _, svc := setupUserServiceTest(t)

	t.Run("hashes the password", func(t *testing.T) {
		req := &domain.CreateUserRequest{
			Email:    "maria@example.com",
			Name:     "Maria",
			Role:     domain.RoleOperator,
			Password: "long-enough-password",
		}

		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) error {
				assert.NotEqual(t, req.Password, user.HashedPassword)
				assert.True(t, crypto.CheckPasswordHash(req.Password, user.HashedPassword))
				user.ID = 7
				return nil
			})

		user, err := svc.CreateUser(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, domain.RoleOperator, user.Role)
	})

	t.Run("invalid request", func(t *testing.T) {
		req := &domain.CreateUserRequest{
			Email:    "not-an-email",
			Name:     "Maria",
			Role:     domain.RoleOperator,
			Password: "long-enough-password",
		}

		_, err := svc.CreateUser(context.Background(), req)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidRequest{}, err)
	})

	t.Run("short password", func(t *testing.T) {
		req := &domain.CreateUserRequest{
			Email:    "maria@example.com",
			Name:     "Maria",
			Role:     domain.RoleOperator,
			Password: "short",
		}

		_, err := svc.CreateUser(context.Background(), req)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrInvalidRequest{}, err)
	})

	t.Run("duplicate email passes through", func(t *testing.T) {
		req := &domain.CreateUserRequest{
			Email:    "maria@example.com",
			Name:     "Maria",
			Role:     domain.RoleOperator,
			Password: "long-enough-password",
		}

		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(&domain.ErrEmailExists{Message: "a user with this email already exists"})

		_, err := svc.CreateUser(context.Background(), req)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrEmailExists{}, err)
	})
}

func TestUserService_InviteUser(t *testing.T) {
	t.Run("sends temporary password", func(t *testing.T) {
		repo, mail, svc := setupUserServiceTest(t)
		req := &domain.InviteUserRequest{
			Email: "pedro@example.com",
			Name:  "Pedro",
			Role:  domain.RoleOperator,
		}

		var hashed string
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) error {
				hashed = user.HashedPassword
				user.ID = 8
				return nil
			})
		mail.EXPECT().SendInvitation(req.Email, req.Name, gomock.Any()).
			DoAndReturn(func(_, _, tempPassword string) error {
				assert.Len(t, tempPassword, 12)
				assert.True(t, crypto.CheckPasswordHash(tempPassword, hashed))
				return nil
			})

		user, err := svc.InviteUser(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(8), user.ID)
	})

	t.Run("mail failure does not fail the invite", func(t *testing.T) {
		repo, mail, svc := setupUserServiceTest(t)
		req := &domain.InviteUserRequest{
			Email: "pedro@example.com",
			Name:  "Pedro",
			Role:  domain.RoleOperator,
		}

		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
		mail.EXPECT().SendInvitation(req.Email, req.Name, gomock.Any()).
			Return(assert.AnError)

		_, err := svc.InviteUser(context.Background(), req)
		assert.NoError(t, err)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	repo, _, svc := setupUserServiceTest(t)

	t.Run("rehashes new password", func(t *testing.T) {
		password := "new-long-password"
		req := &domain.UpdateUserRequest{Password: &password}

		repo.EXPECT().UpdateUser(gomock.Any(), int64(7), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, patch domain.UserPatch) (*domain.User, error) {
				require.NotNil(t, patch.HashedPassword)
				assert.True(t, crypto.CheckPasswordHash(password, *patch.HashedPassword))
				return &domain.User{ID: 7}, nil
			})

		_, err := svc.UpdateUser(context.Background(), 7, req)
		assert.NoError(t, err)
	})

	t.Run("not found passes through", func(t *testing.T) {
		name := "Renamed"
		repo.EXPECT().UpdateUser(gomock.Any(), int64(99), gomock.Any()).
			Return(nil, &domain.ErrUserNotFound{Message: "user not found"})

		_, err := svc.UpdateUser(context.Background(), 99, &domain.UpdateUserRequest{Name: &name})
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrUserNotFound{}, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	repo, _, svc := setupUserServiceTest(t)
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}

	t.Run("self delete refused", func(t *testing.T) {
		err := svc.DeleteUser(context.Background(), admin.ID, admin)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrSelfDelete{}, err)
	})

	t.Run("deletes another user", func(t *testing.T) {
		repo.EXPECT().DeleteUser(gomock.Any(), int64(2)).Return(nil)

		assert.NoError(t, svc.DeleteUser(context.Background(), 2, admin))
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo, _, svc := setupUserServiceTest(t)
	user := &domain.User{ID: 3, Email: "op@example.com", Name: "Op", Role: domain.RoleOperator}

	name := "Renamed"
	repo.EXPECT().UpdateUser(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, patch domain.UserPatch) (*domain.User, error) {
			assert.Nil(t, patch.Role)
			assert.Nil(t, patch.HashedPassword)
			require.NotNil(t, patch.Name)
			assert.Equal(t, name, *patch.Name)
			return &domain.User{ID: user.ID, Name: name, Role: user.Role}, nil
		})

	updated, err := svc.UpdateProfile(context.Background(), user, &domain.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, domain.RoleOperator, updated.Role)
}
