package service

import (
	"context"
	"fmt"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/pkg/crypto"
	"github.com/sparkleclean/sparkle/pkg/logger"
	"github.com/sparkleclean/sparkle/pkg/mailer"
)

const tempPasswordLength = 12

type UserService struct {
	repo   domain.UserRepository
	mailer mailer.Mailer
	logger logger.Logger
}

func NewUserService(repo domain.UserRepository, mailer mailer.Mailer, logger logger.Logger) *UserService {
	return &UserService{
		repo:   repo,
		mailer: mailer,
		logger: logger,
	}
}

func (s *UserService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]*domain.User, error) {
	users, err := s.repo.ListUsers(ctx, filter)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list users: %v", err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to hash password: %v", err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:          req.Email,
		HashedPassword: hash,
		Name:           req.Name,
		Role:           req.Role,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if _, ok := err.(*domain.ErrEmailExists); ok {
			return nil, err
		}
		s.logger.WithField("email", req.Email).Error(fmt.Sprintf("Failed to create user: %v", err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// InviteUser creates an operator or admin account with a generated temporary
// password and emails it to them. A mail failure does not roll the account
// back; the admin can resend or reset manually.
func (s *UserService) InviteUser(ctx context.Context, req *domain.InviteUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	tempPassword, err := crypto.GeneratePassword(tempPasswordLength)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to generate password: %v", err))
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	hash, err := crypto.HashPassword(tempPassword)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to hash password: %v", err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:          req.Email,
		HashedPassword: hash,
		Name:           req.Name,
		Role:           req.Role,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if _, ok := err.(*domain.ErrEmailExists); ok {
			return nil, err
		}
		s.logger.WithField("email", req.Email).Error(fmt.Sprintf("Failed to create invited user: %v", err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.mailer.SendInvitation(user.Email, user.Name, tempPassword); err != nil {
		s.logger.WithField("email", user.Email).Error(fmt.Sprintf("Failed to send invitation email: %v", err))
	}

	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, req *domain.UpdateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	patch := domain.UserPatch{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	}
	if req.Password != nil {
		hash, err := crypto.HashPassword(*req.Password)
		if err != nil {
			s.logger.Error(fmt.Sprintf("Failed to hash password: %v", err))
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		patch.HashedPassword = &hash
	}

	user, err := s.repo.UpdateUser(ctx, id, patch)
	if err != nil {
		switch err.(type) {
		case *domain.ErrUserNotFound, *domain.ErrEmailExists:
			return nil, err
		}
		s.logger.WithField("user_id", id).Error(fmt.Sprintf("Failed to update user: %v", err))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64, actor *domain.User) error {
	if actor != nil && actor.ID == id {
		return &domain.ErrSelfDelete{}
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			return err
		}
		s.logger.WithField("user_id", id).Error(fmt.Sprintf("Failed to delete user: %v", err))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User, req *domain.UpdateProfileRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	patch := domain.UserPatch{
		Email: req.Email,
		Name:  req.Name,
	}

	updated, err := s.repo.UpdateUser(ctx, user.ID, patch)
	if err != nil {
		switch err.(type) {
		case *domain.ErrUserNotFound, *domain.ErrEmailExists:
			return nil, err
		}
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to update profile: %v", err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}
