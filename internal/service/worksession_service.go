package service

import (
	"context"
	"fmt"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type WorkSessionService struct {
	repo          domain.WorkSessionRepository
	apartmentRepo domain.ApartmentRepository
	logger        logger.Logger
}

func NewWorkSessionService(repo domain.WorkSessionRepository, apartmentRepo domain.ApartmentRepository, logger logger.Logger) *WorkSessionService {
	return &WorkSessionService{
		repo:          repo,
		apartmentRepo: apartmentRepo,
		logger:        logger,
	}
}

func (s *WorkSessionService) CreateSession(ctx context.Context, user *domain.User, req *domain.CreateWorkSessionRequest) (*domain.WorkSession, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	if _, err := s.apartmentRepo.GetApartmentByID(ctx, req.ApartmentID); err != nil {
		if _, ok := err.(*domain.ErrApartmentNotFound); ok {
			return nil, err
		}
		s.logger.WithField("apartment_id", req.ApartmentID).Error(fmt.Sprintf("Failed to check apartment: %v", err))
		return nil, fmt.Errorf("failed to check apartment: %w", err)
	}

	session := &domain.WorkSession{
		UserID:      user.ID,
		ApartmentID: req.ApartmentID,
		Notes:       req.Notes,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		s.logger.WithField("apartment_id", req.ApartmentID).Error(fmt.Sprintf("Failed to create work session: %v", err))
		return nil, fmt.Errorf("failed to create work session: %w", err)
	}
	return session, nil
}

func (s *WorkSessionService) ListSessions(ctx context.Context, filter domain.WorkSessionFilter) ([]*domain.WorkSession, error) {
	sessions, err := s.repo.ListSessions(ctx, filter)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list work sessions: %v", err))
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	return sessions, nil
}

func (s *WorkSessionService) GetSessionByID(ctx context.Context, id int64) (*domain.WorkSession, error) {
	session, err := s.repo.GetSessionByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrWorkSessionNotFound); ok {
			return nil, err
		}
		s.logger.WithField("session_id", id).Error(fmt.Sprintf("Failed to get work session: %v", err))
		return nil, fmt.Errorf("failed to get work session: %w", err)
	}
	return session, nil
}

// UpdateSession lets the owning operator close or annotate their session;
// admins can touch any session.
func (s *WorkSessionService) UpdateSession(ctx context.Context, id int64, actor *domain.User, req *domain.UpdateWorkSessionRequest) (*domain.WorkSession, error) {
	session, err := s.repo.GetSessionByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrWorkSessionNotFound); ok {
			return nil, err
		}
		s.logger.WithField("session_id", id).Error(fmt.Sprintf("Failed to get work session: %v", err))
		return nil, fmt.Errorf("failed to get work session: %w", err)
	}

	if session.UserID != actor.ID && !actor.IsAdmin() {
		return nil, &domain.ErrNotSessionOwner{}
	}

	updated, err := s.repo.UpdateSession(ctx, id, req)
	if err != nil {
		if _, ok := err.(*domain.ErrWorkSessionNotFound); ok {
			return nil, err
		}
		s.logger.WithField("session_id", id).Error(fmt.Sprintf("Failed to update work session: %v", err))
		return nil, fmt.Errorf("failed to update work session: %w", err)
	}
	return updated, nil
}

func (s *WorkSessionService) DeleteSession(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSession(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrWorkSessionNotFound); ok {
			return err
		}
		s.logger.WithField("session_id", id).Error(fmt.Sprintf("Failed to delete work session: %v", err))
		return fmt.Errorf("failed to delete work session: %w", err)
	}
	return nil
}
