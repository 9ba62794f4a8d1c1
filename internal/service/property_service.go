package service

import (
	"context"
	"fmt"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type PropertyService struct {
	repo   domain.PropertyRepository
	logger logger.Logger
}

func NewPropertyService(repo domain.PropertyRepository, logger logger.Logger) *PropertyService {
	return &PropertyService{
		repo:   repo,
		logger: logger,
	}
}

func (s *PropertyService) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	properties, err := s.repo.ListProperties(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list properties: %v", err))
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

func (s *PropertyService) GetPropertyByID(ctx context.Context, id int64) (*domain.Property, error) {
	property, err := s.repo.GetPropertyByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrPropertyNotFound); ok {
			return nil, err
		}
		s.logger.WithField("property_id", id).Error(fmt.Sprintf("Failed to get property: %v", err))
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return property, nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, req *domain.CreatePropertyRequest) (*domain.Property, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	property := &domain.Property{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Active:      true,
	}
	if req.Active != nil {
		property.Active = *req.Active
	}

	if err := s.repo.CreateProperty(ctx, property); err != nil {
		s.logger.WithField("name", req.Name).Error(fmt.Sprintf("Failed to create property: %v", err))
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id int64, req *domain.UpdatePropertyRequest) (*domain.Property, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	property, err := s.repo.UpdateProperty(ctx, id, req)
	if err != nil {
		if _, ok := err.(*domain.ErrPropertyNotFound); ok {
			return nil, err
		}
		s.logger.WithField("property_id", id).Error(fmt.Sprintf("Failed to update property: %v", err))
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return property, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id int64) error {
	if err := s.repo.DeleteProperty(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrPropertyNotFound); ok {
			return err
		}
		s.logger.WithField("property_id", id).Error(fmt.Sprintf("Failed to delete property: %v", err))
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return nil
}
