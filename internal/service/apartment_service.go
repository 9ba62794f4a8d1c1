package service

import (
	"context"
	"fmt"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type ApartmentService struct {
	repo         domain.ApartmentRepository
	propertyRepo domain.PropertyRepository
	logger       logger.Logger
}

func NewApartmentService(repo domain.ApartmentRepository, propertyRepo domain.PropertyRepository, logger logger.Logger) *ApartmentService {
	return &ApartmentService{
		repo:         repo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

func (s *ApartmentService) ListApartments(ctx context.Context, filter domain.ApartmentFilter) ([]*domain.Apartment, error) {
	apartments, err := s.repo.ListApartments(ctx, filter)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list apartments: %v", err))
		return nil, fmt.Errorf("failed to list apartments: %w", err)
	}
	return apartments, nil
}

func (s *ApartmentService) GetApartmentByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	apartment, err := s.repo.GetApartmentByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrApartmentNotFound); ok {
			return nil, err
		}
		s.logger.WithField("apartment_id", id).Error(fmt.Sprintf("Failed to get apartment: %v", err))
		return nil, fmt.Errorf("failed to get apartment: %w", err)
	}
	return apartment, nil
}

func (s *ApartmentService) CreateApartment(ctx context.Context, req *domain.CreateApartmentRequest) (*domain.Apartment, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	// The parent property must exist up front; a foreign key error later
	// would surface as a 500 instead of a 404.
	if _, err := s.propertyRepo.GetPropertyByID(ctx, req.PropertyID); err != nil {
		if _, ok := err.(*domain.ErrPropertyNotFound); ok {
			return nil, err
		}
		s.logger.WithField("property_id", req.PropertyID).Error(fmt.Sprintf("Failed to check property: %v", err))
		return nil, fmt.Errorf("failed to check property: %w", err)
	}

	apartment := &domain.Apartment{
		Name:       req.Name,
		PropertyID: req.PropertyID,
		Floor:      req.Floor,
		Number:     req.Number,
		Beds:       req.Beds,
		Bathrooms:  req.Bathrooms,
		Notes:      req.Notes,
		Active:     true,
	}
	if req.Active != nil {
		apartment.Active = *req.Active
	}

	if err := s.repo.CreateApartment(ctx, apartment); err != nil {
		s.logger.WithField("name", req.Name).Error(fmt.Sprintf("Failed to create apartment: %v", err))
		return nil, fmt.Errorf("failed to create apartment: %w", err)
	}
	return apartment, nil
}

func (s *ApartmentService) UpdateApartment(ctx context.Context, id int64, req *domain.UpdateApartmentRequest) (*domain.Apartment, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	if req.PropertyID != nil {
		if _, err := s.propertyRepo.GetPropertyByID(ctx, *req.PropertyID); err != nil {
			if _, ok := err.(*domain.ErrPropertyNotFound); ok {
				return nil, err
			}
			s.logger.WithField("property_id", *req.PropertyID).Error(fmt.Sprintf("Failed to check property: %v", err))
			return nil, fmt.Errorf("failed to check property: %w", err)
		}
	}

	apartment, err := s.repo.UpdateApartment(ctx, id, req)
	if err != nil {
		if _, ok := err.(*domain.ErrApartmentNotFound); ok {
			return nil, err
		}
		s.logger.WithField("apartment_id", id).Error(fmt.Sprintf("Failed to update apartment: %v", err))
		return nil, fmt.Errorf("failed to update apartment: %w", err)
	}
	return apartment, nil
}

func (s *ApartmentService) DeleteApartment(ctx context.Context, id int64) error {
	if err := s.repo.DeleteApartment(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrApartmentNotFound); ok {
			return err
		}
		s.logger.WithField("apartment_id", id).Error(fmt.Sprintf("Failed to delete apartment: %v", err))
		return fmt.Errorf("failed to delete apartment: %w", err)
	}
	return nil
}
