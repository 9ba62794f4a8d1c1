package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type SupplyService struct {
	repo          domain.SupplyRepository
	apartmentRepo domain.ApartmentRepository
	logger        logger.Logger
}

func NewSupplyService(repo domain.SupplyRepository, apartmentRepo domain.ApartmentRepository, logger logger.Logger) *SupplyService {
	return &SupplyService{
		repo:          repo,
		apartmentRepo: apartmentRepo,
		logger:        logger,
	}
}

func (s *SupplyService) ListSupplies(ctx context.Context, filter domain.SupplyFilter) ([]*domain.Supply, error) {
	supplies, err := s.repo.ListSupplies(ctx, filter)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list supplies: %v", err))
		return nil, fmt.Errorf("failed to list supplies: %w", err)
	}
	return supplies, nil
}

func (s *SupplyService) GetSupplyByID(ctx context.Context, id int64) (*domain.Supply, error) {
	supply, err := s.repo.GetSupplyByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrSupplyNotFound); ok {
			return nil, err
		}
		s.logger.WithField("supply_id", id).Error(fmt.Sprintf("Failed to get supply: %v", err))
		return nil, fmt.Errorf("failed to get supply: %w", err)
	}
	return supply, nil
}

func (s *SupplyService) CreateSupply(ctx context.Context, req *domain.CreateSupplyRequest) (*domain.Supply, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	supply := &domain.Supply{
		Name:          req.Name,
		TotalQuantity: req.TotalQuantity,
		Unit:          req.Unit,
		Category:      req.Category,
		Room:          req.Room,
		PurchaseLink:  req.PurchaseLink,
		Notes:         req.Notes,
	}
	if err := s.repo.CreateSupply(ctx, supply); err != nil {
		s.logger.WithField("name", req.Name).Error(fmt.Sprintf("Failed to create supply: %v", err))
		return nil, fmt.Errorf("failed to create supply: %w", err)
	}
	return supply, nil
}

func (s *SupplyService) UpdateSupply(ctx context.Context, id int64, req *domain.UpdateSupplyRequest) (*domain.Supply, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	supply, err := s.repo.UpdateSupply(ctx, id, req)
	if err != nil {
		if _, ok := err.(*domain.ErrSupplyNotFound); ok {
			return nil, err
		}
		s.logger.WithField("supply_id", id).Error(fmt.Sprintf("Failed to update supply: %v", err))
		return nil, fmt.Errorf("failed to update supply: %w", err)
	}
	return supply, nil
}

func (s *SupplyService) DeleteSupply(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSupply(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrSupplyNotFound); ok {
			return err
		}
		s.logger.WithField("supply_id", id).Error(fmt.Sprintf("Failed to delete supply: %v", err))
		return fmt.Errorf("failed to delete supply: %w", err)
	}
	return nil
}

func (s *SupplyService) ListAssignments(ctx context.Context, apartmentID int64) ([]*domain.ApartmentSupplyDetail, error) {
	if _, err := s.apartmentRepo.GetApartmentByID(ctx, apartmentID); err != nil {
		if _, ok := err.(*domain.ErrApartmentNotFound); ok {
			return nil, err
		}
		s.logger.WithField("apartment_id", apartmentID).Error(fmt.Sprintf("Failed to check apartment: %v", err))
		return nil, fmt.Errorf("failed to check apartment: %w", err)
	}

	details, err := s.repo.ListAssignments(ctx, apartmentID)
	if err != nil {
		s.logger.WithField("apartment_id", apartmentID).Error(fmt.Sprintf("Failed to list supply assignments: %v", err))
		return nil, fmt.Errorf("failed to list supply assignments: %w", err)
	}
	return details, nil
}

func (s *SupplyService) AssignSupply(ctx context.Context, apartmentID int64, req *domain.AssignSupplyRequest) (*domain.ApartmentSupply, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	if _, err := s.apartmentRepo.GetApartmentByID(ctx, apartmentID); err != nil {
		if _, ok := err.(*domain.ErrApartmentNotFound); ok {
			return nil, err
		}
		s.logger.WithField("apartment_id", apartmentID).Error(fmt.Sprintf("Failed to check apartment: %v", err))
		return nil, fmt.Errorf("failed to check apartment: %w", err)
	}

	if _, err := s.repo.GetSupplyByID(ctx, req.SupplyID); err != nil {
		if _, ok := err.(*domain.ErrSupplyNotFound); ok {
			return nil, err
		}
		s.logger.WithField("supply_id", req.SupplyID).Error(fmt.Sprintf("Failed to check supply: %v", err))
		return nil, fmt.Errorf("failed to check supply: %w", err)
	}

	assignment := &domain.ApartmentSupply{
		ApartmentID: apartmentID,
		SupplyID:    req.SupplyID,
	}
	if req.RequiredQuantity != nil {
		assignment.RequiredQuantity = *req.RequiredQuantity
	}
	if req.MinQuantity != nil {
		assignment.MinQuantity = *req.MinQuantity
	}

	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		if _, ok := err.(*domain.ErrSupplyAlreadyAssigned); ok {
			return nil, err
		}
		s.logger.WithFields(map[string]interface{}{
			"apartment_id": apartmentID,
			"supply_id":    req.SupplyID,
		}).Error(fmt.Sprintf("Failed to assign supply: %v", err))
		return nil, fmt.Errorf("failed to assign supply: %w", err)
	}
	return assignment, nil
}

func (s *SupplyService) UpdateAssignment(ctx context.Context, id int64, req *domain.UpdateApartmentSupplyRequest) (*domain.ApartmentSupply, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	assignment, err := s.repo.UpdateAssignment(ctx, id, req)
	if err != nil {
		if _, ok := err.(*domain.ErrSupplyAssignmentNotFound); ok {
			return nil, err
		}
		s.logger.WithField("assignment_id", id).Error(fmt.Sprintf("Failed to update supply assignment: %v", err))
		return nil, fmt.Errorf("failed to update supply assignment: %w", err)
	}
	return assignment, nil
}

func (s *SupplyService) UnassignSupply(ctx context.Context, id int64) error {
	if err := s.repo.DeleteAssignment(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrSupplyAssignmentNotFound); ok {
			return err
		}
		s.logger.WithField("assignment_id", id).Error(fmt.Sprintf("Failed to delete supply assignment: %v", err))
		return fmt.Errorf("failed to delete supply assignment: %w", err)
	}
	return nil
}

// CreateAlert files a shortage report attributed to the calling user.
func (s *SupplyService) CreateAlert(ctx context.Context, user *domain.User, req *domain.CreateSupplyAlertRequest) (*domain.SupplyAlert, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	if _, err := s.repo.GetSupplyByID(ctx, req.SupplyID); err != nil {
		if _, ok := err.(*domain.ErrSupplyNotFound); ok {
			return nil, err
		}
		s.logger.WithField("supply_id", req.SupplyID).Error(fmt.Sprintf("Failed to check supply: %v", err))
		return nil, fmt.Errorf("failed to check supply: %w", err)
	}

	alert := &domain.SupplyAlert{
		SupplyID: req.SupplyID,
		Message:  req.Message,
	}
	if user != nil {
		alert.ReportedBy = &user.ID
	}

	if err := s.repo.CreateAlert(ctx, alert); err != nil {
		s.logger.WithField("supply_id", req.SupplyID).Error(fmt.Sprintf("Failed to create supply alert: %v", err))
		return nil, fmt.Errorf("failed to create supply alert: %w", err)
	}
	return alert, nil
}

func (s *SupplyService) ListAlerts(ctx context.Context, filter domain.SupplyAlertFilter) ([]*domain.SupplyAlert, error) {
	alerts, err := s.repo.ListAlerts(ctx, filter)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list supply alerts: %v", err))
		return nil, fmt.Errorf("failed to list supply alerts: %w", err)
	}
	return alerts, nil
}

// ResolveAlert marks the alert resolved. Resolving an already-resolved alert
// just refreshes the timestamp.
func (s *SupplyService) ResolveAlert(ctx context.Context, id int64) (*domain.SupplyAlert, error) {
	alert, err := s.repo.ResolveAlert(ctx, id, time.Now().UTC())
	if err != nil {
		if _, ok := err.(*domain.ErrSupplyAlertNotFound); ok {
			return nil, err
		}
		s.logger.WithField("alert_id", id).Error(fmt.Sprintf("Failed to resolve supply alert: %v", err))
		return nil, fmt.Errorf("failed to resolve supply alert: %w", err)
	}
	return alert, nil
}
