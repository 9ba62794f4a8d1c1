package service

import (
	"context"
	"fmt"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type ChecklistService struct {
	repo          domain.ChecklistRepository
	apartmentRepo domain.ApartmentRepository
	logger        logger.Logger
}

func NewChecklistService(repo domain.ChecklistRepository, apartmentRepo domain.ApartmentRepository, logger logger.Logger) *ChecklistService {
	return &ChecklistService{
		repo:          repo,
		apartmentRepo: apartmentRepo,
		logger:        logger,
	}
}

func (s *ChecklistService) ListItems(ctx context.Context, filter domain.ChecklistItemFilter) ([]*domain.ChecklistItem, error) {
	items, err := s.repo.ListItems(ctx, filter)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list checklist items: %v", err))
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	return items, nil
}

func (s *ChecklistService) GetItemByID(ctx context.Context, id int64) (*domain.ChecklistItem, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrChecklistItemNotFound); ok {
			return nil, err
		}
		s.logger.WithField("item_id", id).Error(fmt.Sprintf("Failed to get checklist item: %v", err))
		return nil, fmt.Errorf("failed to get checklist item: %w", err)
	}
	return item, nil
}

func (s *ChecklistService) CreateItem(ctx context.Context, req *domain.CreateChecklistItemRequest) (*domain.ChecklistItem, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	item := &domain.ChecklistItem{
		Title:          req.Title,
		Description:    req.Description,
		RoomName:       req.RoomName,
		IsMandatory:    req.IsMandatory,
		DisplayOrder:   req.DisplayOrder,
		ItemType:       req.ItemType,
		ExpectedNumber: req.ExpectedNumber,
		PurchaseLink:   req.PurchaseLink,
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		s.logger.WithField("title", req.Title).Error(fmt.Sprintf("Failed to create checklist item: %v", err))
		return nil, fmt.Errorf("failed to create checklist item: %w", err)
	}
	return item, nil
}

func (s *ChecklistService) UpdateItem(ctx context.Context, id int64, req *domain.UpdateChecklistItemRequest) (*domain.ChecklistItem, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	item, err := s.repo.UpdateItem(ctx, id, req)
	if err != nil {
		if _, ok := err.(*domain.ErrChecklistItemNotFound); ok {
			return nil, err
		}
		s.logger.WithField("item_id", id).Error(fmt.Sprintf("Failed to update checklist item: %v", err))
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}
	return item, nil
}

func (s *ChecklistService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrChecklistItemNotFound); ok {
			return err
		}
		s.logger.WithField("item_id", id).Error(fmt.Sprintf("Failed to delete checklist item: %v", err))
		return fmt.Errorf("failed to delete checklist item: %w", err)
	}
	return nil
}

func (s *ChecklistService) ListAssignments(ctx context.Context, apartmentID int64) ([]*domain.ApartmentChecklistItemDetail, error) {
	if _, err := s.apartmentRepo.GetApartmentByID(ctx, apartmentID); err != nil {
		if _, ok := err.(*domain.ErrApartmentNotFound); ok {
			return nil, err
		}
		s.logger.WithField("apartment_id", apartmentID).Error(fmt.Sprintf("Failed to check apartment: %v", err))
		return nil, fmt.Errorf("failed to check apartment: %w", err)
	}

	details, err := s.repo.ListAssignments(ctx, apartmentID)
	if err != nil {
		s.logger.WithField("apartment_id", apartmentID).Error(fmt.Sprintf("Failed to list checklist assignments: %v", err))
		return nil, fmt.Errorf("failed to list checklist assignments: %w", err)
	}
	return details, nil
}

// AssignItem links a catalog item to an apartment. The unique constraint on
// the pair turns a concurrent duplicate into ErrChecklistAlreadyAssigned
// rather than a second row.
func (s *ChecklistService) AssignItem(ctx context.Context, apartmentID int64, req *domain.AssignChecklistItemRequest) (*domain.ApartmentChecklistItem, error) {
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

	item, err := s.repo.GetItemByID(ctx, req.ChecklistItemID)
	if err != nil {
		if _, ok := err.(*domain.ErrChecklistItemNotFound); ok {
			return nil, err
		}
		s.logger.WithField("item_id", req.ChecklistItemID).Error(fmt.Sprintf("Failed to check checklist item: %v", err))
		return nil, fmt.Errorf("failed to check checklist item: %w", err)
	}

	assignment := &domain.ApartmentChecklistItem{
		ApartmentID:     apartmentID,
		ChecklistItemID: item.ID,
		DisplayOrder:    item.DisplayOrder,
	}
	if req.DisplayOrder != nil {
		assignment.DisplayOrder = *req.DisplayOrder
	}

	if err := s.repo.CreateAssignment(ctx, assignment); err != nil {
		if _, ok := err.(*domain.ErrChecklistAlreadyAssigned); ok {
			return nil, err
		}
		s.logger.WithFields(map[string]interface{}{
			"apartment_id": apartmentID,
			"item_id":      req.ChecklistItemID,
		}).Error(fmt.Sprintf("Failed to assign checklist item: %v", err))
		return nil, fmt.Errorf("failed to assign checklist item: %w", err)
	}
	return assignment, nil
}

func (s *ChecklistService) UpdateAssignment(ctx context.Context, id int64, req *domain.UpdateChecklistAssignmentRequest) (*domain.ApartmentChecklistItem, error) {
	assignment, err := s.repo.UpdateAssignment(ctx, id, req)
	if err != nil {
		if _, ok := err.(*domain.ErrChecklistAssignmentNotFound); ok {
			return nil, err
		}
		s.logger.WithField("assignment_id", id).Error(fmt.Sprintf("Failed to update checklist assignment: %v", err))
		return nil, fmt.Errorf("failed to update checklist assignment: %w", err)
	}
	return assignment, nil
}

func (s *ChecklistService) UnassignItem(ctx context.Context, id int64) error {
	if err := s.repo.DeleteAssignment(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrChecklistAssignmentNotFound); ok {
			return err
		}
		s.logger.WithField("assignment_id", id).Error(fmt.Sprintf("Failed to delete checklist assignment: %v", err))
		return fmt.Errorf("failed to delete checklist assignment: %w", err)
	}
	return nil
}

// CreateCompletion records the caller's completion of an item. The item must
// exist; the work session reference, when present, is taken as-is so an
// operator can file against a session that another device just closed.
func (s *ChecklistService) CreateCompletion(ctx context.Context, user *domain.User, req *domain.CreateCompletionRequest) (*domain.ChecklistCompletion, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	if _, err := s.repo.GetItemByID(ctx, req.ChecklistItemID); err != nil {
		if _, ok := err.(*domain.ErrChecklistItemNotFound); ok {
			return nil, err
		}
		s.logger.WithField("item_id", req.ChecklistItemID).Error(fmt.Sprintf("Failed to check checklist item: %v", err))
		return nil, fmt.Errorf("failed to check checklist item: %w", err)
	}

	completion := &domain.ChecklistCompletion{
		ChecklistItemID: req.ChecklistItemID,
		UserID:          user.ID,
		WorkSessionID:   req.WorkSessionID,
		Notes:           req.Notes,
		ValueNumber:     req.ValueNumber,
		ValueBool:       req.ValueBool,
	}
	if err := s.repo.CreateCompletion(ctx, completion); err != nil {
		s.logger.WithField("item_id", req.ChecklistItemID).Error(fmt.Sprintf("Failed to create completion: %v", err))
		return nil, fmt.Errorf("failed to create completion: %w", err)
	}
	return completion, nil
}

func (s *ChecklistService) ListCompletions(ctx context.Context, filter domain.CompletionFilter) ([]*domain.CompletionDetail, error) {
	details, err := s.repo.ListCompletions(ctx, filter)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list completions: %v", err))
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	return details, nil
}

func (s *ChecklistService) DeleteCompletion(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCompletion(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrCompletionNotFound); ok {
			return err
		}
		s.logger.WithField("completion_id", id).Error(fmt.Sprintf("Failed to delete completion: %v", err))
		return fmt.Errorf("failed to delete completion: %w", err)
	}
	return nil
}
