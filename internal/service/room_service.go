package service

import (
	"context"
	"fmt"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

type RoomService struct {
	repo          domain.RoomRepository
	apartmentRepo domain.ApartmentRepository
	logger        logger.Logger
}

func NewRoomService(repo domain.RoomRepository, apartmentRepo domain.ApartmentRepository, logger logger.Logger) *RoomService {
	return &RoomService{
		repo:          repo,
		apartmentRepo: apartmentRepo,
		logger:        logger,
	}
}

func (s *RoomService) ListRooms(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	rooms, err := s.repo.ListRooms(ctx, filter)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list rooms: %v", err))
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.repo.GetRoomByID(ctx, id)
	if err != nil {
		if _, ok := err.(*domain.ErrRoomNotFound); ok {
			return nil, err
		}
		s.logger.WithField("room_id", id).Error(fmt.Sprintf("Failed to get room: %v", err))
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return room, nil
}

func (s *RoomService) CreateRoom(ctx context.Context, req *domain.CreateRoomRequest) (*domain.Room, error) {
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

	room := &domain.Room{
		Name:        req.Name,
		ApartmentID: req.ApartmentID,
	}
	if err := s.repo.CreateRoom(ctx, room); err != nil {
		s.logger.WithField("name", req.Name).Error(fmt.Sprintf("Failed to create room: %v", err))
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, id int64, req *domain.UpdateRoomRequest) (*domain.Room, error) {
	if err := req.Validate(); err != nil {
		return nil, &domain.ErrInvalidRequest{Message: err.Error()}
	}

	room, err := s.repo.UpdateRoom(ctx, id, req)
	if err != nil {
		if _, ok := err.(*domain.ErrRoomNotFound); ok {
			return nil, err
		}
		s.logger.WithField("room_id", id).Error(fmt.Sprintf("Failed to update room: %v", err))
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

func (s *RoomService) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.repo.DeleteRoom(ctx, id); err != nil {
		if _, ok := err.(*domain.ErrRoomNotFound); ok {
			return err
		}
		s.logger.WithField("room_id", id).Error(fmt.Sprintf("Failed to delete room: %v", err))
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
