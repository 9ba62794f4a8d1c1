package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_room.go -package mocks github.com/sparkleclean/sparkle/internal/domain RoomService,RoomRepository

type Room struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	ApartmentID int64     `json:"apartment_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func ScanRoom(scanner interface {
	Scan(dest ...interface{}) error
}) (*Room, error) {
	var r Room
	if err := scanner.Scan(
		&r.ID,
		&r.Name,
		&r.ApartmentID,
		&r.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

type CreateRoomRequest struct {
	Name        string `json:"name"`
	ApartmentID int64  `json:"apartment_id"`
}

func (r *CreateRoomRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("invalid create room request: name is required")
	}
	if r.ApartmentID <= 0 {
		return fmt.Errorf("invalid create room request: apartment_id is required")
	}
	return nil
}

type UpdateRoomRequest struct {
	Name *string `json:"name,omitempty"`
}

func (r *UpdateRoomRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("invalid update room request: name cannot be empty")
	}
	return nil
}

type RoomFilter struct {
	ApartmentID *int64
}

type RoomService interface {
	ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, error)
	GetRoomByID(ctx context.Context, id int64) (*Room, error)
	CreateRoom(ctx context.Context, req *CreateRoomRequest) (*Room, error)
	UpdateRoom(ctx context.Context, id int64, req *UpdateRoomRequest) (*Room, error)
	DeleteRoom(ctx context.Context, id int64) error
}

type RoomRepository interface {
	CreateRoom(ctx context.Context, room *Room) error
	GetRoomByID(ctx context.Context, id int64) (*Room, error)
	ListRooms(ctx context.Context, filter RoomFilter) ([]*Room, error)
	UpdateRoom(ctx context.Context, id int64, req *UpdateRoomRequest) (*Room, error)
	DeleteRoom(ctx context.Context, id int64) error
}

// ErrRoomNotFound is returned when a room is not found
type ErrRoomNotFound struct {
	Message string
}

func (e *ErrRoomNotFound) Error() string {
	return e.Message
}
