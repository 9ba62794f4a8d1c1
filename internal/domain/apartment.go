package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_apartment.go -package mocks github.com/sparkleclean/sparkle/internal/domain ApartmentService,ApartmentRepository

// Apartment is a unit inside a property. Rooms, checklist assignments and
// supply assignments hang off it and are removed with it; work sessions
// keep referencing it by id after deletion.
type Apartment struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	PropertyID int64     `json:"property_id"`
	Floor      *string   `json:"floor,omitempty"`
	Number     *string   `json:"number,omitempty"`
	Beds       *int      `json:"beds,omitempty"`
	Bathrooms  *int      `json:"bathrooms,omitempty"`
	Notes      *string   `json:"notes,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

func ScanApartment(scanner interface {
	Scan(dest ...interface{}) error
}) (*Apartment, error) {
	var a Apartment
	if err := scanner.Scan(
		&a.ID,
		&a.Name,
		&a.PropertyID,
		&a.Floor,
		&a.Number,
		&a.Beds,
		&a.Bathrooms,
		&a.Notes,
		&a.Active,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

type CreateApartmentRequest struct {
	Name       string  `json:"name"`
	PropertyID int64   `json:"property_id"`
	Floor      *string `json:"floor,omitempty"`
	Number     *string `json:"number,omitempty"`
	Beds       *int    `json:"beds,omitempty"`
	Bathrooms  *int    `json:"bathrooms,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

func (r *CreateApartmentRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("invalid create apartment request: name is required")
	}
	if r.PropertyID <= 0 {
		return fmt.Errorf("invalid create apartment request: property_id is required")
	}
	return nil
}

type UpdateApartmentRequest struct {
	Name       *string `json:"name,omitempty"`
	PropertyID *int64  `json:"property_id,omitempty"`
	Floor      *string `json:"floor,omitempty"`
	Number     *string `json:"number,omitempty"`
	Beds       *int    `json:"beds,omitempty"`
	Bathrooms  *int    `json:"bathrooms,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

func (r *UpdateApartmentRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("invalid update apartment request: name cannot be empty")
	}
	if r.PropertyID != nil && *r.PropertyID <= 0 {
		return fmt.Errorf("invalid update apartment request: property_id must be positive")
	}
	return nil
}

type ApartmentFilter struct {
	PropertyID *int64
}

type ApartmentService interface {
	ListApartments(ctx context.Context, filter ApartmentFilter) ([]*Apartment, error)
	GetApartmentByID(ctx context.Context, id int64) (*Apartment, error)
	CreateApartment(ctx context.Context, req *CreateApartmentRequest) (*Apartment, error)
	UpdateApartment(ctx context.Context, id int64, req *UpdateApartmentRequest) (*Apartment, error)
	DeleteApartment(ctx context.Context, id int64) error
}

type ApartmentRepository interface {
	CreateApartment(ctx context.Context, apartment *Apartment) error
	GetApartmentByID(ctx context.Context, id int64) (*Apartment, error)
	ListApartments(ctx context.Context, filter ApartmentFilter) ([]*Apartment, error)
	UpdateApartment(ctx context.Context, id int64, req *UpdateApartmentRequest) (*Apartment, error)
	DeleteApartment(ctx context.Context, id int64) error
}

// ErrApartmentNotFound is returned when an apartment is not found
type ErrApartmentNotFound struct {
	Message string
}

func (e *ErrApartmentNotFound) Error() string {
	return e.Message
}
