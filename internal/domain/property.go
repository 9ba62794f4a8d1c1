package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_property.go -package mocks github.com/sparkleclean/sparkle/internal/domain PropertyService,PropertyRepository

// Property is a building or site that owns apartments.
type Property struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Description *string   `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func ScanProperty(scanner interface {
	Scan(dest ...interface{}) error
}) (*Property, error) {
	var p Property
	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.Address,
		&p.Description,
		&p.Active,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

type CreatePropertyRequest struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

func (r *CreatePropertyRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("invalid create property request: name is required")
	}
	if r.Address == "" {
		return fmt.Errorf("invalid create property request: address is required")
	}
	return nil
}

type UpdatePropertyRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

func (r *UpdatePropertyRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("invalid update property request: name cannot be empty")
	}
	if r.Address != nil && *r.Address == "" {
		return fmt.Errorf("invalid update property request: address cannot be empty")
	}
	return nil
}

type PropertyService interface {
	ListProperties(ctx context.Context) ([]*Property, error)
	GetPropertyByID(ctx context.Context, id int64) (*Property, error)
	CreateProperty(ctx context.Context, req *CreatePropertyRequest) (*Property, error)
	UpdateProperty(ctx context.Context, id int64, req *UpdatePropertyRequest) (*Property, error)
	DeleteProperty(ctx context.Context, id int64) error
}

type PropertyRepository interface {
	CreateProperty(ctx context.Context, property *Property) error
	GetPropertyByID(ctx context.Context, id int64) (*Property, error)
	ListProperties(ctx context.Context) ([]*Property, error)
	UpdateProperty(ctx context.Context, id int64, req *UpdatePropertyRequest) (*Property, error)
	DeleteProperty(ctx context.Context, id int64) error
}

// ErrPropertyNotFound is returned when a property is not found
type ErrPropertyNotFound struct {
	Message string
}

func (e *ErrPropertyNotFound) Error() string {
	return e.Message
}
