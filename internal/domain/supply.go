package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_supply.go -package mocks github.com/sparkleclean/sparkle/internal/domain SupplyService,SupplyRepository

// Supply is a global catalog entry; stock held centrally. Per-apartment
// requirements live on the assignment row.
type Supply struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	TotalQuantity int       `json:"total_quantity"`
	Unit          *string   `json:"unit,omitempty"`
	Category      *string   `json:"category,omitempty"`
	Room          *string   `json:"room,omitempty"`
	PurchaseLink  *string   `json:"purchase_link,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ScanSupply(scanner interface {
	Scan(dest ...interface{}) error
}) (*Supply, error) {
	var s Supply
	if err := scanner.Scan(
		&s.ID,
		&s.Name,
		&s.TotalQuantity,
		&s.Unit,
		&s.Category,
		&s.Room,
		&s.PurchaseLink,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

type CreateSupplyRequest struct {
	Name          string  `json:"name"`
	TotalQuantity int     `json:"total_quantity"`
	Unit          *string `json:"unit,omitempty"`
	Category      *string `json:"category,omitempty"`
	Room          *string `json:"room,omitempty"`
	PurchaseLink  *string `json:"purchase_link,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *CreateSupplyRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("invalid create supply request: name is required")
	}
	if r.TotalQuantity < 0 {
		return fmt.Errorf("invalid create supply request: total_quantity cannot be negative")
	}
	if r.PurchaseLink != nil && *r.PurchaseLink != "" && !govalidator.IsURL(*r.PurchaseLink) {
		return fmt.Errorf("invalid create supply request: purchase_link must be a URL")
	}
	return nil
}

type UpdateSupplyRequest struct {
	Name          *string `json:"name,omitempty"`
	TotalQuantity *int    `json:"total_quantity,omitempty"`
	Unit          *string `json:"unit,omitempty"`
	Category      *string `json:"category,omitempty"`
	Room          *string `json:"room,omitempty"`
	PurchaseLink  *string `json:"purchase_link,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *UpdateSupplyRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("invalid update supply request: name cannot be empty")
	}
	if r.TotalQuantity != nil && *r.TotalQuantity < 0 {
		return fmt.Errorf("invalid update supply request: total_quantity cannot be negative")
	}
	if r.PurchaseLink != nil && *r.PurchaseLink != "" && !govalidator.IsURL(*r.PurchaseLink) {
		return fmt.Errorf("invalid update supply request: purchase_link must be a URL")
	}
	return nil
}

type SupplyFilter struct {
	Category *string
}

// ApartmentSupply links a supply to an apartment with the quantity that
// apartment should be stocked with and the threshold below which operators
// raise alerts.
type ApartmentSupply struct {
	ID               int64     `json:"id"`
	ApartmentID      int64     `json:"apartment_id"`
	SupplyID         int64     `json:"supply_id"`
	RequiredQuantity int       `json:"required_quantity"`
	MinQuantity      int       `json:"min_quantity"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ApartmentSupplyDetail is an assignment merged with its catalog supply.
type ApartmentSupplyDetail struct {
	ApartmentSupply
	Supply *Supply `json:"supply"`
}

type AssignSupplyRequest struct {
	SupplyID         int64 `json:"supply_id"`
	RequiredQuantity *int  `json:"required_quantity,omitempty"`
	MinQuantity      *int  `json:"min_quantity,omitempty"`
}

func (r *AssignSupplyRequest) Validate() error {
	if r.SupplyID <= 0 {
		return fmt.Errorf("invalid assign supply request: supply_id is required")
	}
	if r.RequiredQuantity != nil && *r.RequiredQuantity < 0 {
		return fmt.Errorf("invalid assign supply request: required_quantity cannot be negative")
	}
	if r.MinQuantity != nil && *r.MinQuantity < 0 {
		return fmt.Errorf("invalid assign supply request: min_quantity cannot be negative")
	}
	return nil
}

type UpdateApartmentSupplyRequest struct {
	RequiredQuantity *int `json:"required_quantity,omitempty"`
	MinQuantity      *int `json:"min_quantity,omitempty"`
}

func (r *UpdateApartmentSupplyRequest) Validate() error {
	if r.RequiredQuantity != nil && *r.RequiredQuantity < 0 {
		return fmt.Errorf("invalid update apartment supply request: required_quantity cannot be negative")
	}
	if r.MinQuantity != nil && *r.MinQuantity < 0 {
		return fmt.Errorf("invalid update apartment supply request: min_quantity cannot be negative")
	}
	return nil
}

// SupplyAlert is an operator-reported shortage for a catalog supply.
type SupplyAlert struct {
	ID         int64      `json:"id"`
	SupplyID   int64      `json:"supply_id"`
	Message    string     `json:"message"`
	ReportedBy *int64     `json:"reported_by,omitempty"`
	IsResolved bool       `json:"is_resolved"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func ScanSupplyAlert(scanner interface {
	Scan(dest ...interface{}) error
}) (*SupplyAlert, error) {
	var a SupplyAlert
	if err := scanner.Scan(
		&a.ID,
		&a.SupplyID,
		&a.Message,
		&a.ReportedBy,
		&a.IsResolved,
		&a.CreatedAt,
		&a.ResolvedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

type CreateSupplyAlertRequest struct {
	SupplyID int64  `json:"supply_id"`
	Message  string `json:"message"`
}

func (r *CreateSupplyAlertRequest) Validate() error {
	if r.SupplyID <= 0 {
		return fmt.Errorf("invalid create supply alert request: supply_id is required")
	}
	if r.Message == "" {
		return fmt.Errorf("invalid create supply alert request: message is required")
	}
	return nil
}

type SupplyAlertFilter struct {
	SupplyID   *int64
	IsResolved *bool
}

type SupplyService interface {
	ListSupplies(ctx context.Context, filter SupplyFilter) ([]*Supply, error)
	GetSupplyByID(ctx context.Context, id int64) (*Supply, error)
	CreateSupply(ctx context.Context, req *CreateSupplyRequest) (*Supply, error)
	UpdateSupply(ctx context.Context, id int64, req *UpdateSupplyRequest) (*Supply, error)
	DeleteSupply(ctx context.Context, id int64) error

	ListAssignments(ctx context.Context, apartmentID int64) ([]*ApartmentSupplyDetail, error)
	AssignSupply(ctx context.Context, apartmentID int64, req *AssignSupplyRequest) (*ApartmentSupply, error)
	UpdateAssignment(ctx context.Context, id int64, req *UpdateApartmentSupplyRequest) (*ApartmentSupply, error)
	UnassignSupply(ctx context.Context, id int64) error

	CreateAlert(ctx context.Context, user *User, req *CreateSupplyAlertRequest) (*SupplyAlert, error)
	ListAlerts(ctx context.Context, filter SupplyAlertFilter) ([]*SupplyAlert, error)
	ResolveAlert(ctx context.Context, id int64) (*SupplyAlert, error)
}

type SupplyRepository interface {
	CreateSupply(ctx context.Context, supply *Supply) error
	GetSupplyByID(ctx context.Context, id int64) (*Supply, error)
	ListSupplies(ctx context.Context, filter SupplyFilter) ([]*Supply, error)
	UpdateSupply(ctx context.Context, id int64, req *UpdateSupplyRequest) (*Supply, error)
	DeleteSupply(ctx context.Context, id int64) error

	CreateAssignment(ctx context.Context, assignment *ApartmentSupply) error
	GetAssignmentByID(ctx context.Context, id int64) (*ApartmentSupply, error)
	ListAssignments(ctx context.Context, apartmentID int64) ([]*ApartmentSupplyDetail, error)
	UpdateAssignment(ctx context.Context, id int64, req *UpdateApartmentSupplyRequest) (*ApartmentSupply, error)
	DeleteAssignment(ctx context.Context, id int64) error

	CreateAlert(ctx context.Context, alert *SupplyAlert) error
	GetAlertByID(ctx context.Context, id int64) (*SupplyAlert, error)
	ListAlerts(ctx context.Context, filter SupplyAlertFilter) ([]*SupplyAlert, error)
	ResolveAlert(ctx context.Context, id int64, resolvedAt time.Time) (*SupplyAlert, error)
}

// ErrSupplyNotFound is returned when a supply is not found
type ErrSupplyNotFound struct {
	Message string
}

func (e *ErrSupplyNotFound) Error() string {
	return e.Message
}

// ErrSupplyAssignmentNotFound is returned when an apartment supply
// assignment is not found
type ErrSupplyAssignmentNotFound struct {
	Message string
}

func (e *ErrSupplyAssignmentNotFound) Error() string {
	return e.Message
}

// ErrSupplyAlreadyAssigned is returned when the (apartment, supply) pair
// already has an assignment row.
type ErrSupplyAlreadyAssigned struct{}

func (e *ErrSupplyAlreadyAssigned) Error() string {
	return "supply already assigned to this apartment"
}

// ErrSupplyAlertNotFound is returned when a supply alert is not found
type ErrSupplyAlertNotFound struct {
	Message string
}

func (e *ErrSupplyAlertNotFound) Error() string {
	return e.Message
}
