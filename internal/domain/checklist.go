package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_checklist.go -package mocks github.com/sparkleclean/sparkle/internal/domain ChecklistService,ChecklistRepository

// ChecklistItemType selects how a completion records its result: a simple
// check, a yes/no answer, or a counted number.
type ChecklistItemType string

const (
	ItemTypeCheck  ChecklistItemType = "check"
	ItemTypeYesNo  ChecklistItemType = "yes_no"
	ItemTypeNumber ChecklistItemType = "number"
)

func (t ChecklistItemType) Validate() error {
	switch t {
	case ItemTypeCheck, ItemTypeYesNo, ItemTypeNumber:
		return nil
	}
	return fmt.Errorf("invalid item type: %s", t)
}

// ChecklistItem is a global catalog entry. It is not tied to an apartment
// until assigned; RoomName is a free label used for grouping in the client.
type ChecklistItem struct {
	ID             int64             `json:"id"`
	Title          string            `json:"title"`
	Description    *string           `json:"description,omitempty"`
	RoomName       *string           `json:"room_name,omitempty"`
	IsMandatory    bool              `json:"is_mandatory"`
	DisplayOrder   int               `json:"display_order"`
	ItemType       ChecklistItemType `json:"item_type"`
	ExpectedNumber *int              `json:"expected_number,omitempty"`
	PurchaseLink   *string           `json:"purchase_link,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

func ScanChecklistItem(scanner interface {
	Scan(dest ...interface{}) error
}) (*ChecklistItem, error) {
	var i ChecklistItem
	if err := scanner.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.RoomName,
		&i.IsMandatory,
		&i.DisplayOrder,
		&i.ItemType,
		&i.ExpectedNumber,
		&i.PurchaseLink,
		&i.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &i, nil
}

type CreateChecklistItemRequest struct {
	Title          string            `json:"title"`
	Description    *string           `json:"description,omitempty"`
	RoomName       *string           `json:"room_name,omitempty"`
	IsMandatory    bool              `json:"is_mandatory"`
	DisplayOrder   int               `json:"display_order"`
	ItemType       ChecklistItemType `json:"item_type"`
	ExpectedNumber *int              `json:"expected_number,omitempty"`
	PurchaseLink   *string           `json:"purchase_link,omitempty"`
}

func (r *CreateChecklistItemRequest) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("invalid create checklist item request: title is required")
	}
	if r.ItemType == "" {
		r.ItemType = ItemTypeCheck
	}
	if err := r.ItemType.Validate(); err != nil {
		return fmt.Errorf("invalid create checklist item request: %w", err)
	}
	if r.PurchaseLink != nil && *r.PurchaseLink != "" && !govalidator.IsURL(*r.PurchaseLink) {
		return fmt.Errorf("invalid create checklist item request: purchase_link must be a URL")
	}
	return nil
}

type UpdateChecklistItemRequest struct {
	Title          *string            `json:"title,omitempty"`
	Description    *string            `json:"description,omitempty"`
	RoomName       *string            `json:"room_name,omitempty"`
	IsMandatory    *bool              `json:"is_mandatory,omitempty"`
	DisplayOrder   *int               `json:"display_order,omitempty"`
	ItemType       *ChecklistItemType `json:"item_type,omitempty"`
	ExpectedNumber *int               `json:"expected_number,omitempty"`
	PurchaseLink   *string            `json:"purchase_link,omitempty"`
}

func (r *UpdateChecklistItemRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return fmt.Errorf("invalid update checklist item request: title cannot be empty")
	}
	if r.ItemType != nil {
		if err := r.ItemType.Validate(); err != nil {
			return fmt.Errorf("invalid update checklist item request: %w", err)
		}
	}
	if r.PurchaseLink != nil && *r.PurchaseLink != "" && !govalidator.IsURL(*r.PurchaseLink) {
		return fmt.Errorf("invalid update checklist item request: purchase_link must be a URL")
	}
	return nil
}

type ChecklistItemFilter struct {
	RoomName *string
}

// ApartmentChecklistItem links a catalog item to an apartment. DisplayOrder
// here overrides the catalog item's order for that apartment.
type ApartmentChecklistItem struct {
	ID              int64     `json:"id"`
	ApartmentID     int64     `json:"apartment_id"`
	ChecklistItemID int64     `json:"checklist_item_id"`
	DisplayOrder    int       `json:"display_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ApartmentChecklistItemDetail is an assignment merged with its catalog item.
type ApartmentChecklistItemDetail struct {
	ApartmentChecklistItem
	ChecklistItem *ChecklistItem `json:"checklist_item"`
}

type AssignChecklistItemRequest struct {
	ChecklistItemID int64 `json:"checklist_item_id"`
	DisplayOrder    *int  `json:"display_order,omitempty"`
}

func (r *AssignChecklistItemRequest) Validate() error {
	if r.ChecklistItemID <= 0 {
		return fmt.Errorf("invalid assign checklist item request: checklist_item_id is required")
	}
	return nil
}

type UpdateChecklistAssignmentRequest struct {
	DisplayOrder *int `json:"display_order,omitempty"`
}

// ChecklistCompletion records a user addressing one checklist item,
// optionally inside a work session. Immutable once created.
type ChecklistCompletion struct {
	ID              int64     `json:"id"`
	ChecklistItemID int64     `json:"checklist_item_id"`
	UserID          int64     `json:"user_id"`
	WorkSessionID   *int64    `json:"work_session_id,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	ValueNumber     *int      `json:"value_number,omitempty"`
	ValueBool       *bool     `json:"value_bool,omitempty"`
	CompletedAt     time.Time `json:"completed_at"`
}

// CompletionDetail denormalizes a completion with the apartment it happened
// in (through its work session) and the item's title, for the client's
// history views.
type CompletionDetail struct {
	ChecklistCompletion
	ApartmentID        *int64  `json:"apartment_id"`
	ChecklistItemTitle *string `json:"checklist_item_title"`
}

type CreateCompletionRequest struct {
	ChecklistItemID int64   `json:"checklist_item_id"`
	WorkSessionID   *int64  `json:"work_session_id,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	ValueNumber     *int    `json:"value_number,omitempty"`
	ValueBool       *bool   `json:"value_bool,omitempty"`
}

func (r *CreateCompletionRequest) Validate() error {
	if r.ChecklistItemID <= 0 {
		return fmt.Errorf("invalid create completion request: checklist_item_id is required")
	}
	return nil
}

type CompletionFilter struct {
	ChecklistItemID *int64
	UserID          *int64
	ApartmentID     *int64
	Limit           int
}

type ChecklistService interface {
	ListItems(ctx context.Context, filter ChecklistItemFilter) ([]*ChecklistItem, error)
	GetItemByID(ctx context.Context, id int64) (*ChecklistItem, error)
	CreateItem(ctx context.Context, req *CreateChecklistItemRequest) (*ChecklistItem, error)
	UpdateItem(ctx context.Context, id int64, req *UpdateChecklistItemRequest) (*ChecklistItem, error)
	DeleteItem(ctx context.Context, id int64) error

	ListAssignments(ctx context.Context, apartmentID int64) ([]*ApartmentChecklistItemDetail, error)
	AssignItem(ctx context.Context, apartmentID int64, req *AssignChecklistItemRequest) (*ApartmentChecklistItem, error)
	UpdateAssignment(ctx context.Context, id int64, req *UpdateChecklistAssignmentRequest) (*ApartmentChecklistItem, error)
	UnassignItem(ctx context.Context, id int64) error

	CreateCompletion(ctx context.Context, user *User, req *CreateCompletionRequest) (*ChecklistCompletion, error)
	ListCompletions(ctx context.Context, filter CompletionFilter) ([]*CompletionDetail, error)
	DeleteCompletion(ctx context.Context, id int64) error
}

type ChecklistRepository interface {
	CreateItem(ctx context.Context, item *ChecklistItem) error
	GetItemByID(ctx context.Context, id int64) (*ChecklistItem, error)
	ListItems(ctx context.Context, filter ChecklistItemFilter) ([]*ChecklistItem, error)
	UpdateItem(ctx context.Context, id int64, req *UpdateChecklistItemRequest) (*ChecklistItem, error)
	DeleteItem(ctx context.Context, id int64) error

	CreateAssignment(ctx context.Context, assignment *ApartmentChecklistItem) error
	GetAssignmentByID(ctx context.Context, id int64) (*ApartmentChecklistItem, error)
	ListAssignments(ctx context.Context, apartmentID int64) ([]*ApartmentChecklistItemDetail, error)
	UpdateAssignment(ctx context.Context, id int64, req *UpdateChecklistAssignmentRequest) (*ApartmentChecklistItem, error)
	DeleteAssignment(ctx context.Context, id int64) error

	CreateCompletion(ctx context.Context, completion *ChecklistCompletion) error
	ListCompletions(ctx context.Context, filter CompletionFilter) ([]*CompletionDetail, error)
	DeleteCompletion(ctx context.Context, id int64) error
}

// ErrChecklistItemNotFound is returned when a checklist item is not found
type ErrChecklistItemNotFound struct {
	Message string
}

func (e *ErrChecklistItemNotFound) Error() string {
	return e.Message
}

// ErrChecklistAssignmentNotFound is returned when an apartment checklist
// assignment is not found
type ErrChecklistAssignmentNotFound struct {
	Message string
}

func (e *ErrChecklistAssignmentNotFound) Error() string {
	return e.Message
}

// ErrChecklistAlreadyAssigned is returned when the (apartment, item) pair
// already has an assignment row.
type ErrChecklistAlreadyAssigned struct{}

func (e *ErrChecklistAlreadyAssigned) Error() string {
	return "checklist item already assigned to this apartment"
}

// ErrCompletionNotFound is returned when a completion is not found
type ErrCompletionNotFound struct {
	Message string
}

func (e *ErrCompletionNotFound) Error() string {
	return e.Message
}
