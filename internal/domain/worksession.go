package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_worksession.go -package mocks github.com/sparkleclean/sparkle/internal/domain WorkSessionService,WorkSessionRepository

// WorkSession is an operator's timed visit to an apartment. StartTime is set
// at creation; setting EndTime closes the session.
type WorkSession struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	ApartmentID int64      `json:"apartment_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ScanWorkSession(scanner interface {
	Scan(dest ...interface{}) error
}) (*WorkSession, error) {
	var s WorkSession
	if err := scanner.Scan(
		&s.ID,
		&s.UserID,
		&s.ApartmentID,
		&s.StartTime,
		&s.EndTime,
		&s.Notes,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

type CreateWorkSessionRequest struct {
	ApartmentID int64   `json:"apartment_id"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *CreateWorkSessionRequest) Validate() error {
	if r.ApartmentID <= 0 {
		return fmt.Errorf("invalid create work session request: apartment_id is required")
	}
	return nil
}

type UpdateWorkSessionRequest struct {
	Notes   *string    `json:"notes,omitempty"`
	EndTime *time.Time `json:"end_time,omitempty"`
}

type WorkSessionFilter struct {
	UserID      *int64
	ApartmentID *int64
	Limit       int
}

type WorkSessionService interface {
	CreateSession(ctx context.Context, user *User, req *CreateWorkSessionRequest) (*WorkSession, error)
	ListSessions(ctx context.Context, filter WorkSessionFilter) ([]*WorkSession, error)
	GetSessionByID(ctx context.Context, id int64) (*WorkSession, error)
	// UpdateSession applies the patch if actor owns the session or is admin.
	UpdateSession(ctx context.Context, id int64, actor *User, req *UpdateWorkSessionRequest) (*WorkSession, error)
	DeleteSession(ctx context.Context, id int64) error
}

type WorkSessionRepository interface {
	CreateSession(ctx context.Context, session *WorkSession) error
	GetSessionByID(ctx context.Context, id int64) (*WorkSession, error)
	ListSessions(ctx context.Context, filter WorkSessionFilter) ([]*WorkSession, error)
	UpdateSession(ctx context.Context, id int64, req *UpdateWorkSessionRequest) (*WorkSession, error)
	DeleteSession(ctx context.Context, id int64) error
}

// ErrWorkSessionNotFound is returned when a work session is not found
type ErrWorkSessionNotFound struct {
	Message string
}

func (e *ErrWorkSessionNotFound) Error() string {
	return e.Message
}

// ErrNotSessionOwner is returned when a non-owning, non-admin user tries to
// modify a work session.
type ErrNotSessionOwner struct{}

func (e *ErrNotSessionOwner) Error() string {
	return "only the session owner or an admin can modify this session"
}
