package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_user.go -package mocks github.com/sparkleclean/sparkle/internal/domain UserService,UserRepository

// UserRole is either admin or operator. Admins manage the catalogs and the
// user roster; operators record their work on the ground.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operator"
)

func (r UserRole) Validate() error {
	switch r {
	case RoleAdmin, RoleOperator:
		return nil
	}
	return fmt.Errorf("invalid role: %s", r)
}

// User is an account that can sign in to the API.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Name           string    `json:"name"`
	Role           UserRole  `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ScanUser scans a user row including the password hash.
func ScanUser(scanner interface {
	Scan(dest ...interface{}) error
}) (*User, error) {
	var u User
	if err := scanner.Scan(
		&u.ID,
		&u.Email,
		&u.HashedPassword,
		&u.Name,
		&u.Role,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

type CreateUserRequest struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Role     UserRole `json:"role"`
	Password string   `json:"password"`
}

func (r *CreateUserRequest) Validate() error {
	if !govalidator.IsEmail(r.Email) {
		return fmt.Errorf("invalid create user request: email is invalid")
	}
	if r.Name == "" {
		return fmt.Errorf("invalid create user request: name is required")
	}
	if err := r.Role.Validate(); err != nil {
		return fmt.Errorf("invalid create user request: %w", err)
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("invalid create user request: password must be at least 8 characters")
	}
	return nil
}

type InviteUserRequest struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

func (r *InviteUserRequest) Validate() error {
	if !govalidator.IsEmail(r.Email) {
		return fmt.Errorf("invalid invite user request: email is invalid")
	}
	if r.Name == "" {
		return fmt.Errorf("invalid invite user request: name is required")
	}
	if err := r.Role.Validate(); err != nil {
		return fmt.Errorf("invalid invite user request: %w", err)
	}
	return nil
}

// UpdateUserRequest carries a partial update; nil fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string   `json:"email,omitempty"`
	Name     *string   `json:"name,omitempty"`
	Role     *UserRole `json:"role,omitempty"`
	Password *string   `json:"password,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	if r.Email != nil && !govalidator.IsEmail(*r.Email) {
		return fmt.Errorf("invalid update user request: email is invalid")
	}
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("invalid update user request: name cannot be empty")
	}
	if r.Role != nil {
		if err := r.Role.Validate(); err != nil {
			return fmt.Errorf("invalid update user request: %w", err)
		}
	}
	if r.Password != nil && len(*r.Password) < 8 {
		return fmt.Errorf("invalid update user request: password must be at least 8 characters")
	}
	return nil
}

// UpdateProfileRequest is the self-service subset of user updates. Role is
// deliberately not part of it: only an admin can change roles, through the
// users endpoints.
type UpdateProfileRequest struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	if r.Email != nil && !govalidator.IsEmail(*r.Email) {
		return fmt.Errorf("invalid update profile request: email is invalid")
	}
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("invalid update profile request: name cannot be empty")
	}
	return nil
}

// UserPatch is the repository-level partial update. The service resolves a
// plain-text password into HashedPassword before it reaches the repository.
type UserPatch struct {
	Email          *string
	Name           *string
	Role           *UserRole
	HashedPassword *string
}

func (p *UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Name == nil && p.Role == nil && p.HashedPassword == nil
}

type UserFilter struct {
	Role *UserRole
}

type UserService interface {
	ListUsers(ctx context.Context, filter UserFilter) ([]*User, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error)
	InviteUser(ctx context.Context, req *InviteUserRequest) (*User, error)
	UpdateUser(ctx context.Context, id int64, req *UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id int64, actor *User) error
	UpdateProfile(ctx context.Context, user *User, req *UpdateProfileRequest) (*User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]*User, error)
	UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
	CountUsers(ctx context.Context) (int, error)
}

// ErrUserNotFound is returned when a user is not found
type ErrUserNotFound struct {
	Message string
}

func (e *ErrUserNotFound) Error() string {
	return e.Message
}

// ErrEmailExists is returned when creating or renaming a user to an email
// that is already taken.
type ErrEmailExists struct {
	Message string
}

func (e *ErrEmailExists) Error() string {
	return e.Message
}

// ErrSelfDelete is returned when a user tries to delete their own account
type ErrSelfDelete struct{}

func (e *ErrSelfDelete) Error() string {
	return "you cannot delete your own account"
}
