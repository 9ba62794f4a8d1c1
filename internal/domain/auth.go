package domain

import (
	"context"
)

//go:generate mockgen -destination mocks/mock_auth_service.go -package mocks github.com/sparkleclean/sparkle/internal/domain AuthService

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ErrInvalidRequest{Message: "email is required"}
	}
	if r.Password == "" {
		return &ErrInvalidRequest{Message: "password is required"}
	}
	return nil
}

// LoginResponse pairs the signed token with the authenticated user's profile.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// AuthService issues and verifies access tokens. Tokens are stateless: the
// subject is the user's email and verification resolves it against the user
// store on every request.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	VerifyToken(ctx context.Context, token string) (*User, error)
}

// ErrInvalidCredentials covers bad logins and bad, expired, or forged tokens.
type ErrInvalidCredentials struct {
	Message string
}

func (e *ErrInvalidCredentials) Error() string {
	return e.Message
}

// ErrInvalidRequest is returned for malformed request bodies or parameters.
type ErrInvalidRequest struct {
	Message string
}

func (e *ErrInvalidRequest) Error() string {
	return e.Message
}
