package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/pkg/crypto"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

// AuthService issues HS256 access tokens and resolves them back to users.
type AuthService struct {
	repo        domain.UserRepository
	secretKey   []byte
	tokenExpiry time.Duration
	logger      logger.Logger
}

func NewAuthService(repo domain.UserRepository, secretKey string, tokenExpiry time.Duration, logger logger.Logger) *AuthService {
	return &AuthService{
		repo:        repo,
		secretKey:   []byte(secretKey),
		tokenExpiry: tokenExpiry,
		logger:      logger,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.LoginResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			return nil, &domain.ErrInvalidCredentials{Message: "invalid email or password"}
		}
		s.logger.Error(fmt.Sprintf("Failed to get user for login: %v", err))
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !crypto.CheckPasswordHash(password, user.HashedPassword) {
		return nil, &domain.ErrInvalidCredentials{Message: "invalid email or password"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		s.logger.WithField("user_id", user.ID).Error(fmt.Sprintf("Failed to sign token: %v", err))
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &domain.LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   user.Email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExpiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// VerifyToken parses and validates a bearer token and loads the user it
// names. A token whose user has since been deleted is treated the same as a
// forged one.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*domain.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, &domain.ErrInvalidCredentials{Message: "invalid or expired token"}
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, &domain.ErrInvalidCredentials{Message: "invalid or expired token"}
	}

	user, err := s.repo.GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if _, ok := err.(*domain.ErrUserNotFound); ok {
			return nil, &domain.ErrInvalidCredentials{Message: "invalid or expired token"}
		}
		s.logger.Error(fmt.Sprintf("Failed to resolve token subject: %v", err))
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	return user, nil
}
