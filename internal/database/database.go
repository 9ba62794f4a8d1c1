package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/sparkleclean/sparkle/config"
	"github.com/sparkleclean/sparkle/internal/domain"
	"github.com/sparkleclean/sparkle/pkg/crypto"
	"github.com/sparkleclean/sparkle/pkg/logger"
)

// GetDSN returns the connection string for the application database.
func GetDSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
}

// Connect opens and pings the database and applies pool settings.
func Connect(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", GetDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(20 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

const bootstrapPasswordLength = 16

// BootstrapRootAdmin creates the initial admin account when the users table
// is empty. The generated password is logged once; the admin is expected to
// change it after first login.
func BootstrapRootAdmin(ctx context.Context, repo domain.UserRepository, rootEmail string, log logger.Logger) error {
	if rootEmail == "" {
		return nil
	}

	count, err := repo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	password, err := crypto.GeneratePassword(bootstrapPasswordLength)
	if err != nil {
		return fmt.Errorf("failed to generate root password: %w", err)
	}
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash root password: %w", err)
	}

	root := &domain.User{
		Email:          rootEmail,
		HashedPassword: hash,
		Name:           "Root Admin",
		Role:           domain.RoleAdmin,
	}
	if err := repo.CreateUser(ctx, root); err != nil {
		return fmt.Errorf("failed to create root admin: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"email":    rootEmail,
		"password": password,
	}).Warn("Root admin created with a generated password, change it after first login")

	return nil
}
