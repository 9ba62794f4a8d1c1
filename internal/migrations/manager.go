package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/sparkleclean/sparkle/pkg/logger"
)

// Manager applies registered migrations in version order, tracking the
// current schema version in the settings table.
type Manager struct {
	registry *Registry
	logger   logger.Logger
}

func NewManager(logger logger.Logger) *Manager {
	return &Manager{
		registry: DefaultRegistry,
		logger:   logger,
	}
}

// GetCurrentDBVersion reads the schema version from settings. The second
// return is false when no version row exists yet.
func (m *Manager) GetCurrentDBVersion(ctx context.Context, db *sql.DB) (int, bool, error) {
	var versionStr string
	err := db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = 'db_version'").Scan(&versionStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get current database version: %w", err)
	}

	version, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, false, fmt.Errorf("invalid database version format '%s': %w", versionStr, err)
	}
	return version, true, nil
}

// SetCurrentDBVersion updates the schema version in the settings table.
func (m *Manager) SetCurrentDBVersion(ctx context.Context, db *sql.DB, version int) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES ('db_version', $1)
		ON CONFLICT (key) DO UPDATE SET
			value = $1,
			updated_at = CURRENT_TIMESTAMP
	`, strconv.Itoa(version))
	if err != nil {
		return fmt.Errorf("failed to set database version to %d: %w", version, err)
	}

	m.logger.WithField("version", version).Info("Database version updated")
	return nil
}

// RunMigrations brings the schema up to the latest registered version. The
// settings table is created first so the version lookup always succeeds.
func (m *Manager) RunMigrations(ctx context.Context, db *sql.DB) error {
	m.logger.Info("Starting migration process")

	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS settings (
			key VARCHAR(255) PRIMARY KEY,
			value TEXT NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}

	current, _, err := m.GetCurrentDBVersion(ctx, db)
	if err != nil {
		return err
	}

	for _, migration := range m.registry.Migrations() {
		if migration.Version() <= current {
			continue
		}

		m.logger.WithField("version", migration.Version()).Info("Applying migration")
		if err := migration.Apply(ctx, db); err != nil {
			return fmt.Errorf("migration v%d failed: %w", migration.Version(), err)
		}
		if err := m.SetCurrentDBVersion(ctx, db, migration.Version()); err != nil {
			return err
		}
	}

	m.logger.Info("Migration process completed")
	return nil
}
