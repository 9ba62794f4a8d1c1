package migrations

import (
	"context"
	"fmt"
)

func init() {
	Register(&V1Migration{})
}

// V1Migration creates the base schema: users, the property tree, the
// checklist and supply catalogs with their apartment assignment tables, and
// the activity tables. Completions and work sessions reference their parents
// by id without foreign keys so history survives deletes.
type V1Migration struct{}

func (m *V1Migration) Version() int {
	return 1
}

func (m *V1Migration) Apply(ctx context.Context, db DBExecutor) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			hashed_password VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			role VARCHAR(32) NOT NULL DEFAULT 'operator',
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS properties (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			address VARCHAR(512) NOT NULL,
			description TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS apartments (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			property_id BIGINT NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
			floor VARCHAR(32),
			number VARCHAR(32),
			beds INTEGER,
			bathrooms INTEGER,
			notes TEXT,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_apartments_property_id ON apartments(property_id)`,
		`CREATE TABLE IF NOT EXISTS rooms (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			apartment_id BIGINT NOT NULL REFERENCES apartments(id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rooms_apartment_id ON rooms(apartment_id)`,
		`CREATE TABLE IF NOT EXISTS checklist_items (
			id BIGSERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			room_name VARCHAR(255),
			is_mandatory BOOLEAN NOT NULL DEFAULT FALSE,
			display_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS apartment_checklist_items (
			id BIGSERIAL PRIMARY KEY,
			apartment_id BIGINT NOT NULL REFERENCES apartments(id) ON DELETE CASCADE,
			checklist_item_id BIGINT NOT NULL REFERENCES checklist_items(id) ON DELETE CASCADE,
			display_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (apartment_id, checklist_item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS work_sessions (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			apartment_id BIGINT NOT NULL,
			start_time TIMESTAMP WITH TIME ZONE NOT NULL,
			end_time TIMESTAMP WITH TIME ZONE,
			notes TEXT,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_work_sessions_user_id ON work_sessions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_work_sessions_apartment_id ON work_sessions(apartment_id)`,
		`CREATE TABLE IF NOT EXISTS checklist_completions (
			id BIGSERIAL PRIMARY KEY,
			checklist_item_id BIGINT NOT NULL,
			user_id BIGINT NOT NULL,
			work_session_id BIGINT,
			notes TEXT,
			completed_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_checklist_completions_item_id ON checklist_completions(checklist_item_id)`,
		`CREATE INDEX IF NOT EXISTS idx_checklist_completions_user_id ON checklist_completions(user_id)`,
		`CREATE TABLE IF NOT EXISTS supplies (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			total_quantity INTEGER NOT NULL DEFAULT 0,
			unit VARCHAR(64),
			category VARCHAR(255),
			room VARCHAR(255),
			notes TEXT,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS apartment_supplies (
			id BIGSERIAL PRIMARY KEY,
			apartment_id BIGINT NOT NULL REFERENCES apartments(id) ON DELETE CASCADE,
			supply_id BIGINT NOT NULL REFERENCES supplies(id) ON DELETE CASCADE,
			required_quantity INTEGER NOT NULL DEFAULT 0,
			min_quantity INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (apartment_id, supply_id)
		)`,
		`CREATE TABLE IF NOT EXISTS supply_alerts (
			id BIGSERIAL PRIMARY KEY,
			supply_id BIGINT NOT NULL REFERENCES supplies(id) ON DELETE CASCADE,
			message TEXT NOT NULL,
			reported_by BIGINT,
			is_resolved BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
			resolved_at TIMESTAMP WITH TIME ZONE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_supply_alerts_supply_id ON supply_alerts(supply_id)`,
	}

	for _, query := range queries {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute base schema statement: %w", err)
		}
	}
	return nil
}
