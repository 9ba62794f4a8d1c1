package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sparkleclean/sparkle/internal/domain"
)

type propertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new PostgreSQL property repository
func NewPropertyRepository(db *sql.DB) domain.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = "id, name, address, description, active, created_at"

func (r *propertyRepository) CreateProperty(ctx context.Context, property *domain.Property) error {
	property.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO properties (name, address, description, active, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		property.Name,
		property.Address,
		property.Description,
		property.Active,
		property.CreatedAt,
	).Scan(&property.ID)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

func (r *propertyRepository) GetPropertyByID(ctx context.Context, id int64) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`

	property, err := domain.ScanProperty(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrPropertyNotFound{Message: "property not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return property, nil
}

func (r *propertyRepository) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var properties []*domain.Property
	for rows.Next() {
		property, err := domain.ScanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, property)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	return properties, nil
}

func (r *propertyRepository) UpdateProperty(ctx context.Context, id int64, req *domain.UpdatePropertyRequest) (*domain.Property, error) {
	builder := psql.Update("properties").Where(sq.Eq{"id": id})
	updated := false
	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
		updated = true
	}
	if req.Address != nil {
		builder = builder.Set("address", *req.Address)
		updated = true
	}
	if req.Description != nil {
		builder = builder.Set("description", *req.Description)
		updated = true
	}
	if req.Active != nil {
		builder = builder.Set("active", *req.Active)
		updated = true
	}
	if !updated {
		return r.GetPropertyByID(ctx, id)
	}

	query, args, err := builder.Suffix("RETURNING " + propertyColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build property update: %w", err)
	}

	property, err := domain.ScanProperty(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrPropertyNotFound{Message: "property not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	return property, nil
}

func (r *propertyRepository) DeleteProperty(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrPropertyNotFound{Message: "property not found"}
	}
	return nil
}
