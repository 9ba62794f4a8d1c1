package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sparkleclean/sparkle/internal/domain"
)

type apartmentRepository struct {
	db *sql.DB
}

// NewApartmentRepository creates a new PostgreSQL apartment repository
func NewApartmentRepository(db *sql.DB) domain.ApartmentRepository {
	return &apartmentRepository{db: db}
}

const apartmentColumns = "id, name, property_id, floor, number, beds, bathrooms, notes, active, created_at"

func (r *apartmentRepository) CreateApartment(ctx context.Context, apartment *domain.Apartment) error {
	apartment.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO apartments (name, property_id, floor, number, beds, bathrooms, notes, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		apartment.Name,
		apartment.PropertyID,
		apartment.Floor,
		apartment.Number,
		apartment.Beds,
		apartment.Bathrooms,
		apartment.Notes,
		apartment.Active,
		apartment.CreatedAt,
	).Scan(&apartment.ID)
	if err != nil {
		return fmt.Errorf("failed to create apartment: %w", err)
	}
	return nil
}

func (r *apartmentRepository) GetApartmentByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	query := `SELECT ` + apartmentColumns + ` FROM apartments WHERE id = $1`

	apartment, err := domain.ScanApartment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrApartmentNotFound{Message: "apartment not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get apartment: %w", err)
	}
	return apartment, nil
}

func (r *apartmentRepository) ListApartments(ctx context.Context, filter domain.ApartmentFilter) ([]*domain.Apartment, error) {
	builder := psql.Select("id", "name", "property_id", "floor", "number", "beds", "bathrooms", "notes", "active", "created_at").
		From("apartments").
		OrderBy("name ASC")

	if filter.PropertyID != nil {
		builder = builder.Where(sq.Eq{"property_id": *filter.PropertyID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build apartments query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list apartments: %w", err)
	}
	defer rows.Close()

	var apartments []*domain.Apartment
	for rows.Next() {
		apartment, err := domain.ScanApartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan apartment: %w", err)
		}
		apartments = append(apartments, apartment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating apartment rows: %w", err)
	}

	return apartments, nil
}

func (r *apartmentRepository) UpdateApartment(ctx context.Context, id int64, req *domain.UpdateApartmentRequest) (*domain.Apartment, error) {
	builder := psql.Update("apartments").Where(sq.Eq{"id": id})
	updated := false
	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
		updated = true
	}
	if req.PropertyID != nil {
		builder = builder.Set("property_id", *req.PropertyID)
		updated = true
	}
	if req.Floor != nil {
		builder = builder.Set("floor", *req.Floor)
		updated = true
	}
	if req.Number != nil {
		builder = builder.Set("number", *req.Number)
		updated = true
	}
	if req.Beds != nil {
		builder = builder.Set("beds", *req.Beds)
		updated = true
	}
	if req.Bathrooms != nil {
		builder = builder.Set("bathrooms", *req.Bathrooms)
		updated = true
	}
	if req.Notes != nil {
		builder = builder.Set("notes", *req.Notes)
		updated = true
	}
	if req.Active != nil {
		builder = builder.Set("active", *req.Active)
		updated = true
	}
	if !updated {
		return r.GetApartmentByID(ctx, id)
	}

	query, args, err := builder.Suffix("RETURNING " + apartmentColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build apartment update: %w", err)
	}

	apartment, err := domain.ScanApartment(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrApartmentNotFound{Message: "apartment not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update apartment: %w", err)
	}
	return apartment, nil
}

func (r *apartmentRepository) DeleteApartment(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM apartments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete apartment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrApartmentNotFound{Message: "apartment not found"}
	}
	return nil
}
