package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sparkleclean/sparkle/internal/domain"
)

type supplyRepository struct {
	db *sql.DB
}

// NewSupplyRepository creates a new PostgreSQL supply repository
func NewSupplyRepository(db *sql.DB) domain.SupplyRepository {
	return &supplyRepository{db: db}
}

const supplyColumns = "id, name, total_quantity, unit, category, room, purchase_link, notes, created_at, updated_at"

func (r *supplyRepository) CreateSupply(ctx context.Context, supply *domain.Supply) error {
	now := time.Now().UTC()
	supply.CreatedAt = now
	supply.UpdatedAt = now

	query := `
		INSERT INTO supplies (name, total_quantity, unit, category, room, purchase_link, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		supply.Name,
		supply.TotalQuantity,
		supply.Unit,
		supply.Category,
		supply.Room,
		supply.PurchaseLink,
		supply.Notes,
		supply.CreatedAt,
		supply.UpdatedAt,
	).Scan(&supply.ID)
	if err != nil {
		return fmt.Errorf("failed to create supply: %w", err)
	}
	return nil
}

func (r *supplyRepository) GetSupplyByID(ctx context.Context, id int64) (*domain.Supply, error) {
	query := `SELECT ` + supplyColumns + ` FROM supplies WHERE id = $1`

	supply, err := domain.ScanSupply(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrSupplyNotFound{Message: "supply not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get supply: %w", err)
	}
	return supply, nil
}

func (r *supplyRepository) ListSupplies(ctx context.Context, filter domain.SupplyFilter) ([]*domain.Supply, error) {
	builder := psql.Select("id", "name", "total_quantity", "unit", "category", "room", "purchase_link", "notes", "created_at", "updated_at").
		From("supplies").
		OrderBy("name ASC")

	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": *filter.Category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build supplies query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplies: %w", err)
	}
	defer rows.Close()

	var supplies []*domain.Supply
	for rows.Next() {
		supply, err := domain.ScanSupply(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supply: %w", err)
		}
		supplies = append(supplies, supply)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supply rows: %w", err)
	}

	return supplies, nil
}

func (r *supplyRepository) UpdateSupply(ctx context.Context, id int64, req *domain.UpdateSupplyRequest) (*domain.Supply, error) {
	builder := psql.Update("supplies").Where(sq.Eq{"id": id})
	updated := false
	if req.Name != nil {
		builder = builder.Set("name", *req.Name)
		updated = true
	}
	if req.TotalQuantity != nil {
		builder = builder.Set("total_quantity", *req.TotalQuantity)
		updated = true
	}
	if req.Unit != nil {
		builder = builder.Set("unit", *req.Unit)
		updated = true
	}
	if req.Category != nil {
		builder = builder.Set("category", *req.Category)
		updated = true
	}
	if req.Room != nil {
		builder = builder.Set("room", *req.Room)
		updated = true
	}
	if req.PurchaseLink != nil {
		builder = builder.Set("purchase_link", *req.PurchaseLink)
		updated = true
	}
	if req.Notes != nil {
		builder = builder.Set("notes", *req.Notes)
		updated = true
	}
	if !updated {
		return r.GetSupplyByID(ctx, id)
	}

	builder = builder.Set("updated_at", time.Now().UTC())

	query, args, err := builder.Suffix("RETURNING " + supplyColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build supply update: %w", err)
	}

	supply, err := domain.ScanSupply(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrSupplyNotFound{Message: "supply not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update supply: %w", err)
	}
	return supply, nil
}

func (r *supplyRepository) DeleteSupply(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM supplies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supply: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrSupplyNotFound{Message: "supply not found"}
	}
	return nil
}

func (r *supplyRepository) CreateAssignment(ctx context.Context, assignment *domain.ApartmentSupply) error {
	now := time.Now().UTC()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	query := `
		INSERT INTO apartment_supplies (apartment_id, supply_id, required_quantity, min_quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		assignment.ApartmentID,
		assignment.SupplyID,
		assignment.RequiredQuantity,
		assignment.MinQuantity,
		assignment.CreatedAt,
		assignment.UpdatedAt,
	).Scan(&assignment.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ErrSupplyAlreadyAssigned{}
		}
		return fmt.Errorf("failed to create supply assignment: %w", err)
	}
	return nil
}

func scanApartmentSupply(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.ApartmentSupply, error) {
	var a domain.ApartmentSupply
	if err := scanner.Scan(
		&a.ID,
		&a.ApartmentID,
		&a.SupplyID,
		&a.RequiredQuantity,
		&a.MinQuantity,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *supplyRepository) GetAssignmentByID(ctx context.Context, id int64) (*domain.ApartmentSupply, error) {
	query := `
		SELECT id, apartment_id, supply_id, required_quantity, min_quantity, created_at, updated_at
		FROM apartment_supplies
		WHERE id = $1
	`
	assignment, err := scanApartmentSupply(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrSupplyAssignmentNotFound{Message: "supply assignment not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get supply assignment: %w", err)
	}
	return assignment, nil
}

// ListAssignments joins each assignment with its catalog supply.
func (r *supplyRepository) ListAssignments(ctx context.Context, apartmentID int64) ([]*domain.ApartmentSupplyDetail, error) {
	query := `
		SELECT
			asp.id, asp.apartment_id, asp.supply_id, asp.required_quantity, asp.min_quantity, asp.created_at, asp.updated_at,
			s.id, s.name, s.total_quantity, s.unit, s.category, s.room, s.purchase_link, s.notes, s.created_at, s.updated_at
		FROM apartment_supplies asp
		JOIN supplies s ON s.id = asp.supply_id
		WHERE asp.apartment_id = $1
		ORDER BY s.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list supply assignments: %w", err)
	}
	defer rows.Close()

	var details []*domain.ApartmentSupplyDetail
	for rows.Next() {
		var d domain.ApartmentSupplyDetail
		var supply domain.Supply
		if err := rows.Scan(
			&d.ID,
			&d.ApartmentID,
			&d.SupplyID,
			&d.RequiredQuantity,
			&d.MinQuantity,
			&d.CreatedAt,
			&d.UpdatedAt,
			&supply.ID,
			&supply.Name,
			&supply.TotalQuantity,
			&supply.Unit,
			&supply.Category,
			&supply.Room,
			&supply.PurchaseLink,
			&supply.Notes,
			&supply.CreatedAt,
			&supply.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan supply assignment: %w", err)
		}
		d.Supply = &supply
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supply assignment rows: %w", err)
	}

	return details, nil
}

func (r *supplyRepository) UpdateAssignment(ctx context.Context, id int64, req *domain.UpdateApartmentSupplyRequest) (*domain.ApartmentSupply, error) {
	builder := psql.Update("apartment_supplies").Where(sq.Eq{"id": id})
	updated := false
	if req.RequiredQuantity != nil {
		builder = builder.Set("required_quantity", *req.RequiredQuantity)
		updated = true
	}
	if req.MinQuantity != nil {
		builder = builder.Set("min_quantity", *req.MinQuantity)
		updated = true
	}
	if !updated {
		return r.GetAssignmentByID(ctx, id)
	}

	builder = builder.Set("updated_at", time.Now().UTC())

	query, args, err := builder.
		Suffix("RETURNING id, apartment_id, supply_id, required_quantity, min_quantity, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build supply assignment update: %w", err)
	}

	assignment, err := scanApartmentSupply(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrSupplyAssignmentNotFound{Message: "supply assignment not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update supply assignment: %w", err)
	}
	return assignment, nil
}

func (r *supplyRepository) DeleteAssignment(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM apartment_supplies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supply assignment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrSupplyAssignmentNotFound{Message: "supply assignment not found"}
	}
	return nil
}

const supplyAlertColumns = "id, supply_id, message, reported_by, is_resolved, created_at, resolved_at"

func (r *supplyRepository) CreateAlert(ctx context.Context, alert *domain.SupplyAlert) error {
	alert.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO supply_alerts (supply_id, message, reported_by, is_resolved, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		alert.SupplyID,
		alert.Message,
		alert.ReportedBy,
		alert.IsResolved,
		alert.CreatedAt,
	).Scan(&alert.ID)
	if err != nil {
		return fmt.Errorf("failed to create supply alert: %w", err)
	}
	return nil
}

func (r *supplyRepository) GetAlertByID(ctx context.Context, id int64) (*domain.SupplyAlert, error) {
	query := `SELECT ` + supplyAlertColumns + ` FROM supply_alerts WHERE id = $1`

	alert, err := domain.ScanSupplyAlert(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrSupplyAlertNotFound{Message: "supply alert not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get supply alert: %w", err)
	}
	return alert, nil
}

func (r *supplyRepository) ListAlerts(ctx context.Context, filter domain.SupplyAlertFilter) ([]*domain.SupplyAlert, error) {
	builder := psql.Select("id", "supply_id", "message", "reported_by", "is_resolved", "created_at", "resolved_at").
		From("supply_alerts").
		OrderBy("created_at DESC")

	if filter.SupplyID != nil {
		builder = builder.Where(sq.Eq{"supply_id": *filter.SupplyID})
	}
	if filter.IsResolved != nil {
		builder = builder.Where(sq.Eq{"is_resolved": *filter.IsResolved})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build supply alerts query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list supply alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*domain.SupplyAlert
	for rows.Next() {
		alert, err := domain.ScanSupplyAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supply alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supply alert rows: %w", err)
	}

	return alerts, nil
}

func (r *supplyRepository) ResolveAlert(ctx context.Context, id int64, resolvedAt time.Time) (*domain.SupplyAlert, error) {
	query := `
		UPDATE supply_alerts
		SET is_resolved = TRUE, resolved_at = $1
		WHERE id = $2
		RETURNING ` + supplyAlertColumns

	alert, err := domain.ScanSupplyAlert(r.db.QueryRowContext(ctx, query, resolvedAt, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrSupplyAlertNotFound{Message: "supply alert not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve supply alert: %w", err)
	}
	return alert, nil
}
