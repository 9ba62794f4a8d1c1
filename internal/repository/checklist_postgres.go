package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sparkleclean/sparkle/internal/domain"
)

type checklistRepository struct {
	db *sql.DB
}

// NewChecklistRepository creates a new PostgreSQL checklist repository
func NewChecklistRepository(db *sql.DB) domain.ChecklistRepository {
	return &checklistRepository{db: db}
}

const checklistItemColumns = "id, title, description, room_name, is_mandatory, display_order, item_type, expected_number, purchase_link, created_at"

func (r *checklistRepository) CreateItem(ctx context.Context, item *domain.ChecklistItem) error {
	item.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO checklist_items (title, description, room_name, is_mandatory, display_order, item_type, expected_number, purchase_link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		item.Title,
		item.Description,
		item.RoomName,
		item.IsMandatory,
		item.DisplayOrder,
		item.ItemType,
		item.ExpectedNumber,
		item.PurchaseLink,
		item.CreatedAt,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("failed to create checklist item: %w", err)
	}
	return nil
}

func (r *checklistRepository) GetItemByID(ctx context.Context, id int64) (*domain.ChecklistItem, error) {
	query := `SELECT ` + checklistItemColumns + ` FROM checklist_items WHERE id = $1`

	item, err := domain.ScanChecklistItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrChecklistItemNotFound{Message: "checklist item not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist item: %w", err)
	}
	return item, nil
}

func (r *checklistRepository) ListItems(ctx context.Context, filter domain.ChecklistItemFilter) ([]*domain.ChecklistItem, error) {
	builder := psql.Select("id", "title", "description", "room_name", "is_mandatory", "display_order", "item_type", "expected_number", "purchase_link", "created_at").
		From("checklist_items").
		OrderBy("display_order ASC", "title ASC")

	if filter.RoomName != nil {
		builder = builder.Where(sq.Eq{"room_name": *filter.RoomName})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build checklist items query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	defer rows.Close()

	var items []*domain.ChecklistItem
	for rows.Next() {
		item, err := domain.ScanChecklistItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checklist item rows: %w", err)
	}

	return items, nil
}

func (r *checklistRepository) UpdateItem(ctx context.Context, id int64, req *domain.UpdateChecklistItemRequest) (*domain.ChecklistItem, error) {
	builder := psql.Update("checklist_items").Where(sq.Eq{"id": id})
	updated := false
	if req.Title != nil {
		builder = builder.Set("title", *req.Title)
		updated = true
	}
	if req.Description != nil {
		builder = builder.Set("description", *req.Description)
		updated = true
	}
	if req.RoomName != nil {
		builder = builder.Set("room_name", *req.RoomName)
		updated = true
	}
	if req.IsMandatory != nil {
		builder = builder.Set("is_mandatory", *req.IsMandatory)
		updated = true
	}
	if req.DisplayOrder != nil {
		builder = builder.Set("display_order", *req.DisplayOrder)
		updated = true
	}
	if req.ItemType != nil {
		builder = builder.Set("item_type", *req.ItemType)
		updated = true
	}
	if req.ExpectedNumber != nil {
		builder = builder.Set("expected_number", *req.ExpectedNumber)
		updated = true
	}
	if req.PurchaseLink != nil {
		builder = builder.Set("purchase_link", *req.PurchaseLink)
		updated = true
	}
	if !updated {
		return r.GetItemByID(ctx, id)
	}

	query, args, err := builder.Suffix("RETURNING " + checklistItemColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build checklist item update: %w", err)
	}

	item, err := domain.ScanChecklistItem(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrChecklistItemNotFound{Message: "checklist item not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}
	return item, nil
}

func (r *checklistRepository) DeleteItem(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM checklist_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete checklist item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrChecklistItemNotFound{Message: "checklist item not found"}
	}
	return nil
}

func (r *checklistRepository) CreateAssignment(ctx context.Context, assignment *domain.ApartmentChecklistItem) error {
	now := time.Now().UTC()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	query := `
		INSERT INTO apartment_checklist_items (apartment_id, checklist_item_id, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		assignment.ApartmentID,
		assignment.ChecklistItemID,
		assignment.DisplayOrder,
		assignment.CreatedAt,
		assignment.UpdatedAt,
	).Scan(&assignment.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ErrChecklistAlreadyAssigned{}
		}
		return fmt.Errorf("failed to create checklist assignment: %w", err)
	}
	return nil
}

func scanAssignment(scanner interface {
	Scan(dest ...interface{}) error
}) (*domain.ApartmentChecklistItem, error) {
	var a domain.ApartmentChecklistItem
	if err := scanner.Scan(
		&a.ID,
		&a.ApartmentID,
		&a.ChecklistItemID,
		&a.DisplayOrder,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *checklistRepository) GetAssignmentByID(ctx context.Context, id int64) (*domain.ApartmentChecklistItem, error) {
	query := `
		SELECT id, apartment_id, checklist_item_id, display_order, created_at, updated_at
		FROM apartment_checklist_items
		WHERE id = $1
	`
	assignment, err := scanAssignment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrChecklistAssignmentNotFound{Message: "checklist assignment not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get checklist assignment: %w", err)
	}
	return assignment, nil
}

// ListAssignments joins each assignment with its catalog item so the client
// gets the full checklist for an apartment in one call.
func (r *checklistRepository) ListAssignments(ctx context.Context, apartmentID int64) ([]*domain.ApartmentChecklistItemDetail, error) {
	query := `
		SELECT
			aci.id, aci.apartment_id, aci.checklist_item_id, aci.display_order, aci.created_at, aci.updated_at,
			ci.id, ci.title, ci.description, ci.room_name, ci.is_mandatory, ci.display_order, ci.item_type, ci.expected_number, ci.purchase_link, ci.created_at
		FROM apartment_checklist_items aci
		JOIN checklist_items ci ON ci.id = aci.checklist_item_id
		WHERE aci.apartment_id = $1
		ORDER BY aci.display_order ASC, ci.title ASC
	`
	rows, err := r.db.QueryContext(ctx, query, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist assignments: %w", err)
	}
	defer rows.Close()

	var details []*domain.ApartmentChecklistItemDetail
	for rows.Next() {
		var d domain.ApartmentChecklistItemDetail
		var item domain.ChecklistItem
		if err := rows.Scan(
			&d.ID,
			&d.ApartmentID,
			&d.ChecklistItemID,
			&d.DisplayOrder,
			&d.CreatedAt,
			&d.UpdatedAt,
			&item.ID,
			&item.Title,
			&item.Description,
			&item.RoomName,
			&item.IsMandatory,
			&item.DisplayOrder,
			&item.ItemType,
			&item.ExpectedNumber,
			&item.PurchaseLink,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan checklist assignment: %w", err)
		}
		d.ChecklistItem = &item
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checklist assignment rows: %w", err)
	}

	return details, nil
}

func (r *checklistRepository) UpdateAssignment(ctx context.Context, id int64, req *domain.UpdateChecklistAssignmentRequest) (*domain.ApartmentChecklistItem, error) {
	if req.DisplayOrder == nil {
		return r.GetAssignmentByID(ctx, id)
	}

	query := `
		UPDATE apartment_checklist_items
		SET display_order = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, apartment_id, checklist_item_id, display_order, created_at, updated_at
	`
	assignment, err := scanAssignment(r.db.QueryRowContext(ctx, query, *req.DisplayOrder, time.Now().UTC(), id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrChecklistAssignmentNotFound{Message: "checklist assignment not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update checklist assignment: %w", err)
	}
	return assignment, nil
}

func (r *checklistRepository) DeleteAssignment(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM apartment_checklist_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete checklist assignment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrChecklistAssignmentNotFound{Message: "checklist assignment not found"}
	}
	return nil
}

func (r *checklistRepository) CreateCompletion(ctx context.Context, completion *domain.ChecklistCompletion) error {
	completion.CompletedAt = time.Now().UTC()

	query := `
		INSERT INTO checklist_completions (checklist_item_id, user_id, work_session_id, notes, value_number, value_bool, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		completion.ChecklistItemID,
		completion.UserID,
		completion.WorkSessionID,
		completion.Notes,
		completion.ValueNumber,
		completion.ValueBool,
		completion.CompletedAt,
	).Scan(&completion.ID)
	if err != nil {
		return fmt.Errorf("failed to create completion: %w", err)
	}
	return nil
}

// ListCompletions resolves the apartment through the completion's work
// session and picks up the item title, so history rows render without
// further lookups. Items and sessions deleted since still leave the
// completion row behind, hence the left joins.
func (r *checklistRepository) ListCompletions(ctx context.Context, filter domain.CompletionFilter) ([]*domain.CompletionDetail, error) {
	builder := psql.Select(
		"cc.id", "cc.checklist_item_id", "cc.user_id", "cc.work_session_id",
		"cc.notes", "cc.value_number", "cc.value_bool", "cc.completed_at",
		"ws.apartment_id", "ci.title",
	).
		From("checklist_completions cc").
		LeftJoin("work_sessions ws ON ws.id = cc.work_session_id").
		LeftJoin("checklist_items ci ON ci.id = cc.checklist_item_id").
		OrderBy("cc.completed_at DESC")

	if filter.ChecklistItemID != nil {
		builder = builder.Where(sq.Eq{"cc.checklist_item_id": *filter.ChecklistItemID})
	}
	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"cc.user_id": *filter.UserID})
	}
	if filter.ApartmentID != nil {
		builder = builder.Where(sq.Eq{"ws.apartment_id": *filter.ApartmentID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build completions query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	defer rows.Close()

	var details []*domain.CompletionDetail
	for rows.Next() {
		var d domain.CompletionDetail
		if err := rows.Scan(
			&d.ID,
			&d.ChecklistItemID,
			&d.UserID,
			&d.WorkSessionID,
			&d.Notes,
			&d.ValueNumber,
			&d.ValueBool,
			&d.CompletedAt,
			&d.ApartmentID,
			&d.ChecklistItemTitle,
		); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating completion rows: %w", err)
	}

	return details, nil
}

func (r *checklistRepository) DeleteCompletion(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM checklist_completions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete completion: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrCompletionNotFound{Message: "completion not found"}
	}
	return nil
}
