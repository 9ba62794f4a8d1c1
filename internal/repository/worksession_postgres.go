package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sparkleclean/sparkle/internal/domain"
)

type workSessionRepository struct {
	db *sql.DB
}

// NewWorkSessionRepository creates a new PostgreSQL work session repository
func NewWorkSessionRepository(db *sql.DB) domain.WorkSessionRepository {
	return &workSessionRepository{db: db}
}

const workSessionColumns = "id, user_id, apartment_id, start_time, end_time, notes, created_at"

func (r *workSessionRepository) CreateSession(ctx context.Context, session *domain.WorkSession) error {
	now := time.Now().UTC()
	session.StartTime = now
	session.CreatedAt = now

	query := `
		INSERT INTO work_sessions (user_id, apartment_id, start_time, end_time, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		session.UserID,
		session.ApartmentID,
		session.StartTime,
		session.EndTime,
		session.Notes,
		session.CreatedAt,
	).Scan(&session.ID)
	if err != nil {
		return fmt.Errorf("failed to create work session: %w", err)
	}
	return nil
}

func (r *workSessionRepository) GetSessionByID(ctx context.Context, id int64) (*domain.WorkSession, error) {
	query := `SELECT ` + workSessionColumns + ` FROM work_sessions WHERE id = $1`

	session, err := domain.ScanWorkSession(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrWorkSessionNotFound{Message: "work session not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work session: %w", err)
	}
	return session, nil
}

func (r *workSessionRepository) ListSessions(ctx context.Context, filter domain.WorkSessionFilter) ([]*domain.WorkSession, error) {
	builder := psql.Select("id", "user_id", "apartment_id", "start_time", "end_time", "notes", "created_at").
		From("work_sessions").
		OrderBy("start_time DESC")

	if filter.UserID != nil {
		builder = builder.Where(sq.Eq{"user_id": *filter.UserID})
	}
	if filter.ApartmentID != nil {
		builder = builder.Where(sq.Eq{"apartment_id": *filter.ApartmentID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build work sessions query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list work sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.WorkSession
	for rows.Next() {
		session, err := domain.ScanWorkSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating work session rows: %w", err)
	}

	return sessions, nil
}

func (r *workSessionRepository) UpdateSession(ctx context.Context, id int64, req *domain.UpdateWorkSessionRequest) (*domain.WorkSession, error) {
	builder := psql.Update("work_sessions").Where(sq.Eq{"id": id})
	updated := false
	if req.Notes != nil {
		builder = builder.Set("notes", *req.Notes)
		updated = true
	}
	if req.EndTime != nil {
		builder = builder.Set("end_time", *req.EndTime)
		updated = true
	}
	if !updated {
		return r.GetSessionByID(ctx, id)
	}

	query, args, err := builder.Suffix("RETURNING " + workSessionColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build work session update: %w", err)
	}

	session, err := domain.ScanWorkSession(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrWorkSessionNotFound{Message: "work session not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update work session: %w", err)
	}
	return session, nil
}

func (r *workSessionRepository) DeleteSession(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM work_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrWorkSessionNotFound{Message: "work session not found"}
	}
	return nil
}
