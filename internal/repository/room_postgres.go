package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/sparkleclean/sparkle/internal/domain"
)

type roomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new PostgreSQL room repository
func NewRoomRepository(db *sql.DB) domain.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	room.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO rooms (name, apartment_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		room.Name,
		room.ApartmentID,
		room.CreatedAt,
	).Scan(&room.ID)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

func (r *roomRepository) GetRoomByID(ctx context.Context, id int64) (*domain.Room, error) {
	query := `SELECT id, name, apartment_id, created_at FROM rooms WHERE id = $1`

	room, err := domain.ScanRoom(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrRoomNotFound{Message: "room not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return room, nil
}

func (r *roomRepository) ListRooms(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	builder := psql.Select("id", "name", "apartment_id", "created_at").
		From("rooms").
		OrderBy("name ASC")

	if filter.ApartmentID != nil {
		builder = builder.Where(sq.Eq{"apartment_id": *filter.ApartmentID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build rooms query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*domain.Room
	for rows.Next() {
		room, err := domain.ScanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) UpdateRoom(ctx context.Context, id int64, req *domain.UpdateRoomRequest) (*domain.Room, error) {
	if req.Name == nil {
		return r.GetRoomByID(ctx, id)
	}

	query, args, err := psql.Update("rooms").
		Set("name", *req.Name).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, apartment_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build room update: %w", err)
	}

	room, err := domain.ScanRoom(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, &domain.ErrRoomNotFound{Message: "room not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

func (r *roomRepository) DeleteRoom(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return &domain.ErrRoomNotFound{Message: "room not found"}
	}
	return nil
}
