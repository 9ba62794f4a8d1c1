package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/sparkle/internal/domain"
)

var workSessionCols = []string{"id", "user_id", "apartment_id", "start_time", "end_time", "notes", "created_at"}

func TestWorkSessionRepository_CreateSession(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewWorkSessionRepository(db)

	session := &domain.WorkSession{
		UserID:      3,
		ApartmentID: 2,
	}

	mock.ExpectQuery(`INSERT INTO work_sessions`).
		WithArgs(session.UserID, session.ApartmentID, sqlmock.AnyArg(), session.EndTime, session.Notes, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	err := repo.CreateSession(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, int64(4), session.ID)
	assert.NotZero(t, session.StartTime)
	assert.Equal(t, session.StartTime, session.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkSessionRepository_ListSessions(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewWorkSessionRepository(db)

	t.Run("user filter with limit", func(t *testing.T) {
		userID := int64(3)
		now := time.Now().UTC()
		rows := sqlmock.NewRows(workSessionCols).
			AddRow(int64(4), userID, int64(2), now, nil, nil, now)

		mock.ExpectQuery(`SELECT .+ FROM work_sessions WHERE user_id = \$1 ORDER BY start_time DESC LIMIT 20`).
			WithArgs(userID).
			WillReturnRows(rows)

		sessions, err := repo.ListSessions(context.Background(), domain.WorkSessionFilter{UserID: &userID, Limit: 20})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, userID, sessions[0].UserID)
		assert.Nil(t, sessions[0].EndTime)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("apartment filter", func(t *testing.T) {
		apartmentID := int64(2)
		now := time.Now().UTC()
		rows := sqlmock.NewRows(workSessionCols).
			AddRow(int64(4), int64(3), apartmentID, now, nil, nil, now)

		mock.ExpectQuery(`SELECT .+ FROM work_sessions WHERE apartment_id = \$1 ORDER BY start_time DESC`).
			WithArgs(apartmentID).
			WillReturnRows(rows)

		sessions, err := repo.ListSessions(context.Background(), domain.WorkSessionFilter{ApartmentID: &apartmentID})
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWorkSessionRepository_UpdateSession(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewWorkSessionRepository(db)

	t.Run("close session", func(t *testing.T) {
		now := time.Now().UTC()
		end := now.Add(2 * time.Hour)
		rows := sqlmock.NewRows(workSessionCols).
			AddRow(int64(4), int64(3), int64(2), now, end, nil, now)

		mock.ExpectQuery(`UPDATE work_sessions SET end_time = \$1 WHERE id = \$2 RETURNING`).
			WithArgs(end, int64(4)).
			WillReturnRows(rows)

		session, err := repo.UpdateSession(context.Background(), 4, &domain.UpdateWorkSessionRequest{EndTime: &end})
		require.NoError(t, err)
		require.NotNil(t, session.EndTime)
		assert.WithinDuration(t, end, *session.EndTime, time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch falls back to get", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows(workSessionCols).
			AddRow(int64(4), int64(3), int64(2), now, nil, nil, now)

		mock.ExpectQuery(`SELECT .+ FROM work_sessions WHERE id = \$1`).
			WithArgs(int64(4)).
			WillReturnRows(rows)

		session, err := repo.UpdateSession(context.Background(), 4, &domain.UpdateWorkSessionRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(4), session.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		notes := "late checkout"
		mock.ExpectQuery(`UPDATE work_sessions SET notes = \$1 WHERE id = \$2`).
			WithArgs(notes, int64(99)).
			WillReturnRows(sqlmock.NewRows(workSessionCols))

		_, err := repo.UpdateSession(context.Background(), 99, &domain.UpdateWorkSessionRequest{Notes: &notes})
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrWorkSessionNotFound{}, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWorkSessionRepository_DeleteSession(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewWorkSessionRepository(db)

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM work_sessions WHERE id = \$1`).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteSession(context.Background(), 4))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM work_sessions WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteSession(context.Background(), 99)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrWorkSessionNotFound{}, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
