package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkleclean/sparkle/internal/domain"
)

func userRows(user *domain.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "hashed_password", "name", "role", "created_at"}).
		AddRow(user.ID, user.Email, user.HashedPassword, user.Name, user.Role, user.CreatedAt)
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)

	t.Run("assigns id and created_at", func(t *testing.T) {
		user := &domain.User{
			Email:          "maria@example.com",
			HashedPassword: "hashed",
			Name:           "Maria",
			Role:           domain.RoleOperator,
		}

		mock.ExpectQuery(`INSERT INTO users \(email, hashed_password, name, role, created_at\)`).
			WithArgs(user.Email, user.HashedPassword, user.Name, user.Role, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

		err := repo.CreateUser(context.Background(), user)
		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.NotZero(t, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		user := &domain.User{
			Email:          "maria@example.com",
			HashedPassword: "hashed",
			Name:           "Maria",
			Role:           domain.RoleOperator,
		}

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.CreateUser(context.Background(), user)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrEmailExists{}, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)

	t.Run("found", func(t *testing.T) {
		now := time.Now().UTC()
		user := &domain.User{
			ID:             3,
			Email:          "admin@example.com",
			HashedPassword: "hashed",
			Name:           "Admin",
			Role:           domain.RoleAdmin,
			CreatedAt:      now,
		}

		mock.ExpectQuery(`SELECT id, email, hashed_password, name, role, created_at FROM users WHERE email = \$1`).
			WithArgs(user.Email).
			WillReturnRows(userRows(user))

		found, err := repo.GetUserByEmail(context.Background(), user.Email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, user.Email, found.Email)
		assert.Equal(t, domain.RoleAdmin, found.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, email, hashed_password, name, role, created_at FROM users WHERE email = \$1`).
			WithArgs("missing@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password", "name", "role", "created_at"}))

		_, err := repo.GetUserByEmail(context.Background(), "missing@example.com")
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrUserNotFound{}, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_ListUsers(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)

	t.Run("no filter", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "email", "hashed_password", "name", "role", "created_at"}).
			AddRow(int64(1), "a@example.com", "h", "A", domain.RoleAdmin, now).
			AddRow(int64(2), "b@example.com", "h", "B", domain.RoleOperator, now)

		mock.ExpectQuery(`SELECT id, email, hashed_password, name, role, created_at FROM users ORDER BY created_at ASC`).
			WillReturnRows(rows)

		users, err := repo.ListUsers(context.Background(), domain.UserFilter{})
		require.NoError(t, err)
		assert.Len(t, users, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("role filter", func(t *testing.T) {
		role := domain.RoleOperator
		now := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "email", "hashed_password", "name", "role", "created_at"}).
			AddRow(int64(2), "b@example.com", "h", "B", domain.RoleOperator, now)

		mock.ExpectQuery(`SELECT id, email, hashed_password, name, role, created_at FROM users WHERE role = \$1 ORDER BY created_at ASC`).
			WithArgs(string(role)).
			WillReturnRows(rows)

		users, err := repo.ListUsers(context.Background(), domain.UserFilter{Role: &role})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, domain.RoleOperator, users[0].Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_UpdateUser(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)

	t.Run("empty patch falls back to get", func(t *testing.T) {
		now := time.Now().UTC()
		user := &domain.User{ID: 5, Email: "e@example.com", HashedPassword: "h", Name: "E", Role: domain.RoleOperator, CreatedAt: now}

		mock.ExpectQuery(`SELECT id, email, hashed_password, name, role, created_at FROM users WHERE id = \$1`).
			WithArgs(user.ID).
			WillReturnRows(userRows(user))

		updated, err := repo.UpdateUser(context.Background(), user.ID, domain.UserPatch{})
		require.NoError(t, err)
		assert.Equal(t, user.Email, updated.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("name change", func(t *testing.T) {
		now := time.Now().UTC()
		newName := "Renamed"
		user := &domain.User{ID: 5, Email: "e@example.com", HashedPassword: "h", Name: newName, Role: domain.RoleOperator, CreatedAt: now}

		mock.ExpectQuery(`UPDATE users SET name = \$1 WHERE id = \$2 RETURNING id, email, hashed_password, name, role, created_at`).
			WithArgs(newName, user.ID).
			WillReturnRows(userRows(user))

		updated, err := repo.UpdateUser(context.Background(), user.ID, domain.UserPatch{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, newName, updated.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		newName := "Renamed"
		mock.ExpectQuery(`UPDATE users SET name = \$1 WHERE id = \$2`).
			WithArgs(newName, int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password", "name", "role", "created_at"}))

		_, err := repo.UpdateUser(context.Background(), 99, domain.UserPatch{Name: &newName})
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrUserNotFound{}, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_DeleteUser(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteUser(context.Background(), 4)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteUser(context.Background(), 99)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrUserNotFound{}, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_CountUsers(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
