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

func propertyRows(p *domain.Property) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "address", "description", "active", "created_at"}).
		AddRow(p.ID, p.Name, p.Address, p.Description, p.Active, p.CreatedAt)
}

func TestPropertyRepository_CreateProperty(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewPropertyRepository(db)

	description := "Beachfront block"
	property := &domain.Property{
		Name:        "Seaside Residences",
		Address:     "1 Beach Road",
		Description: &description,
		Active:      true,
	}

	mock.ExpectQuery(`INSERT INTO properties \(name, address, description, active, created_at\)`).
		WithArgs(property.Name, property.Address, property.Description, property.Active, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	err := repo.CreateProperty(context.Background(), property)
	require.NoError(t, err)
	assert.Equal(t, int64(1), property.ID)
	assert.NotZero(t, property.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_GetPropertyByID(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewPropertyRepository(db)

	t.Run("found", func(t *testing.T) {
		p := &domain.Property{ID: 2, Name: "Seaside", Address: "1 Beach Road", Active: true, CreatedAt: time.Now().UTC()}

		mock.ExpectQuery(`SELECT id, name, address, description, active, created_at FROM properties WHERE id = \$1`).
			WithArgs(p.ID).
			WillReturnRows(propertyRows(p))

		found, err := repo.GetPropertyByID(context.Background(), p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.Name, found.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, address, description, active, created_at FROM properties WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "description", "active", "created_at"}))

		_, err := repo.GetPropertyByID(context.Background(), 99)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrPropertyNotFound{}, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPropertyRepository_ListProperties(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewPropertyRepository(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "name", "address", "description", "active", "created_at"}).
		AddRow(int64(1), "Alpha", "Addr A", "", true, now).
		AddRow(int64(2), "Beta", "Addr B", "", false, now)

	mock.ExpectQuery(`SELECT id, name, address, description, active, created_at FROM properties ORDER BY name ASC`).
		WillReturnRows(rows)

	properties, err := repo.ListProperties(context.Background())
	require.NoError(t, err)
	require.Len(t, properties, 2)
	assert.Equal(t, "Alpha", properties[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPropertyRepository_UpdateProperty(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewPropertyRepository(db)

	t.Run("partial update", func(t *testing.T) {
		name := "Renamed"
		p := &domain.Property{ID: 3, Name: name, Address: "Addr", Active: true, CreatedAt: time.Now().UTC()}

		mock.ExpectQuery(`UPDATE properties SET name = \$1 WHERE id = \$2 RETURNING id, name, address, description, active, created_at`).
			WithArgs(name, p.ID).
			WillReturnRows(propertyRows(p))

		updated, err := repo.UpdateProperty(context.Background(), p.ID, &domain.UpdatePropertyRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no fields falls back to get", func(t *testing.T) {
		p := &domain.Property{ID: 3, Name: "Same", Address: "Addr", Active: true, CreatedAt: time.Now().UTC()}

		mock.ExpectQuery(`SELECT id, name, address, description, active, created_at FROM properties WHERE id = \$1`).
			WithArgs(p.ID).
			WillReturnRows(propertyRows(p))

		updated, err := repo.UpdateProperty(context.Background(), p.ID, &domain.UpdatePropertyRequest{})
		require.NoError(t, err)
		assert.Equal(t, p.Name, updated.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		name := "Renamed"
		mock.ExpectQuery(`UPDATE properties SET name = \$1 WHERE id = \$2`).
			WithArgs(name, int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "description", "active", "created_at"}))

		_, err := repo.UpdateProperty(context.Background(), 99, &domain.UpdatePropertyRequest{Name: &name})
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrPropertyNotFound{}, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPropertyRepository_DeleteProperty(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewPropertyRepository(db)

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM properties WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteProperty(context.Background(), 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM properties WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteProperty(context.Background(), 99)
		assert.Error(t, err)
		assert.IsType(t, &domain.ErrPropertyNotFound{}, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
