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

var apartmentCols = []string{"id", "name", "property_id", "floor", "number", "beds", "bathrooms", "notes", "active", "created_at"}

func TestApartmentRepository_CreateApartment(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewApartmentRepository(db)

	floor := "2"
	beds := 3
	apartment := &domain.Apartment{
		Name:       "Unit 2B",
		PropertyID: 1,
		Floor:      &floor,
		Beds:       &beds,
		Active:     true,
	}

	mock.ExpectQuery(`INSERT INTO apartments`).
		WithArgs(apartment.Name, apartment.PropertyID, apartment.Floor, apartment.Number, apartment.Beds, apartment.Bathrooms, apartment.Notes, apartment.Active, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(2)))

	err := repo.CreateApartment(context.Background(), apartment)
	require.NoError(t, err)
	assert.Equal(t, int64(2), apartment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApartmentRepository_ListApartments(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewApartmentRepository(db)

	t.Run("property filter", func(t *testing.T) {
		propertyID := int64(1)
		now := time.Now().UTC()
		rows := sqlmock.NewRows(apartmentCols).
			AddRow(int64(2), "Unit 2B", propertyID, nil, nil, nil, nil, nil, true, now)

		mock.ExpectQuery(`SELECT .+ FROM apartments WHERE property_id = \$1 ORDER BY name ASC`).
			WithArgs(propertyID).
			WillReturnRows(rows)

		apartments, err := repo.ListApartments(context.Background(), domain.ApartmentFilter{PropertyID: &propertyID})
		require.NoError(t, err)
		require.Len(t, apartments, 1)
		assert.Equal(t, propertyID, apartments[0].PropertyID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no filter", func(t *testing.T) {
		now := time.Now().UTC()
		rows := sqlmock.NewRows(apartmentCols).
			AddRow(int64(2), "Unit 2B", int64(1), nil, nil, nil, nil, nil, true, now).
			AddRow(int64(3), "Unit 3A", int64(1), nil, nil, nil, nil, nil, false, now)

		mock.ExpectQuery(`SELECT .+ FROM apartments ORDER BY name ASC`).
			WillReturnRows(rows)

		apartments, err := repo.ListApartments(context.Background(), domain.ApartmentFilter{})
		require.NoError(t, err)
		assert.Len(t, apartments, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApartmentRepository_UpdateApartment_NotFound(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewApartmentRepository(db)

	name := "Renamed"
	mock.ExpectQuery(`UPDATE apartments SET name = \$1 WHERE id = \$2`).
		WithArgs(name, int64(99)).
		WillReturnRows(sqlmock.NewRows(apartmentCols))

	_, err := repo.UpdateApartment(context.Background(), 99, &domain.UpdateApartmentRequest{Name: &name})
	assert.Error(t, err)
	assert.IsType(t, &domain.ErrApartmentNotFound{}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_CreateRoom_ApartmentFixture(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewRoomRepository(db)

	room := &domain.Room{
		Name:        "Kitchen",
		ApartmentID: 2,
	}

	mock.ExpectQuery(`INSERT INTO rooms \(name, apartment_id, created_at\)`).
		WithArgs(room.Name, room.ApartmentID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(6)))

	err := repo.CreateRoom(context.Background(), room)
	require.NoError(t, err)
	assert.Equal(t, int64(6), room.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_ListRooms_ApartmentFixture(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewRoomRepository(db)

	apartmentID := int64(2)
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "name", "apartment_id", "created_at"}).
		AddRow(int64(6), "Bathroom", apartmentID, now).
		AddRow(int64(7), "Kitchen", apartmentID, now)

	mock.ExpectQuery(`SELECT id, name, apartment_id, created_at FROM rooms WHERE apartment_id = \$1 ORDER BY name ASC`).
		WithArgs(apartmentID).
		WillReturnRows(rows)

	rooms, err := repo.ListRooms(context.Background(), domain.RoomFilter{ApartmentID: &apartmentID})
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "Bathroom", rooms[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomRepository_DeleteRoom_NotFound(t *testing.T) {
	db, mock := setupMockTestDB(t)
	defer db.Close()
	repo := NewRoomRepository(db)

	mock.ExpectExec(`DELETE FROM rooms WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRoom(context.Background(), 99)
	assert.Error(t, err)
	assert.IsType(t, &domain.ErrRoomNotFound{}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
