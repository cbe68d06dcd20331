package store

import (
	"testing"

	"restaurant-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCapacities(t *testing.T, db *gorm.DB, capacities ...int) {
	t.Helper()
	for i, capacity := range capacities {
		table := models.Table{
			TableNumber: i + 1,
			Capacity:    capacity,
			Status:      models.TableAvailable,
		}
		require.NoError(t, db.Create(&table).Error)
	}
}

func reservationCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Reservation{}).Count(&n).Error)
	return n
}

func TestCreateReservationAssignsQualifyingTable(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SeedTables(db))

	// Largest seeded table holds 8, so every guest count up to 8 succeeds
	// and 9–10 fail without writing anything.
	for guests := 1; guests <= 10; guests++ {
		before := reservationCount(t, db)
		reservation, err := CreateReservation(db, "user-1", ReservationInput{
			Date:       "2026-09-01",
			Time:       "19:00",
			GuestCount: guests,
		})
		if guests <= 8 {
			require.NoError(t, err, "guests=%d", guests)
			assert.Equal(t, models.ReservationPending, reservation.Status)
			assert.NotEmpty(t, reservation.TableID)

			var table models.Table
			require.NoError(t, db.First(&table, "id = ?", reservation.TableID).Error)
			assert.GreaterOrEqual(t, table.Capacity, guests)
			assert.Equal(t, before+1, reservationCount(t, db))
		} else {
			assert.ErrorIs(t, err, ErrNoAvailability, "guests=%d", guests)
			assert.Equal(t, before, reservationCount(t, db), "failed reservation must not write")
		}
	}
}

func TestCreateReservationNoQualifyingTable(t *testing.T) {
	db := newTestDB(t)
	seedCapacities(t, db, 2, 4)

	_, err := CreateReservation(db, "user-1", ReservationInput{
		Date:       "2026-09-01",
		Time:       "20:00",
		GuestCount: 6,
	})
	assert.ErrorIs(t, err, ErrNoAvailability)
	assert.EqualValues(t, 0, reservationCount(t, db))
}

func TestFindAvailableTableTieBreak(t *testing.T) {
	db := newTestDB(t)
	seedCapacities(t, db, 4, 4, 8)

	table, err := FindAvailableTable(db, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, table.TableNumber)
}

func TestFindAvailableTableSkipsUnavailable(t *testing.T) {
	db := newTestDB(t)
	blocked := models.Table{TableNumber: 1, Capacity: 8, Status: models.TableInactive}
	require.NoError(t, db.Create(&blocked).Error)
	open := models.Table{TableNumber: 2, Capacity: 4, Status: models.TableAvailable}
	require.NoError(t, db.Create(&open).Error)

	table, err := FindAvailableTable(db, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, table.TableNumber)

	_, err = FindAvailableTable(db, 6)
	assert.ErrorIs(t, err, ErrNoAvailability)
}

func TestCreateReservationDoesNotMutateTable(t *testing.T) {
	db := newTestDB(t)
	seedCapacities(t, db, 4)

	_, err := CreateReservation(db, "user-1", ReservationInput{
		Date:       "2026-09-01",
		Time:       "18:00",
		GuestCount: 2,
	})
	require.NoError(t, err)

	var table models.Table
	require.NoError(t, db.First(&table, "table_number = ?", 1).Error)
	assert.Equal(t, models.TableAvailable, table.Status)

	// Same slot again: the table is claimed a second time.
	second, err := CreateReservation(db, "user-2", ReservationInput{
		Date:       "2026-09-01",
		Time:       "18:00",
		GuestCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, table.ID, second.TableID)
}

func TestListUserReservations(t *testing.T) {
	db := newTestDB(t)
	seedCapacities(t, db, 4)

	for _, date := range []string{"2026-09-01", "2026-09-03", "2026-09-02"} {
		_, err := CreateReservation(db, "user-1", ReservationInput{
			Date: date, Time: "19:00", GuestCount: 2,
		})
		require.NoError(t, err)
	}
	_, err := CreateReservation(db, "someone-else", ReservationInput{
		Date: "2026-09-04", Time: "19:00", GuestCount: 2,
	})
	require.NoError(t, err)

	reservations, err := ListUserReservations(db, "user-1")
	require.NoError(t, err)
	require.Len(t, reservations, 3)
	assert.Equal(t, "2026-09-03", reservations[0].Date)
	assert.Equal(t, "2026-09-02", reservations[1].Date)
	assert.Equal(t, "2026-09-01", reservations[2].Date)
}
