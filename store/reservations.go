package store

import (
	"errors"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// ReservationInput carries the locally validated reservation request.
type ReservationInput struct {
	Date            string
	Time            string
	GuestCount      int
	SpecialRequests string
}

// FindAvailableTable returns the first available table that seats at least
// guests, ordered by table number. ErrNoAvailability when none qualifies.
func FindAvailableTable(db *gorm.DB, guests int) (*models.Table, error) {
	var table models.Table
	err := db.Where("status = ? AND capacity >= ?", models.TableAvailable, guests).
		Order("table_number").
		First(&table).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoAvailability
	}
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// CreateReservation assigns a table and writes the reservation document. On
// ErrNoAvailability nothing is written. The chosen table's status is not
// updated, so two concurrent requests can claim the same table; whether that
// needs a conditional write is an open product decision.
func CreateReservation(db *gorm.DB, userID string, in ReservationInput) (*models.Reservation, error) {
	table, err := FindAvailableTable(db, in.GuestCount)
	if err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		UserID:          userID,
		Date:            in.Date,
		Time:            in.Time,
		GuestCount:      in.GuestCount,
		SpecialRequests: in.SpecialRequests,
		TableID:         table.ID,
		Status:          models.ReservationPending,
	}
	if err := db.Create(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ListUserReservations returns a user's reservations, most recent date first.
func ListUserReservations(db *gorm.DB, userID string) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := db.Where("user_id = ?", userID).
		Order("date desc").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListTables returns all tables.
func ListTables(db *gorm.DB) ([]models.Table, error) {
	var tables []models.Table
	if err := db.Order("table_number").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}
