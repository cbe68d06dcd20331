package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableInactive  TableStatus = "inactive"
)

type Reservation struct {
	ID              string            `json:"id" gorm:"primaryKey"`
	UserID          string            `json:"user_id" gorm:"index;not null"`
	Date            string            `json:"date" gorm:"not null"` // YYYY-MM-DD
	Time            string            `json:"time" gorm:"not null"` // HH:MM
	GuestCount      int               `json:"guest_count" gorm:"not null"`
	SpecialRequests string            `json:"special_requests"`
	TableID         string            `json:"table_id" gorm:"not null"`
	Status          ReservationStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt       time.Time         `json:"created_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Table is seeded reference data; this service reads and filters it but never
// mutates a row after seeding.
type Table struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	TableNumber int         `json:"table_number" gorm:"not null"`
	Capacity    int         `json:"capacity" gorm:"not null"`
	Status      TableStatus `json:"status" gorm:"not null;default:'available'"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
