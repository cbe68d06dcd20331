package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Available   bool      `json:"available" gorm:"default:true"`
	Tags        string    `json:"tags"` // comma-separated
	CreatedAt   time.Time `json:"created_at"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// DailyMenu is a dated selection of items; queried by today's date.
type DailyMenu struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Date      string    `json:"date" gorm:"index;not null"` // YYYY-MM-DD
	Name      string    `json:"name"`
	Items     string    `json:"items"` // serialized list of menu item references
	CreatedAt time.Time `json:"created_at"`
}

func (d *DailyMenu) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
