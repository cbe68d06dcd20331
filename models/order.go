package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents the lifecycle states of an order. This service only
// ever writes StatusPending; later transitions happen out-of-band.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID         string      `json:"id" gorm:"primaryKey"`
	UserID     string      `json:"user_id" gorm:"index;not null"`
	Items      string      `json:"items" gorm:"not null"` // serialized []OrderLine
	TotalPrice float64     `json:"total_price"`
	Status     OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt  time.Time   `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderLine is one entry of the serialized items blob. Name and price are
// snapshots taken at checkout time.
type OrderLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
