package store

import (
	"encoding/json"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// TaxRate applied on top of the line-item subtotal at checkout.
const TaxRate = 0.08

// Totals computes subtotal, tax and total for a set of lines. The same
// formula backs the cart summary and the stored order total.
func Totals(lines []models.OrderLine) (subtotal, tax, total float64) {
	for _, line := range lines {
		subtotal += line.Price * float64(line.Quantity)
	}
	tax = subtotal * TaxRate
	total = subtotal + tax
	return subtotal, tax, total
}

// CreateOrder writes one order document with the lines serialized as a blob
// and status pending. There is no idempotency key; a retried submit creates
// a second order.
func CreateOrder(db *gorm.DB, userID string, lines []models.OrderLine) (*models.Order, error) {
	blob, err := json.Marshal(lines)
	if err != nil {
		return nil, err
	}
	_, _, total := Totals(lines)

	order := models.Order{
		UserID:     userID,
		Items:      string(blob),
		TotalPrice: total,
		Status:     models.StatusPending,
	}
	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListUserOrders returns a user's orders, newest first.
func ListUserOrders(db *gorm.DB, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
