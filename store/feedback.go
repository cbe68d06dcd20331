package store

import (
	"restaurant-api/models"

	"gorm.io/gorm"
)

// CreateFeedback appends one feedback record for an order.
func CreateFeedback(db *gorm.DB, userID, orderID string, rating int, comment string) (*models.Feedback, error) {
	feedback := models.Feedback{
		UserID:  userID,
		OrderID: orderID,
		Rating:  rating,
		Comment: comment,
	}
	if err := db.Create(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

// ListFeedback returns all feedback records, newest first.
func ListFeedback(db *gorm.DB) ([]models.Feedback, error) {
	var records []models.Feedback
	if err := db.Order("created_at desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
