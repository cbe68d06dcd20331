package store

import (
	"restaurant-api/models"

	"gorm.io/gorm"
)

// DashboardSummary is the admin overview payload.
type DashboardSummary struct {
	TotalOrders        int64                `json:"total_orders"`
	PendingOrders      int64                `json:"pending_orders"`
	TotalReservations  int64                `json:"total_reservations"`
	TotalCustomers     int64                `json:"total_customers"`
	RecentOrders       []models.Order       `json:"recent_orders"`
	RecentReservations []models.Reservation `json:"recent_reservations"`
}

// GetDashboardSummary aggregates counters and recent activity for the admin
// overview tab.
func GetDashboardSummary(db *gorm.DB) (*DashboardSummary, error) {
	var summary DashboardSummary

	if err := db.Model(&models.Order{}).Count(&summary.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Order{}).
		Where("status = ?", models.StatusPending).
		Count(&summary.PendingOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Reservation{}).Count(&summary.TotalReservations).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.UserProfile{}).
		Where("role = ?", models.RoleCustomer).
		Count(&summary.TotalCustomers).Error; err != nil {
		return nil, err
	}

	if err := db.Order("created_at desc").Limit(5).Find(&summary.RecentOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Order("created_at desc").Limit(5).Find(&summary.RecentReservations).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListAllOrders returns every order, newest first.
func ListAllOrders(db *gorm.DB) ([]models.Order, error) {
	var orders []models.Order
	if err := db.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAllReservations returns every reservation, most recent date first.
func ListAllReservations(db *gorm.DB) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := db.Order("date desc").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}
