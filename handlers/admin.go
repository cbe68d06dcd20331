package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
)

// GetDashboard returns the admin overview: counters plus recent activity.
func GetDashboard(c *gin.Context) {
	summary, err := store.GetDashboardSummary(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AdminGetAllOrders lists every order.
func AdminGetAllOrders(c *gin.Context) {
	orders, err := store.ListAllOrders(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// AdminGetAllReservations lists every reservation.
func AdminGetAllReservations(c *gin.Context) {
	reservations, err := store.ListAllReservations(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// AdminGetAllUsers lists every profile document.
func AdminGetAllUsers(c *gin.Context) {
	profiles, err := store.ListProfiles(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(profiles), "users": profiles})
}

// AdminGetAllFeedback lists every feedback record.
func AdminGetAllFeedback(c *gin.Context) {
	records, err := store.ListFeedback(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(records), "feedback": records})
}
