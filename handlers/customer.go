package handlers

import (
	"errors"
	"net/http"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	Items []struct {
		ID       string  `json:"id" binding:"required"`
		Name     string  `json:"name" binding:"required"`
		Price    float64 `json:"price" binding:"required,gt=0"`
		Quantity int     `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

type CreateReservationRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	GuestCount      int    `json:"guest_count" binding:"required,min=1,max=10"`
	SpecialRequests string `json:"special_requests"`
}

type SubmitFeedbackRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// PlaceOrder creates one order document from the submitted line items. The
// total is computed server-side from the lines plus tax.
func PlaceOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := make([]models.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, models.OrderLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	order, err := store.CreateOrder(config.DB, userID, lines)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	subtotal, tax, total := store.Totals(lines)
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Order placed successfully",
		"order":    order,
		"subtotal": subtotal,
		"tax":      tax,
		"total":    total,
	})
}

// GetMyOrders returns the caller's orders, newest first.
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orders, err := store.ListUserOrders(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// CreateReservation assigns the first available table with enough capacity
// and writes the reservation. When no table qualifies nothing is written.
func CreateReservation(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reservation, err := store.CreateReservation(config.DB, userID, store.ReservationInput{
		Date:            req.Date,
		Time:            req.Time,
		GuestCount:      req.GuestCount,
		SpecialRequests: req.SpecialRequests,
	})
	if errors.Is(err, store.ErrNoAvailability) {
		c.JSON(http.StatusConflict, gin.H{"error": "No available table found for the requested number of guests"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Reservation created", "reservation": reservation})
}

// GetMyReservations returns the caller's reservations, most recent date first.
func GetMyReservations(c *gin.Context) {
	userID := middleware.GetUserID(c)
	reservations, err := store.ListUserReservations(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// SubmitFeedback appends one feedback record for an order.
func SubmitFeedback(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := store.CreateFeedback(config.DB, userID, req.OrderID, req.Rating, req.Comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Feedback submitted", "feedback": feedback})
}
