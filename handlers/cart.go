package handlers

import (
	"errors"
	"net/http"

	"restaurant-api/cart"
	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart returns the caller's cart with totals.
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	c.JSON(http.StatusOK, cart.Default.Summarize(userID))
}

// AddCartItem adds a line or bumps its quantity.
func AddCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	cart.Default.Add(userID, models.OrderLine{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	c.JSON(http.StatusOK, cart.Default.Summarize(userID))
}

// UpdateCartItem sets a line's quantity. Quantities below 1 are rejected;
// removing a line is DELETE, never a zero-quantity update.
func UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID := c.Param("id")

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := cart.Default.SetQuantity(userID, itemID, req.Quantity)
	if errors.Is(err, cart.ErrMinQuantity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be at least 1; remove the item instead"})
		return
	}
	if errors.Is(err, cart.ErrLineNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
		return
	}
	c.JSON(http.StatusOK, cart.Default.Summarize(userID))
}

// RemoveCartItem deletes a line from the cart.
func RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID := c.Param("id")

	if err := cart.Default.Remove(userID, itemID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
		return
	}
	c.JSON(http.StatusOK, cart.Default.Summarize(userID))
}

// Checkout drains the cart into one order document and clears it.
func Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	items := cart.Default.Items(userID)
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	order, err := store.CreateOrder(config.DB, userID, items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}
	cart.Default.Clear(userID)

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}
