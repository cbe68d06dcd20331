package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"restaurant-api/config"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
)

// GetMenu lists menu items with the optional filters: category equality,
// max_price ceiling, tags free-text match, and q substring narrowing on
// name/description. No pagination or ordering contract.
func GetMenu(c *gin.Context) {
	filters := store.MenuFilters{
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPrice <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_price must be a positive number"})
			return
		}
		filters.MaxPrice = maxPrice
	}
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filters.Tags = append(filters.Tags, tag)
			}
		}
	}

	items, err := store.ListMenuItems(config.DB, filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// GetDailyMenus returns the menus dated today.
func GetDailyMenus(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	menus, err := store.ListDailyMenus(config.DB, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load daily menus"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": today, "menus": menus})
}

// GetTables lists the seeded tables.
func GetTables(c *gin.Context) {
	tables, err := store.ListTables(config.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}
