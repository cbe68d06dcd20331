package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest enumerates the recognized profile fields; unknown
// fields are ignored rather than written through. Name goes to the identity
// record only.
type UpdateProfileRequest struct {
	Name          *string  `json:"name"`
	Username      *string  `json:"username"`
	Email         *string  `json:"email" binding:"omitempty,email"`
	Phone         *string  `json:"phone"`
	Preferences   []string `json:"preferences"`
	Allergies     []string `json:"allergies"`
	FavoriteItems []string `json:"favorite_items"`
}

// UpdateProfile applies a partial update to the caller's profile, creating
// the document with defaults when it does not exist yet.
func UpdateProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := store.UpsertProfile(config.DB, userID, store.ProfileUpdate{
		Name:          req.Name,
		Username:      req.Username,
		Email:         req.Email,
		Phone:         req.Phone,
		Preferences:   req.Preferences,
		Allergies:     req.Allergies,
		FavoriteItems: req.FavoriteItems,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "profile": profile})
}
