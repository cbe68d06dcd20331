package handlers

import (
	"errors"
	"net/http"
	"time"

	"restaurant-api/cart"
	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account, establishes a session, and provisions the
// profile document. If profile provisioning fails the account is kept; the
// profile is created lazily by the next profile update.
func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	account, err := store.CreateAccount(config.DB, req.Email, string(hash), req.Name)
	if errors.Is(err, store.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := middleware.GenerateToken(account, models.RoleCustomer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	profile, err := store.CreateProfile(config.DB, account.ID, account.Email, account.Name)
	if err != nil {
		// No rollback: the identity exists but the profile must be retried.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Account created but profile setup failed; update your profile to retry",
			"token": token,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"token":   token,
		"user": gin.H{
			"id":      account.ID,
			"name":    account.Name,
			"email":   account.Email,
			"role":    profile.Role,
			"profile": profile,
		},
	})
}

// Login authenticates a user and returns a session token. The role claim is
// read from the profile document.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := store.GetAccountByEmail(config.DB, req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	role := store.GetUserRole(config.DB, account.ID)
	token, err := middleware.GenerateToken(account, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    account.ID,
			"name":  account.Name,
			"email": account.Email,
			"role":  role,
		},
	})
}

// Logout revokes the presented token until its natural expiry and drops the
// caller's in-memory cart.
func Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := config.Revoker.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	cart.Default.Clear(claims.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the merged identity: base account fields overlaid with the first
// profile document matching user_id. Identity alone when no profile exists.
func Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	account, err := store.GetAccountByID(config.DB, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	merged := gin.H{
		"id":         account.ID,
		"email":      account.Email,
		"name":       account.Name,
		"created_at": account.CreatedAt,
	}
	profile, err := store.GetProfileByUserID(config.DB, userID)
	if err == nil {
		merged["profile_id"] = profile.ID
		merged["username"] = profile.Username
		merged["role"] = profile.Role
		merged["phone"] = profile.Phone
		merged["user_context"] = profile.UserContext
	} else if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": merged})
}
