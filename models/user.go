package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// Account is the authentication identity. Credentials live here; the
// application-level profile is a separate document keyed by user_id.
type Account struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// UserProfile is the Users collection document. UserID references an Account
// and is always matched by equality, never by document id.
type UserProfile struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"uniqueIndex;not null"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	Role        UserRole  `json:"role" gorm:"not null;default:'customer'"`
	Phone       string    `json:"phone"`
	UserContext string    `json:"user_context"` // serialized UserContext
	CreatedAt   time.Time `json:"created_at"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// UserContext is the preference blob serialized into UserProfile.UserContext.
type UserContext struct {
	Preferences   []string `json:"preferences"`
	Allergies     []string `json:"allergies"`
	FavoriteItems []string `json:"favorite_items"`
}
