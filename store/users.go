package store

import (
	"encoding/json"
	"errors"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// DefaultUserContext returns the serialized empty preference blob new profiles
// start with.
func DefaultUserContext() string {
	blob, _ := json.Marshal(models.UserContext{
		Preferences:   []string{},
		Allergies:     []string{},
		FavoriteItems: []string{},
	})
	return string(blob)
}

// CreateAccount registers a new identity. The email uniqueness probe runs
// first so callers get ErrEmailTaken instead of a driver constraint error.
func CreateAccount(db *gorm.DB, email, passwordHash, name string) (*models.Account, error) {
	var existing models.Account
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account := models.Account{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	}
	if err := db.Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

func GetAccountByEmail(db *gorm.DB, email string) (*models.Account, error) {
	var account models.Account
	if err := db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

func GetAccountByID(db *gorm.DB, id string) (*models.Account, error) {
	var account models.Account
	if err := db.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// CreateProfile provisions the Users collection document for a new account.
func CreateProfile(db *gorm.DB, userID, email, username string) (*models.UserProfile, error) {
	profile := models.UserProfile{
		UserID:      userID,
		Email:       email,
		Username:    username,
		Role:        models.RoleCustomer,
		UserContext: DefaultUserContext(),
	}
	if err := db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileByUserID looks a profile up by its identity reference (equality
// match on user_id, never by document id).
func GetProfileByUserID(db *gorm.DB, userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetUserRole resolves the role stored on a profile, defaulting to customer
// when no profile document exists yet.
func GetUserRole(db *gorm.DB, userID string) models.UserRole {
	profile, err := GetProfileByUserID(db, userID)
	if err != nil {
		return models.RoleCustomer
	}
	return profile.Role
}

// ProfileUpdate enumerates the recognized profile fields. Nil means "leave
// unchanged". Name is applied to the account record only; profile documents
// never carry a name field.
type ProfileUpdate struct {
	Name          *string
	Username      *string
	Email         *string
	Phone         *string
	Preferences   []string
	Allergies     []string
	FavoriteItems []string
}

// UpsertProfile applies a partial update to the caller's profile, creating it
// with defaults when missing. Applying the same update twice yields the same
// stored fields.
func UpsertProfile(db *gorm.DB, userID string, upd ProfileUpdate) (*models.UserProfile, error) {
	if upd.Name != nil {
		if err := db.Model(&models.Account{}).
			Where("id = ?", userID).
			Update("name", *upd.Name).Error; err != nil {
			return nil, err
		}
	}

	profile, err := GetProfileByUserID(db, userID)
	if errors.Is(err, ErrNotFound) {
		profile = &models.UserProfile{
			UserID:      userID,
			Role:        models.RoleCustomer,
			UserContext: DefaultUserContext(),
		}
	} else if err != nil {
		return nil, err
	}

	if upd.Username != nil {
		profile.Username = *upd.Username
	}
	if upd.Email != nil {
		profile.Email = *upd.Email
	}
	if upd.Phone != nil {
		profile.Phone = *upd.Phone
	}
	if upd.Preferences != nil || upd.Allergies != nil || upd.FavoriteItems != nil {
		var ctx models.UserContext
		_ = json.Unmarshal([]byte(profile.UserContext), &ctx)
		if upd.Preferences != nil {
			ctx.Preferences = upd.Preferences
		}
		if upd.Allergies != nil {
			ctx.Allergies = upd.Allergies
		}
		if upd.FavoriteItems != nil {
			ctx.FavoriteItems = upd.FavoriteItems
		}
		blob, _ := json.Marshal(ctx)
		profile.UserContext = string(blob)
	}

	if err := db.Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// ListProfiles returns every profile document (dashboard customer listing).
func ListProfiles(db *gorm.DB) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	if err := db.Order("created_at desc").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
