package store

import (
	"strings"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// MenuFilters holds the optional menu query predicates. Zero values mean the
// predicate is not applied.
type MenuFilters struct {
	Category string
	MaxPrice float64
	Tags     []string
	Search   string
}

// ListMenuItems applies the remote-style filters (category equality, max
// price, tag search) in the query, then narrows by Search as a substring
// match on name/description over the returned rows.
func ListMenuItems(db *gorm.DB, filters MenuFilters) ([]models.MenuItem, error) {
	q := db.Model(&models.MenuItem{})
	if filters.Category != "" {
		q = q.Where("category = ?", filters.Category)
	}
	if filters.MaxPrice > 0 {
		q = q.Where("price <= ?", filters.MaxPrice)
	}
	if len(filters.Tags) > 0 {
		tagQ := db.Where("tags LIKE ?", "%"+filters.Tags[0]+"%")
		for _, tag := range filters.Tags[1:] {
			tagQ = tagQ.Or("tags LIKE ?", "%"+tag+"%")
		}
		q = q.Where(tagQ)
	}

	var items []models.MenuItem
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}

	if filters.Search == "" {
		return items, nil
	}
	needle := strings.ToLower(filters.Search)
	narrowed := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			narrowed = append(narrowed, item)
		}
	}
	return narrowed, nil
}

// ListDailyMenus returns the daily menus for a given YYYY-MM-DD date.
func ListDailyMenus(db *gorm.DB, date string) ([]models.DailyMenu, error) {
	var menus []models.DailyMenu
	if err := db.Where("date = ?", date).Find(&menus).Error; err != nil {
		return nil, err
	}
	return menus, nil
}
