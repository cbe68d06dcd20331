package store

import (
	"testing"

	"restaurant-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedMenu(t *testing.T, db *gorm.DB) {
	t.Helper()
	items := []models.MenuItem{
		{Name: "Margherita", Description: "Tomato, mozzarella, basil", Price: 12, Category: "mains", Available: true, Tags: "vegetarian,classic"},
		{Name: "Carbonara", Description: "Guanciale and pecorino", Price: 15, Category: "mains", Available: true, Tags: "classic"},
		{Name: "Tiramisu", Description: "Coffee-soaked dessert", Price: 7, Category: "desserts", Available: true, Tags: "vegetarian,sweet"},
		{Name: "House Salad", Description: "Seasonal greens", Price: 6, Category: "starters", Available: true, Tags: "vegan,vegetarian"},
	}
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
	}
}

func names(items []models.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestListMenuItems(t *testing.T) {
	db := newTestDB(t)
	seedMenu(t, db)

	tests := []struct {
		name      string
		filters   MenuFilters
		wantNames []string
	}{
		{
			name:      "no filters returns everything",
			wantNames: []string{"Margherita", "Carbonara", "Tiramisu", "House Salad"},
		},
		{
			name:      "category equality",
			filters:   MenuFilters{Category: "mains"},
			wantNames: []string{"Margherita", "Carbonara"},
		},
		{
			name:      "max price ceiling",
			filters:   MenuFilters{MaxPrice: 7},
			wantNames: []string{"Tiramisu", "House Salad"},
		},
		{
			name:      "tag search",
			filters:   MenuFilters{Tags: []string{"vegan"}},
			wantNames: []string{"House Salad"},
		},
		{
			name:      "any of several tags",
			filters:   MenuFilters{Tags: []string{"vegan", "sweet"}},
			wantNames: []string{"Tiramisu", "House Salad"},
		},
		{
			name:      "search narrows on name",
			filters:   MenuFilters{Search: "carbo"},
			wantNames: []string{"Carbonara"},
		},
		{
			name:      "search narrows on description",
			filters:   MenuFilters{Search: "coffee"},
			wantNames: []string{"Tiramisu"},
		},
		{
			name:      "combined filters",
			filters:   MenuFilters{Category: "mains", MaxPrice: 13, Search: "basil"},
			wantNames: []string{"Margherita"},
		},
		{
			name:    "search with no match",
			filters: MenuFilters{Search: "sushi"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			items, err := ListMenuItems(db, testCase.filters)
			require.NoError(t, err)
			assert.ElementsMatch(t, testCase.wantNames, names(items))
		})
	}
}

func TestListDailyMenus(t *testing.T) {
	db := newTestDB(t)
	today := models.DailyMenu{Date: "2026-08-31", Name: "Chef's Monday"}
	require.NoError(t, db.Create(&today).Error)
	other := models.DailyMenu{Date: "2026-09-01", Name: "Tuesday Special"}
	require.NoError(t, db.Create(&other).Error)

	menus, err := ListDailyMenus(db, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Chef's Monday", menus[0].Name)
}
