package store

import (
	"log"

	"restaurant-api/models"

	"gorm.io/gorm"
)

// tableFixtures is the fixed floor plan written by the seeder.
var tableFixtures = []models.Table{
	{TableNumber: 1, Capacity: 2, Status: models.TableAvailable},
	{TableNumber: 2, Capacity: 4, Status: models.TableAvailable},
	{TableNumber: 3, Capacity: 2, Status: models.TableAvailable},
	{TableNumber: 4, Capacity: 6, Status: models.TableAvailable},
	{TableNumber: 5, Capacity: 4, Status: models.TableAvailable},
	{TableNumber: 6, Capacity: 2, Status: models.TableAvailable},
	{TableNumber: 7, Capacity: 8, Status: models.TableAvailable},
	{TableNumber: 8, Capacity: 4, Status: models.TableAvailable},
}

// SeedTables bulk-creates the eight table documents, logging each row.
func SeedTables(db *gorm.DB) error {
	for _, fixture := range tableFixtures {
		table := fixture
		if err := db.Create(&table).Error; err != nil {
			return err
		}
		log.Printf("Seeded table #%d (capacity %d)", table.TableNumber, table.Capacity)
	}
	return nil
}
