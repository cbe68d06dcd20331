// Seeds the eight-table floor plan. Runs with direct database access, logs
// each row, and always exits 0: a failed row is logged and swallowed so a
// partial seed can be finished by hand.
package main

import (
	"log"

	"restaurant-api/config"
	"restaurant-api/store"
)

func main() {
	config.Load()
	config.InitDB()

	if err := store.SeedTables(config.DB); err != nil {
		log.Println("Seeding tables failed:", err)
		return
	}
	log.Println("All tables seeded!")
}
