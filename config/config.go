package config

import (
	"log"
	"os"

	"restaurant-api/models"
	"restaurant-api/store"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Revoker backs logout; redis when REDIS_ADDR is set, in-memory otherwise.
var Revoker store.TokenRevoker = store.NewMemoryRevoker()

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_super_secret_2025"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads .env (if present) and refreshes values derived from it.
func Load() {
	_ = godotenv.Load()
	JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_super_secret_2025"))
}

func InitDB() {
	var (
		dialector gorm.Dialector
		err       error
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(getEnv("DATABASE_PATH", "restaurant.db"))
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.Account{},
		&models.UserProfile{},
		&models.MenuItem{},
		&models.DailyMenu{},
		&models.Order{},
		&models.Reservation{},
		&models.Table{},
		&models.Feedback{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated")
}

// InitRevoker switches the logout revocation list to redis when configured.
func InitRevoker() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	Revoker = store.NewRedisRevoker(client)
	log.Println("Token revocation backed by redis at", addr)
}
