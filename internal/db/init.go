package db

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ThorntonMercy/ecommerce-api/internal/models"
)

// Init connects to Postgres using DATABASE_DSN and migrates the schema.
func Init() *gorm.DB {
	dsn := os.Getenv("DATABASE_DSN")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	return db
}

// Migrate registers the custom join table and creates all tables. The join
// table must be set up before AutoMigrate so the composite primary key on
// (order_id, product_id) is used instead of a generated surrogate key.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Order{}, "Products", &models.OrderProduct{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	)
}
