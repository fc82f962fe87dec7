package initializers

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/qrvault/qrvault-backend/models"
)

// ConnectToDatabase opens the postgres connection and migrates the schema.
// The handle is returned to the caller instead of living in a package
// global, so handlers receive it explicitly.
func ConnectToDatabase(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("❌ DB_URL is not set in environment variables")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect to the database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("❌ Failed to migrate database schema: %v", err)
	}
	log.Println("✅ Database connected and migrated successfully")
	return db
}

// Migrate applies the schema for all models. Split out so tests can run it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.QRCode{},
	)
}
