package database

import (
	"log"

	"github.com/classfit/class-booking/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Class{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Backstop for the in-transaction guard: the slot counter can never leave
	// [0, capacity] even if a code path skips the locked read.
	db.Exec(`
		DO $$ BEGIN
			ALTER TABLE classes
			ADD CONSTRAINT chk_available_slots
			CHECK (available_slots >= 0 AND available_slots <= capacity);
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$
	`)

	return db
}
