//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/classfit/class-booking/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "class_booking_test"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	// Drop and recreate tables for clean state
	testDB.Exec("DROP TABLE IF EXISTS bookings")
	testDB.Exec("DROP TABLE IF EXISTS classes")
	testDB.Exec("DROP TABLE IF EXISTS users")

	if err := testDB.AutoMigrate(&models.User{}, &models.Class{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	testDB.Exec(`
		ALTER TABLE classes
		ADD CONSTRAINT chk_available_slots
		CHECK (available_slots >= 0 AND available_slots <= capacity)
	`)

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS bookings")
	testDB.Exec("DROP TABLE IF EXISTS classes")
	testDB.Exec("DROP TABLE IF EXISTS users")

	os.Exit(code)
}

func cleanTables() {
	testDB.Exec("DELETE FROM bookings")
	testDB.Exec("DELETE FROM classes")
	testDB.Exec("DELETE FROM users")
	testDB.Exec("ALTER SEQUENCE IF EXISTS classes_id_seq RESTART WITH 1")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
