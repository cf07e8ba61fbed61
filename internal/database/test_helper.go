package database

import (
	"testing"

	"medication-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{DB: db}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM claim_lines").Error; err != nil {
		t.Logf("failed to cleanup table claim_lines: %v", err)
	}
}

// SeedClaimLines inserts lines directly, bypassing any repository
func SeedClaimLines(t *testing.T, db *DB, lines []models.ClaimLine) {
	t.Helper()

	if len(lines) == 0 {
		return
	}
	if err := db.Create(&lines).Error; err != nil {
		t.Fatalf("failed to seed claim lines: %v", err)
	}
}
