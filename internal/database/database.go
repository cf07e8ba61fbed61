package database

import (
	"fmt"
	"log"
	"time"

	"medication-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// inMemoryDSN keeps the query store in process memory; nothing is written to disk.
const inMemoryDSN = "file::memory:"

type DB struct {
	*gorm.DB
}

// New opens the in-memory SQLite store used by the sqlite dataset backend.
// The pool is pinned to one connection because every SQLite in-memory
// connection owns a separate database.
func New(verbose bool) (*DB, error) {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(inMemoryDSN), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.ClaimLine{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_claim_lines_pair ON claim_lines(treatment_place, group_provider)",
		"CREATE INDEX IF NOT EXISTS idx_claim_lines_group_provider ON claim_lines(group_provider)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			log.Printf("Failed to create index: %s, error: %v", query, err)
		}
	}

	return nil
}

// Initialize opens the store and prepares the claim_lines table
func Initialize(verbose bool) (*DB, error) {
	db, err := New(verbose)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := db.CreateIndexes(); err != nil {
		log.Printf("Warning: failed to create some indexes: %v", err)
	}

	log.Println("Database initialized successfully")

	return db, nil
}
