package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "eon-tracker.com/eon-tracker/internal/models"
)

// NewDatabaseClient opens the sqlite store and applies the schema. Migration
// is idempotent, so reopening an existing file keeps its rows and ids. A
// broken store is fatal here, before serving begins.
func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(&model.Task{}, &model.TaskLog{}, &model.Drop{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
