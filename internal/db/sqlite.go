package db

import (
	"fmt"

	"github.com/fsdevblog/urlzipper/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewSQLite(dbPath string) (*gorm.DB, error) {
	conn, connErr := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if connErr != nil {
		return nil, fmt.Errorf("connect database with path %s error: %w", dbPath, connErr)
	}
	if migrateErr := migrate(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return conn, nil
}

func migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&models.URL{}, &models.ReferrerStat{}); err != nil {
		return fmt.Errorf("migrating sql: %w", err)
	}
	return nil
}
