package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewPostgres создает подключение к PostgreSQL по строке DSN
// и прогоняет миграцию схемы.
func NewPostgres(dsn string) (*gorm.DB, error) {
	conn, connErr := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if connErr != nil {
		return nil, fmt.Errorf("connect database error: %w", connErr)
	}
	if migrateErr := migrate(conn); migrateErr != nil {
		return nil, fmt.Errorf("migrate database error: %w", migrateErr)
	}
	return conn, nil
}
