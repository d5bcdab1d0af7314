package db

import (
	"errors"
	"fmt"
)

type StorageType string

const (
	StorageTypePostgres StorageType = "postgres"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypeInMemory StorageType = "inMemory"
)

type FactoryConfig struct {
	StorageType  StorageType
	PostgresDSN  *string
	SQLiteDBPath *string
}

// NewConnectionFactory возвращает подключение к выбранному хранилищу.
// Для inMemory подключения не существует — возвращается nil.
func NewConnectionFactory(config FactoryConfig) (any, error) {
	switch config.StorageType {
	case StorageTypePostgres:
		if config.PostgresDSN == nil {
			return nil, errors.New("postgres dsn is empty")
		}
		return NewPostgres(*config.PostgresDSN)
	case StorageTypeSQLite:
		if config.SQLiteDBPath == nil {
			return nil, errors.New("sqlite db path is empty")
		}
		return NewSQLite(*config.SQLiteDBPath)
	case StorageTypeInMemory:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}
