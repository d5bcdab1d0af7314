package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/urlzipper/internal/repositories/memstore"
	"github.com/fsdevblog/urlzipper/internal/repositories/sql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypeSQL      ServiceType = "sql"
	ServiceTypeInMemory ServiceType = "inMemory"
)

// Services сервисный слой приложения.
type Services struct {
	URLService        *URLService
	RedirectService   *RedirectService
	AnalyticsService  *AnalyticsService
	ExpirationService *ExpirationService
}

// FactoryParams параметры сборки сервисного слоя.
type FactoryParams struct {
	// Conn подключение к хранилищу: *gorm.DB для sql, nil для inMemory.
	Conn any
	Type ServiceType
	// Cache волатильный кеш; nil отключает быстрый путь редиректа
	// и административные ручки кеша.
	Cache    Cache
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func Factory(p FactoryParams) (*Services, error) {
	var urlRepo URLRepository
	switch p.Type {
	case ServiceTypeSQL:
		gormDB, ok := p.Conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		urlRepo = sql.NewURLRepo(gormDB, p.Logger)
	case ServiceTypeInMemory:
		urlRepo = memstore.NewURLRepo()
	default:
		return nil, fmt.Errorf("unknown service type: %s", p.Type)
	}

	return &Services{
		URLService:        NewURLService(urlRepo, p.Logger),
		RedirectService:   NewRedirectService(urlRepo, p.Cache, p.CacheTTL, p.Logger),
		AnalyticsService:  NewAnalyticsService(urlRepo, p.Logger),
		ExpirationService: NewExpirationService(p.Cache, p.Logger),
	}, nil
}
