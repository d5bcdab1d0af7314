package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fsdevblog/urlzipper/internal/cache"
	"github.com/fsdevblog/urlzipper/internal/config"
	"github.com/fsdevblog/urlzipper/internal/controllers"
	"github.com/fsdevblog/urlzipper/internal/db"
	"github.com/fsdevblog/urlzipper/internal/logs"
	"github.com/fsdevblog/urlzipper/internal/qr"
	"github.com/fsdevblog/urlzipper/internal/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config     config.Config
	dbConn     any
	redisCache *cache.Redis
	dbServices *services.Services
	Logger     *logrus.Logger
}

func New(conf config.Config) (*App, error) {
	logger := logs.New(os.Stdout)

	ctx := context.Background()

	dbConn, connErr := db.NewConnectionFactory(db.FactoryConfig{
		StorageType:  whatIsDBStorageType(&conf),
		PostgresDSN:  strPtrOrNil(conf.DatabaseDSN),
		SQLiteDBPath: strPtrOrNil(conf.SQLiteDBPath),
	})
	if connErr != nil {
		return nil, fmt.Errorf("init storage: %w", connErr)
	}

	// Кеш best-effort: недоступный Redis не мешает запуску,
	// сервис работает только с основным хранилищем.
	var redisCache *cache.Redis
	if conf.RedisAddr != "" {
		var cacheErr error
		redisCache, cacheErr = cache.NewRedis(ctx, conf.RedisAddr)
		if cacheErr != nil {
			logger.WithError(cacheErr).Warn("redis is unavailable, running without cache")
			redisCache = nil
		}
	}
	var c services.Cache
	if redisCache != nil {
		c = redisCache
	}

	dbServices, servicesErr := services.Factory(services.FactoryParams{
		Conn:     dbConn,
		Type:     whatIsServiceType(&conf),
		Cache:    c,
		CacheTTL: conf.CacheTTL,
		Logger:   logger,
	})
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     conf,
		dbConn:     dbConn,
		redisCache: redisCache,
		dbServices: dbServices,
		Logger:     logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер и блокируется до SIGINT/SIGTERM
// или фатальной ошибки сервера.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := controllers.SetupRouter(controllers.RouterParams{
		URLService:        a.dbServices.URLService,
		RedirectService:   a.dbServices.RedirectService,
		AnalyticsService:  a.dbServices.AnalyticsService,
		ExpirationService: a.dbServices.ExpirationService,
		QRGenerator:       qr.NewGenerator(),
		BaseURL:           a.config.BaseURL,
		Logger:            a.Logger,
	})

	server := &http.Server{
		Addr:    a.config.ServerAddress,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("server error")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		a.Logger.WithError(shutdownErr).Error("server shutdown error")
	}

	a.close()
	return serverErr
}

// close освобождает внешние подключения в обратном порядке инициализации.
func (a *App) close() {
	if a.redisCache != nil {
		if err := a.redisCache.Close(); err != nil {
			a.Logger.WithError(err).Error("failed to close redis client")
		}
	}
	if gormDB, ok := a.dbConn.(*gorm.DB); ok {
		sqlDB, err := gormDB.DB()
		if err == nil {
			if closeErr := sqlDB.Close(); closeErr != nil {
				a.Logger.WithError(closeErr).Error("failed to close database connection")
			}
		}
	}
}

func whatIsDBStorageType(conf *config.Config) db.StorageType {
	if conf.DatabaseDSN != "" {
		return db.StorageTypePostgres
	}
	if conf.SQLiteDBPath != "" {
		return db.StorageTypeSQLite
	}
	return db.StorageTypeInMemory
}

func whatIsServiceType(conf *config.Config) services.ServiceType {
	if conf.DatabaseDSN != "" || conf.SQLiteDBPath != "" {
		return services.ServiceTypeSQL
	}
	return services.ServiceTypeInMemory
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
