package controllers

import (
	"context"

	"github.com/fsdevblog/urlzipper/internal/models"
	"github.com/fsdevblog/urlzipper/internal/services"
)

// URLShortener сервис сокращения ссылок.
type URLShortener interface {
	Create(ctx context.Context, params services.CreateParams) (*models.URL, error)
	BatchCreate(ctx context.Context, rawURLs []string) ([]services.BatchCreateResult, error)
}

// Redirector разрешает короткий идентификатор в целевой URL
// с фиксацией перехода.
type Redirector interface {
	Resolve(ctx context.Context, shortID string, referrer string) (string, error)
}

// AnalyticsProvider отдает статистику переходов записи.
type AnalyticsProvider interface {
	Stats(ctx context.Context, shortID string) (*services.Stats, error)
}

// ExpirationStore административный доступ к ключам кеша.
type ExpirationStore interface {
	Set(ctx context.Context, key string, value string, ttlSeconds int64) error
	Get(ctx context.Context, key string) (string, error)
}

// QRGenerator кодирует строку в QR data URL.
type QRGenerator interface {
	DataURL(content string) (string, error)
}
