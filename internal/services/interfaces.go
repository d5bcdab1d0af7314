package services

import (
	"context"
	"time"

	"github.com/fsdevblog/urlzipper/internal/models"
)

// URLRepository описывает репозиторий для URL.
type URLRepository interface {
	// Create создает запись в хранилище. Конфликт уникальности короткого
	// идентификатора или алиаса возвращается как repositories.ErrDuplicateKey.
	Create(ctx context.Context, sURL *models.URL) error
	// GetByShortIdentifier находит запись по короткому идентификатору.
	GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error)
	// GetByCustomAlias находит запись по пользовательскому алиасу.
	GetByCustomAlias(ctx context.Context, alias string) (*models.URL, error)
	// RegisterVisit атомарно инкрементирует clicks и счетчик реферера.
	RegisterVisit(ctx context.Context, shortID string, referrer string) error
	// GetReferrerStats возвращает распределение переходов referrer -> count.
	GetReferrerStats(ctx context.Context, shortID string) (map[string]uint64, error)
}

// Cache описывает волатильный TTL-кеш. Промах чтения — cache.ErrCacheMiss.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
