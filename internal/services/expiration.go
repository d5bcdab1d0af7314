package services

import (
	"context"
	"time"

	"github.com/fsdevblog/urlzipper/internal/cache"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ExpirationService административный доступ к ключам кеша:
// запись произвольного ключа с TTL и его чтение.
type ExpirationService struct {
	cache  Cache // nil, если кеш не сконфигурирован
	logger *logrus.Entry
}

func NewExpirationService(c Cache, logger *logrus.Logger) *ExpirationService {
	return &ExpirationService{
		cache:  c,
		logger: logger.WithField("module", "services/expiration"),
	}
}

// Set записывает ключ в кеш со сроком жизни ttlSeconds.
func (e *ExpirationService) Set(ctx context.Context, key string, value string, ttlSeconds int64) error {
	if e.cache == nil {
		return ErrCacheDisabled
	}
	if err := e.cache.Set(ctx, key, value, time.Duration(ttlSeconds)*time.Second); err != nil {
		e.logger.WithError(err).Errorf("failed to set key `%s`", key)
		return ErrUnknown
	}
	return nil
}

// Get возвращает значение ключа. Отсутствие ключа — ErrRecordNotFound.
func (e *ExpirationService) Get(ctx context.Context, key string) (string, error) {
	if e.cache == nil {
		return "", ErrCacheDisabled
	}
	value, err := e.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return "", errors.Wrapf(ErrRecordNotFound, "key %s not found", key)
		}
		e.logger.WithError(err).Errorf("failed to get key `%s`", key)
		return "", ErrUnknown
	}
	return value, nil
}
