package services

import (
	"context"
	"time"

	"github.com/fsdevblog/urlzipper/internal/cache"
	"github.com/fsdevblog/urlzipper/internal/models"
	"github.com/fsdevblog/urlzipper/internal/repositories"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RedirectService разрешает короткий идентификатор в целевой URL,
// проверяет срок жизни и фиксирует переход.
type RedirectService struct {
	urlRepo  URLRepository
	cache    Cache // nil, если кеш не сконфигурирован
	cacheTTL time.Duration
	logger   *logrus.Entry

	// now подменяется в тестах для проверки истечения срока.
	now func() time.Time
}

func NewRedirectService(urlRepo URLRepository, c Cache, cacheTTL time.Duration, logger *logrus.Logger) *RedirectService {
	return &RedirectService{
		urlRepo:  urlRepo,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger.WithField("module", "services/redirect"),
		now:      time.Now,
	}
}

// Resolve возвращает целевой URL для идентификатора shortID.
//
// Быстрый путь: попадание в кеш возвращает цель сразу, без проверки срока
// жизни и без учета статистики — известный компромисс консистентности на
// период TTL. Ошибка чтения кеша не роняет редирект, а деградирует до
// обращения к основному хранилищу.
//
// Медленный путь: чтение записи, проверка срока, атомарная фиксация перехода
// (clicks + счетчик реферера referrer, либо "direct" при его отсутствии),
// прогрев кеша. Возможные ошибки: ErrRecordNotFound, ErrExpired, ErrUnknown.
func (r *RedirectService) Resolve(ctx context.Context, shortID string, referrer string) (string, error) {
	if r.cache != nil {
		target, cacheErr := r.cache.Get(ctx, shortID)
		if cacheErr == nil {
			return target, nil
		}
		if !errors.Is(cacheErr, cache.ErrCacheMiss) {
			r.logger.WithError(cacheErr).Warnf("cache read failed for %s, falling back to store", shortID)
		}
	}

	sURL, err := r.urlRepo.GetByShortIdentifier(ctx, shortID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", errors.Wrapf(ErrRecordNotFound, "id %s not found", shortID)
		}
		r.logger.WithError(err).Errorf("failed to get record by short identifier %s", shortID)
		return "", ErrUnknown
	}

	if sURL.IsExpired(r.now()) {
		return "", errors.Wrapf(ErrExpired, "id %s", shortID)
	}

	if referrer == "" {
		referrer = models.ReferrerDirect
	}
	if visitErr := r.urlRepo.RegisterVisit(ctx, shortID, referrer); visitErr != nil {
		r.logger.WithError(visitErr).Errorf("failed to register visit for %s", shortID)
		return "", ErrUnknown
	}

	if r.cache != nil {
		// Прогрев кеша best-effort; его ошибка не влияет на редирект.
		if setErr := r.cache.Set(ctx, shortID, sURL.URL, r.cacheTTL); setErr != nil {
			r.logger.WithError(setErr).Warnf("cache write failed for %s", shortID)
		}
	}

	return sURL.URL, nil
}
