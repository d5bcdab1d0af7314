package services

import (
	"context"

	"github.com/fsdevblog/urlzipper/internal/repositories"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Stats агрегированная статистика переходов по записи.
type Stats struct {
	Clicks    uint64            `json:"clicks"`
	Referrers map[string]uint64 `json:"referrers"`
}

// AnalyticsService проекция статистики записи только для чтения.
// Читает исключительно основное хранилище; кеш редиректов не используется.
type AnalyticsService struct {
	urlRepo URLRepository
	logger  *logrus.Entry
}

func NewAnalyticsService(urlRepo URLRepository, logger *logrus.Logger) *AnalyticsService {
	return &AnalyticsService{
		urlRepo: urlRepo,
		logger:  logger.WithField("module", "services/analytics"),
	}
}

// Stats возвращает счетчик кликов и распределение рефереров записи.
// Истекшие записи остаются доступными для аналитики.
func (a *AnalyticsService) Stats(ctx context.Context, shortID string) (*Stats, error) {
	sURL, err := a.urlRepo.GetByShortIdentifier(ctx, shortID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "id %s not found", shortID)
		}
		a.logger.WithError(err).Errorf("failed to get record by short identifier %s", shortID)
		return nil, ErrUnknown
	}

	referrers, statsErr := a.urlRepo.GetReferrerStats(ctx, shortID)
	if statsErr != nil {
		a.logger.WithError(statsErr).Errorf("failed to get referrer stats for %s", shortID)
		return nil, ErrUnknown
	}

	return &Stats{
		Clicks:    sURL.Clicks,
		Referrers: referrers,
	}, nil
}
