package sql

import (
	"context"

	"github.com/fsdevblog/urlzipper/internal/models"
	"github.com/fsdevblog/urlzipper/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// URLRepo репозиторий коротких ссылок поверх gorm.
type URLRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewURLRepo(db *gorm.DB, logger *logrus.Logger) *URLRepo {
	return &URLRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/url"),
	}
}

// Create создает запись короткой ссылки. Уникальность ShortIdentifier и
// CustomAlias гарантируют индексы БД; конфликт возвращается
// как repositories.ErrDuplicateKey.
func (u *URLRepo) Create(ctx context.Context, sURL *models.URL) error {
	if err := u.db.WithContext(ctx).Create(sURL).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return repositories.ErrDuplicateKey
		}
		u.logger.WithError(err).Errorf("failed to create record %+v", *sURL)
		return convertErrorType(err)
	}
	return nil
}

func (u *URLRepo) GetByShortIdentifier(ctx context.Context, shortID string) (*models.URL, error) {
	var sURL models.URL
	err := u.db.WithContext(ctx).Where("short_identifier = ?", shortID).First(&sURL).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		u.logger.WithError(err).Errorf("failed to get record by short identifier %s", shortID)
		return nil, convertErrorType(err)
	}
	return &sURL, nil
}

func (u *URLRepo) GetByCustomAlias(ctx context.Context, alias string) (*models.URL, error) {
	var sURL models.URL
	err := u.db.WithContext(ctx).Where("custom_alias = ?", alias).First(&sURL).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		u.logger.WithError(err).Errorf("failed to get record by custom alias %s", alias)
		return nil, convertErrorType(err)
	}
	return &sURL, nil
}

// RegisterVisit атомарно фиксирует переход: инкремент clicks и счетчика
// реферера выполняются относительными выражениями в одной транзакции,
// поэтому конкурентные переходы по одному идентификатору не теряют
// обновлений. Инвариант clicks == sum(referrer_stats.count) сохраняется.
func (u *URLRepo) RegisterVisit(ctx context.Context, shortID string, referrer string) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.URL{}).
			Where("short_identifier = ?", shortID).
			UpdateColumn("clicks", gorm.Expr("clicks + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "short_identifier"}, {Name: "referrer"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"count": gorm.Expr("count + 1"),
			}),
		}).Create(&models.ReferrerStat{
			ShortIdentifier: shortID,
			Referrer:        referrer,
			Count:           1,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repositories.ErrNotFound
		}
		u.logger.WithError(err).Errorf("failed to register visit for %s", shortID)
		return convertErrorType(err)
	}
	return nil
}

// GetReferrerStats возвращает распределение переходов по реферерам
// в виде плоской мапы referrer -> count.
func (u *URLRepo) GetReferrerStats(ctx context.Context, shortID string) (map[string]uint64, error) {
	var stats []models.ReferrerStat
	err := u.db.WithContext(ctx).Where("short_identifier = ?", shortID).Find(&stats).Error
	if err != nil {
		u.logger.WithError(err).Errorf("failed to get referrer stats for %s", shortID)
		return nil, convertErrorType(err)
	}

	result := make(map[string]uint64, len(stats))
	for _, s := range stats {
		result[s.Referrer] = s.Count
	}
	return result, nil
}
