package services

import (
	"context"
	"net/url"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fsdevblog/urlzipper/internal/models"
	"github.com/fsdevblog/urlzipper/internal/repositories"
	"github.com/fsdevblog/urlzipper/internal/shortid"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// maxGenerateAttempts предел повторных генераций при конфликте
// короткого идентификатора в хранилище.
const maxGenerateAttempts = 10

// batchConcurrencyLimit число одновременных вставок при пакетном сокращении.
const batchConcurrencyLimit = 8

// hostnameRegex в соответствии с `RFC 1123` за исключением - исключает корневые доменные имена (без зоны).
var hostnameRegex = regexp.MustCompile(`^([a-zA-Z0-9](-?[a-zA-Z0-9])*\.)+([a-zA-Z0-9](-?[a-zA-Z0-9])*)$`)

// CreateParams параметры сокращения ссылки.
type CreateParams struct {
	RawURL string
	// CustomAlias пользовательский алиас. Если задан, генерация
	// идентификатора не выполняется.
	CustomAlias *string
	// ExpiresIn срок жизни в секундах относительно текущего момента.
	ExpiresIn *int64
}

// BatchCreateResult результат сокращения одного элемента пакета.
type BatchCreateResult struct {
	LongURL string
	URL     *models.URL
}

// URLService сервис сокращения ссылок: валидация, выделение идентификатора,
// создание записи.
type URLService struct {
	urlRepo URLRepository
	logger  *logrus.Entry

	// generate и now подменяются в тестах.
	generate func(length int) (string, error)
	now      func() time.Time
}

func NewURLService(urlRepo URLRepository, logger *logrus.Logger) *URLService {
	return &URLService{
		urlRepo:  urlRepo,
		logger:   logger.WithField("module", "services/url"),
		generate: shortid.Generate,
		now:      time.Now,
	}
}

// Create сокращает ссылку. Возможные ошибки: ErrInvalidURL, ErrAliasTaken,
// ErrUnknown.
func (u *URLService) Create(ctx context.Context, params CreateParams) (*models.URL, error) {
	parsedURL, parseErr := validateURL(params.RawURL)
	if parseErr != nil {
		return nil, errors.Wrap(ErrInvalidURL, parseErr.Error())
	}

	var expiresAt *time.Time
	if params.ExpiresIn != nil && *params.ExpiresIn > 0 {
		t := u.now().Add(time.Duration(*params.ExpiresIn) * time.Second)
		expiresAt = &t
	}

	if params.CustomAlias != nil && *params.CustomAlias != "" {
		return u.createWithAlias(ctx, parsedURL.String(), *params.CustomAlias, expiresAt)
	}
	return u.createGenerated(ctx, parsedURL.String(), expiresAt)
}

// createWithAlias создает запись с пользовательским алиасом. Предварительная
// проверка занятости алиаса — оптимизация; настоящая гарантия — уникальный
// индекс хранилища, поэтому конфликт на вставке тоже отдается как ErrAliasTaken.
func (u *URLService) createWithAlias(ctx context.Context, rawURL, alias string, expiresAt *time.Time) (*models.URL, error) {
	if _, err := u.urlRepo.GetByCustomAlias(ctx, alias); err == nil {
		return nil, errors.Wrapf(ErrAliasTaken, "alias %s", alias)
	} else if !errors.Is(err, repositories.ErrNotFound) {
		u.logger.WithError(err).Errorf("failed to check alias %s", alias)
		return nil, ErrUnknown
	}

	sURL := models.URL{
		URL:             rawURL,
		ShortIdentifier: alias,
		CustomAlias:     &alias,
		ExpiresAt:       expiresAt,
	}
	if createErr := u.urlRepo.Create(ctx, &sURL); createErr != nil {
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			return nil, errors.Wrapf(ErrAliasTaken, "alias %s", alias)
		}
		u.logger.WithError(createErr).Errorf("failed to create record with alias %s", alias)
		return nil, ErrUnknown
	}
	return &sURL, nil
}

// createGenerated создает запись со сгенерированным идентификатором,
// повторяя генерацию при конфликте ключа ограниченное число раз.
func (u *URLService) createGenerated(ctx context.Context, rawURL string, expiresAt *time.Time) (*models.URL, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		shortID, genErr := u.generate(models.ShortIdentifierLength)
		if genErr != nil {
			u.logger.WithError(genErr).Error("failed to generate short identifier")
			return nil, ErrUnknown
		}

		sURL := models.URL{
			URL:             rawURL,
			ShortIdentifier: shortID,
			ExpiresAt:       expiresAt,
		}
		createErr := u.urlRepo.Create(ctx, &sURL)
		if createErr == nil {
			return &sURL, nil
		}
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			continue
		}
		u.logger.WithError(createErr).Errorf("failed to create record for url %s", rawURL)
		return nil, ErrUnknown
	}
	return nil, errors.Wrap(ErrUnknown, "generateShortID loop limit for url")
}

// BatchCreate сокращает пакет ссылок. Результаты возвращаются в порядке входа.
// Ошибка любого элемента отменяет весь пакет (частичный успех не
// поддерживается). Алиасы и сроки жизни для пакетных элементов не задаются.
func (u *URLService) BatchCreate(ctx context.Context, rawURLs []string) ([]BatchCreateResult, error) {
	if len(rawURLs) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "empty urls list")
	}

	results := make([]BatchCreateResult, len(rawURLs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrencyLimit)

	for i, rawURL := range rawURLs {
		g.Go(func() error {
			sURL, err := u.createGenerated(gCtx, rawURL, nil)
			if err != nil {
				return err
			}
			results[i] = BatchCreateResult{LongURL: rawURL, URL: sURL}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// validateURL проверяет, является ли строка корректным абсолютным URL.
func validateURL(rawURL string) (*url.URL, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)

	if err != nil {
		return nil, errors.New("invalid URL format")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, errors.New("URL must have http or https scheme")
	}

	if parsedURL.Host == "" {
		return nil, errors.New("URL must have a host")
	}

	if parsedURL.Hostname() != "localhost" && !hostnameRegex.MatchString(parsedURL.Hostname()) {
		return nil, errors.New("invalid hostname")
	}

	return parsedURL, nil
}
