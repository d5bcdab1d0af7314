package memstore

import (
	"context"
	"sync"

	"github.com/goccy/go-json"

	"github.com/fsdevblog/urlzipper/internal/models"
	"github.com/fsdevblog/urlzipper/internal/repositories"
	"github.com/pkg/errors"
)

// record внутреннее представление записи вместе с распределением рефереров.
type record struct {
	URL       models.URL        `json:"url"`
	Referrers map[string]uint64 `json:"referrers"`
}

// URLRepo репозиторий коротких ссылок в памяти.
type URLRepo struct {
	mu      sync.RWMutex
	data    map[string][]byte // shortID -> сериализованная record
	aliases map[string]string // customAlias -> shortID
	nextID  uint
}

func NewURLRepo() *URLRepo {
	return &URLRepo{
		data:    make(map[string][]byte),
		aliases: make(map[string]string),
	}
}

func (u *URLRepo) Create(_ context.Context, sURL *models.URL) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.data[sURL.ShortIdentifier]; ok {
		return repositories.ErrDuplicateKey
	}
	if sURL.CustomAlias != nil {
		if _, ok := u.aliases[*sURL.CustomAlias]; ok {
			return repositories.ErrDuplicateKey
		}
	}

	u.nextID++
	sURL.ID = u.nextID

	if err := u.set(sURL.ShortIdentifier, &record{
		URL:       *sURL,
		Referrers: make(map[string]uint64),
	}); err != nil {
		return err
	}
	if sURL.CustomAlias != nil {
		u.aliases[*sURL.CustomAlias] = sURL.ShortIdentifier
	}
	return nil
}

func (u *URLRepo) GetByShortIdentifier(_ context.Context, shortID string) (*models.URL, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	rec, err := u.get(shortID)
	if err != nil {
		return nil, err
	}
	return &rec.URL, nil
}

func (u *URLRepo) GetByCustomAlias(_ context.Context, alias string) (*models.URL, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	shortID, ok := u.aliases[alias]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	rec, err := u.get(shortID)
	if err != nil {
		return nil, err
	}
	return &rec.URL, nil
}

// RegisterVisit фиксирует переход. Инкременты clicks и счетчика реферера
// выполняются под общим мьютексом, конкурентные переходы не теряют обновлений.
func (u *URLRepo) RegisterVisit(_ context.Context, shortID string, referrer string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	rec, err := u.get(shortID)
	if err != nil {
		return err
	}

	rec.URL.Clicks++
	rec.Referrers[referrer]++

	return u.set(shortID, rec)
}

func (u *URLRepo) GetReferrerStats(_ context.Context, shortID string) (map[string]uint64, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	rec, err := u.get(shortID)
	if err != nil {
		return nil, err
	}

	result := make(map[string]uint64, len(rec.Referrers))
	for ref, count := range rec.Referrers {
		result[ref] = count
	}
	return result, nil
}

// get десериализует запись по ключу. Вызывать под мьютексом.
func (u *URLRepo) get(shortID string) (*record, error) {
	raw, ok := u.data[shortID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, errors.Wrapf(repositories.ErrUnknown, "unmarshal record `%s`: %s", shortID, err.Error())
	}
	return &rec, nil
}

// set сериализует и сохраняет запись. Вызывать под мьютексом.
func (u *URLRepo) set(shortID string, rec *record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(repositories.ErrUnknown, "marshal record `%s`: %s", shortID, err.Error())
	}
	u.data[shortID] = raw
	return nil
}
