package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fsdevblog/urlzipper/internal/cache"
	"github.com/fsdevblog/urlzipper/internal/models"
	"github.com/fsdevblog/urlzipper/internal/repositories/memstore"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCache реализация Cache для тестов.
type stubCache struct {
	mu     sync.Mutex
	data   map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newStubCache() *stubCache {
	return &stubCache{
		data: make(map[string]string),
		ttls: make(map[string]time.Duration),
	}
}

func (s *stubCache) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.getErr != nil {
		return "", s.getErr
	}
	val, ok := s.data[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return val, nil
}

func (s *stubCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	s.ttls[key] = ttl
	return nil
}

func TestRedirectService_Resolve(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewURLRepo()
	service := NewRedirectService(repo, nil, time.Hour, logrus.New())

	require.NoError(t, repo.Create(ctx, &models.URL{URL: "https://test.com/target", ShortIdentifier: "abc12345"}))

	t.Run("not found", func(t *testing.T) {
		_, err := service.Resolve(ctx, "missing1", "")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})

	t.Run("resolves and registers visit", func(t *testing.T) {
		target, err := service.Resolve(ctx, "abc12345", "")
		require.NoError(t, err)
		assert.Equal(t, "https://test.com/target", target)

		sURL, getErr := repo.GetByShortIdentifier(ctx, "abc12345")
		require.NoError(t, getErr)
		assert.Equal(t, uint64(1), sURL.Clicks)

		stats, statsErr := repo.GetReferrerStats(ctx, "abc12345")
		require.NoError(t, statsErr)
		// пустой реферер фиксируется как "direct"
		assert.Equal(t, map[string]uint64{models.ReferrerDirect: 1}, stats)
	})

	t.Run("records referrer", func(t *testing.T) {
		_, err := service.Resolve(ctx, "abc12345", "https://google.com")
		require.NoError(t, err)

		stats, statsErr := repo.GetReferrerStats(ctx, "abc12345")
		require.NoError(t, statsErr)
		assert.Equal(t, uint64(1), stats["https://google.com"])
	})
}

func TestRedirectService_Resolve_Expiration(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewURLRepo()
	service := NewRedirectService(repo, nil, time.Hour, logrus.New())

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	expiresAt := now.Add(time.Hour)
	require.NoError(t, repo.Create(ctx, &models.URL{
		URL:             "https://test.com/ttl",
		ShortIdentifier: "ttl12345",
		ExpiresAt:       &expiresAt,
	}))

	t.Run("before expiration", func(t *testing.T) {
		target, err := service.Resolve(ctx, "ttl12345", "")
		require.NoError(t, err)
		assert.Equal(t, "https://test.com/ttl", target)
	})

	t.Run("after expiration", func(t *testing.T) {
		// переводим часы за срок жизни записи
		service.now = func() time.Time { return now.Add(time.Hour + time.Second) }

		_, err := service.Resolve(ctx, "ttl12345", "")
		assert.ErrorIs(t, err, ErrExpired)

		// истекший редирект не фиксирует переход
		sURL, getErr := repo.GetByShortIdentifier(ctx, "ttl12345")
		require.NoError(t, getErr)
		assert.Equal(t, uint64(1), sURL.Clicks)
	})
}

func TestRedirectService_Resolve_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit bypasses store", func(t *testing.T) {
		repo := memstore.NewURLRepo()
		c := newStubCache()
		// записи нет в хранилище — успех возможен только через кеш
		c.data["cached12"] = "https://cached.com"

		service := NewRedirectService(repo, c, time.Hour, logrus.New())

		target, err := service.Resolve(ctx, "cached12", "")
		require.NoError(t, err)
		assert.Equal(t, "https://cached.com", target)
	})

	t.Run("cache hit skips expiration check and stats", func(t *testing.T) {
		repo := memstore.NewURLRepo()
		c := newStubCache()
		c.data["ttl12345"] = "https://cached.com/ttl"

		service := NewRedirectService(repo, c, time.Hour, logrus.New())

		expiresAt := time.Now().Add(-time.Hour)
		require.NoError(t, repo.Create(ctx, &models.URL{
			URL:             "https://test.com/ttl",
			ShortIdentifier: "ttl12345",
			ExpiresAt:       &expiresAt,
		}))

		// известный компромисс: попадание в кеш не проверяет срок жизни
		// и не инкрементирует статистику
		target, err := service.Resolve(ctx, "ttl12345", "")
		require.NoError(t, err)
		assert.Equal(t, "https://cached.com/ttl", target)

		sURL, getErr := repo.GetByShortIdentifier(ctx, "ttl12345")
		require.NoError(t, getErr)
		assert.Zero(t, sURL.Clicks)
	})

	t.Run("cache read error falls back to store", func(t *testing.T) {
		repo := memstore.NewURLRepo()
		c := newStubCache()
		c.getErr = errors.New("connection refused")

		service := NewRedirectService(repo, c, time.Hour, logrus.New())

		require.NoError(t, repo.Create(ctx, &models.URL{URL: "https://test.com/real", ShortIdentifier: "real1234"}))

		target, err := service.Resolve(ctx, "real1234", "")
		require.NoError(t, err)
		assert.Equal(t, "https://test.com/real", target)
	})

	t.Run("populates cache after store path", func(t *testing.T) {
		repo := memstore.NewURLRepo()
		c := newStubCache()

		service := NewRedirectService(repo, c, 30*time.Minute, logrus.New())

		require.NoError(t, repo.Create(ctx, &models.URL{URL: "https://test.com/warm", ShortIdentifier: "warm1234"}))

		_, err := service.Resolve(ctx, "warm1234", "")
		require.NoError(t, err)

		assert.Equal(t, "https://test.com/warm", c.data["warm1234"])
		assert.Equal(t, 30*time.Minute, c.ttls["warm1234"])
	})
}

// TestRedirectService_Resolve_Concurrent N конкурентных редиректов дают
// ровно clicks+N; clicks == sum(referrers).
func TestRedirectService_Resolve_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := memstore.NewURLRepo()
	service := NewRedirectService(repo, nil, time.Hour, logrus.New())

	require.NoError(t, repo.Create(ctx, &models.URL{URL: "https://test.com", ShortIdentifier: "abc12345"}))

	const n = 100
	referrers := []string{"", "https://google.com", "https://facebook.com"}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()
			_, err := service.Resolve(ctx, "abc12345", referrers[i%len(referrers)])
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sURL, err := repo.GetByShortIdentifier(ctx, "abc12345")
	require.NoError(t, err)
	assert.Equal(t, uint64(n), sURL.Clicks)

	stats, statsErr := repo.GetReferrerStats(ctx, "abc12345")
	require.NoError(t, statsErr)

	var sum uint64
	for _, count := range stats {
		sum += count
	}
	assert.Equal(t, sURL.Clicks, sum)
}
