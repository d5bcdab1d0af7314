package services

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpirationService(t *testing.T) {
	ctx := context.Background()
	c := newStubCache()
	service := NewExpirationService(c, logrus.New())

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, service.Set(ctx, "user:123", `{"name":"John"}`, 3600))
		assert.Equal(t, time.Hour, c.ttls["user:123"])

		value, err := service.Get(ctx, "user:123")
		require.NoError(t, err)
		assert.Equal(t, `{"name":"John"}`, value)
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := service.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrRecordNotFound)
	})
}

func TestExpirationService_CacheDisabled(t *testing.T) {
	ctx := context.Background()
	service := NewExpirationService(nil, logrus.New())

	assert.ErrorIs(t, service.Set(ctx, "key", "value", 60), ErrCacheDisabled)

	_, err := service.Get(ctx, "key")
	assert.ErrorIs(t, err, ErrCacheDisabled)
}
