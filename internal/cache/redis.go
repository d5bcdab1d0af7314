// Package cache реализует волатильный TTL-кеш поверх Redis.
//
// Кеш не является источником истины: он хранит производную копию
// shortID -> longUrl и используется только быстрым путем редиректа и
// административными ручками /set-expiration, /get-expiration.
package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss ключ отсутствует в кеше.
var ErrCacheMiss = errors.New("[cache]: key not found")

// Redis обертка над go-redis клиентом.
type Redis struct {
	client *redis.Client
}

// NewRedis подключается к Redis и проверяет соединение пингом.
func NewRedis(ctx context.Context, addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "failed to ping redis at %s", addr)
	}
	return &Redis{client: client}, nil
}

// Get возвращает значение ключа. Отсутствие ключа — ErrCacheMiss,
// все прочие ошибки транспортные.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", errors.Wrapf(err, "failed to get key `%s`", key)
	}
	return val, nil
}

// Set записывает ключ с TTL. Нулевой ttl означает ключ без срока жизни.
func (r *Redis) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to set key `%s`", key)
	}
	return nil
}

func (r *Redis) Close() error {
	return errors.Wrap(r.client.Close(), "failed to close redis client")
}
