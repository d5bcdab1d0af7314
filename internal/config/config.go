package config

import (
	"flag"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	// Адрес на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующего сокращенного URL
	BaseURL *url.URL `env:"BASE_URL"`
	// DSN PostgreSQL. Если задан — хранилище postgres.
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь к файлу SQLite. Если DSN пуст, а путь задан — хранилище sqlite,
	// иначе хранилище в памяти.
	SQLiteDBPath string `env:"SQLITE_DB_PATH"`
	// Адрес Redis. Пустое значение отключает кеш редиректов.
	RedisAddr string `env:"REDIS_ADDR"`
	// Срок жизни записей кеша редиректов.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	loadsFlags(&flagsConfig)

	return mergeConfig(&envConfig, &flagsConfig), nil
}

// MustLoadConfig вызывает панику если произошла ошибка.
func MustLoadConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

// loadsFlags парсит флаги командной строки.
func loadsFlags(flagsConfig *Config) {
	flag.StringVar(&flagsConfig.ServerAddress, "a", "localhost:8080", "Адрес сервера")
	flag.StringVar(&flagsConfig.DatabaseDSN, "d", "", "DSN PostgreSQL")
	flag.StringVar(&flagsConfig.SQLiteDBPath, "f", "", "Путь к файлу SQLite")
	flag.StringVar(&flagsConfig.RedisAddr, "r", "", "Адрес Redis (host:port)")

	bDesc := "Базовый адрес результирующего сокращенного URL (по умолчанию Scheme://Host запущенного сервера)"
	flag.Func("b", bDesc, func(rawURL string) error {
		parsedURL, err := url.ParseRequestURI(rawURL)
		if err != nil {
			return errors.Wrap(err, "failed to parse base url")
		}

		// создаем новый инстанс, отсекая тем самым Path и Query если они заданы в базовом урле.
		flagsConfig.BaseURL = &url.URL{
			Scheme: parsedURL.Scheme,
			Host:   parsedURL.Host,
		}
		return nil
	})

	flag.Parse()
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := Config{
		ServerAddress: defaultIfBlank[string](envConfig.ServerAddress, flagsConfig.ServerAddress),
		BaseURL:       defaultIfBlank[*url.URL](envConfig.BaseURL, flagsConfig.BaseURL),
		DatabaseDSN:   defaultIfBlank[string](envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		SQLiteDBPath:  defaultIfBlank[string](envConfig.SQLiteDBPath, flagsConfig.SQLiteDBPath),
		RedisAddr:     defaultIfBlank[string](envConfig.RedisAddr, flagsConfig.RedisAddr),
		CacheTTL:      envConfig.CacheTTL,
	}
	if conf.CacheTTL == 0 {
		conf.CacheTTL = time.Hour
	}
	return &conf
}

func defaultIfBlank[T any](value T, defaultValue T) T {
	if v, ok := any(value).(string); ok && v == "" {
		return defaultValue
	}
	if v, ok := any(value).(*url.URL); ok && v == nil {
		return defaultValue
	}
	return value
}
