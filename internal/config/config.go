// Package config предоставляет структуры и функции для парсинга и загрузки конфига.
package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	Upstream        `yaml:"upstream"`
	View            `yaml:"view"`
	RateLimit       `yaml:"rate_limit"`
	RedisConnection `yaml:"redis_connection"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":3001"`
	TimeoutHTTP time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

// Upstream структура для настройки внешнего источника датасета.
// Нулевой UpstreamTimeout означает, что запрос ограничен только контекстом.
type Upstream struct {
	UpstreamURL     string        `yaml:"url" env:"UPSTREAM_URL" env-default:"https://s3.amazonaws.com/roxiler.com/product_transaction.json"`
	UpstreamTimeout time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT"`
}

// View структура для настройки модели представления
type View struct {
	PageSize int    `yaml:"page_size" env:"VIEW_PAGE_SIZE" env-default:"5"`
	Location string `yaml:"location" env:"VIEW_LOCATION" env-default:"Local"`
}

// RateLimit структура для настройки глобального ограничителя запросов к /api
type RateLimit struct {
	RPS   float64 `yaml:"rps" env:"RATE_LIMIT_RPS" env-default:"20"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"40"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой AddressRedis отключает кеш снимка датасета.
type RedisConnection struct {
	AddressRedis string        `yaml:"address" env:"REDIS_ADDRESS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user" env:"REDIS_USER"`
	DB           int           `yaml:"db" env:"REDIS_DB"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeout"`
	TTL          time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"1h"`
}

// MustLoad загружает конфиг из файла CONFIG_PATH или, если переменная не задана,
// только из переменных окружения. Любая ошибка завершает процесс.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает конфиг из path (при пустом path используется только окружение) и валидирует его.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: file %s does not exist", op, path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// Validate проверяет значения, которые нельзя выразить тегами cleanenv.
func (c *Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.UpstreamURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid upstream url %q", c.UpstreamURL))
	}
	if c.UpstreamTimeout < 0 {
		errs = append(errs, fmt.Errorf("invalid upstream timeout %v: must not be negative", c.UpstreamTimeout))
	}
	if c.PageSize < 1 {
		errs = append(errs, fmt.Errorf("invalid page size %d: must be at least 1", c.PageSize))
	}
	if _, err := c.TimeLocation(); err != nil {
		errs = append(errs, fmt.Errorf("invalid view location %q: %w", c.Location, err))
	}
	if c.RPS <= 0 || c.Burst < 1 {
		errs = append(errs, fmt.Errorf("invalid rate limit %v/%d: rps and burst must be positive", c.RPS, c.Burst))
	}
	return errors.Join(errs...)
}

// TimeLocation возвращает локацию, в которой даты продаж переводятся в месяцы.
func (v View) TimeLocation() (*time.Location, error) {
	return time.LoadLocation(v.Location)
}

// CacheEnabled сообщает, настроен ли redis для кеша снимка датасета.
func (r RedisConnection) CacheEnabled() bool {
	return r.AddressRedis != ""
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Upstream:\n"+
			"  URL: %s\n"+
			"  Timeout: %s\n"+
			"View:\n"+
			"  PageSize: %d\n"+
			"  Location: %s\n"+
			"RateLimit:\n"+
			"  RPS: %v\n"+
			"  Burst: %d\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"  TTL: %s\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.UpstreamURL,
		c.UpstreamTimeout,
		c.PageSize,
		c.Location,
		c.RPS,
		c.Burst,
		c.AddressRedis,
		c.User,
		c.DB,
		c.TTL,
	)
}
