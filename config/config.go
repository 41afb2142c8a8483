// Package config loads process configuration from LOOKUP_* environment
// variables.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-lookup-cache/cache"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "LOOKUP_"

// Config is the full process configuration.
type Config struct {
	DatabaseDriver string `env:"DB_DRIVER" envDefault:"sqlite3"`
	DatabaseDSN    string `env:"DB_DSN" envDefault:"file:lookup.db?_foreign_keys=off"`

	CacheBackend   string        `env:"CACHE_BACKEND" envDefault:"memory"`
	CacheCapacity  int           `env:"CACHE_CAPACITY" envDefault:"10000"`
	CacheTTL       time.Duration `env:"CACHE_TTL" envDefault:"0s"`
	CacheKeyPrefix string        `env:"CACHE_KEY_PREFIX"`
	L1MaxCost      int64         `env:"CACHE_L1_MAX_COST" envDefault:"1000"`
	L1TTL          time.Duration `env:"CACHE_L1_TTL" envDefault:"5s"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	Threshold   int        `env:"PROMOTION_THRESHOLD" envDefault:"2"`
	RecordCodec string     `env:"RECORD_CODEC" envDefault:"json"`
	LogLevel    slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the process environment and
// validates it.
func Load() (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads the configuration from vars instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks every field against the values the process accepts.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DatabaseDriver, validation.Required, validation.In("sqlite3", "postgres")),
		validation.Field(&c.DatabaseDSN, validation.Required),
		validation.Field(&c.CacheBackend, validation.Required, validation.In(cache.BackendMemory, cache.BackendRedis, cache.BackendTiered)),
		validation.Field(&c.CacheCapacity, validation.Min(1)),
		validation.Field(&c.CacheTTL, validation.Min(time.Duration(0))),
		validation.Field(&c.L1MaxCost, validation.Min(int64(1))),
		validation.Field(&c.L1TTL, validation.When(c.CacheBackend == cache.BackendTiered, validation.Required, validation.Min(time.Duration(1)))),
		validation.Field(&c.RedisAddr, validation.When(c.CacheBackend != cache.BackendMemory, validation.Required)),
		validation.Field(&c.RedisDB, validation.Min(0)),
		validation.Field(&c.Threshold, validation.Min(1)),
		validation.Field(&c.RecordCodec, validation.In("json", "msgpack")),
	)
}

// Cache returns the fast store configuration.
func (c Config) Cache() cache.Config {
	cfg := cache.DefaultConfig()
	cfg.Backend = c.CacheBackend
	cfg.Capacity = c.CacheCapacity
	cfg.TTL = c.CacheTTL
	cfg.L1MaxCost = c.L1MaxCost
	cfg.L1TTL = c.L1TTL
	cfg.Redis = cache.RedisConfig{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}
	return cfg
}
