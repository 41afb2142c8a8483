package cache

import (
	"io"
	"time"

	"github.com/goliatone/go-lookup-cache/internal/cacheinfra"
)

// Backend names accepted by Config.Backend.
const (
	BackendMemory = cacheinfra.BackendMemory
	BackendRedis  = cacheinfra.BackendRedis
	BackendTiered = cacheinfra.BackendTiered
)

// Config exposes fast store configuration options for consumers of the cache package.
type Config struct {
	Backend            string
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
	EvictionInterval   time.Duration
	L1MaxCost          int64
	L1TTL              time.Duration
	Redis              RedisConfig
}

// RedisConfig addresses the Redis instance used by the redis and tiered backends.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// ClosableStore is a FastStore owning resources that must be released.
type ClosableStore interface {
	FastStore
	io.Closer
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewFastStore constructs the fast store selected by cfg.Backend.
func NewFastStore(cfg Config) (ClosableStore, error) {
	return cacheinfra.New(cfg.toInternal())
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Backend:            c.Backend,
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
		L1MaxCost:          c.L1MaxCost,
		L1TTL:              c.L1TTL,
		Redis: cacheinfra.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		},
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Backend:            cfg.Backend,
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
		L1MaxCost:          cfg.L1MaxCost,
		L1TTL:              cfg.L1TTL,
		Redis: RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
	}
}
