package cacheinfra

import (
	"time"

	"github.com/viccon/sturdyc"
)

// Backend names accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendTiered = "tiered"
)

// Config holds the configuration for every fast store adapter.
type Config struct {
	// Backend selects the adapter: memory, redis or tiered.
	Backend string

	// Capacity defines the maximum number of entries the memory backend
	// can store. Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent access.
	// Higher values improve concurrency but increase memory overhead.
	// Must be greater than 0. Default: 256
	NumShards int

	// TTL is the lifetime of a promoted record. Zero keeps records until
	// they are deleted or evicted for capacity.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the memory backend reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often the memory backend checks for
	// expired entries. Zero value uses the default interval.
	EvictionInterval time.Duration

	// L1MaxCost bounds the ristretto L1 of the tiered backend. Each entry
	// costs 1.
	L1MaxCost int64

	// L1TTL is the lifetime of a tiered L1 copy, capped by TTL when TTL is
	// set. A delete made by another process clears only the shared L2, so
	// this process may serve the deleted entry for up to L1TTL. Must be
	// greater than 0 for the tiered backend. Default: 5s
	L1TTL time.Duration

	Redis RedisConfig
}

// RedisConfig addresses the Redis instance used by the redis and tiered
// backends.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Backend:            BackendMemory,
		Capacity:           10000,
		NumShards:          256,
		TTL:                0,
		EvictionPercentage: 10,
		EvictionInterval:   0, // Use default
		L1MaxCost:          1000,
		L1TTL:              5 * time.Second,
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
	}
}

// neverExpire stands in for a zero TTL on backends that require one.
const neverExpire = 100 * 365 * 24 * time.Hour

func (c Config) effectiveTTL() time.Duration {
	if c.TTL <= 0 {
		return neverExpire
	}
	return c.TTL
}

// l1TTL is the L1 lifetime of the tiered backend: L1TTL, or TTL when that
// is shorter.
func (c Config) l1TTL() time.Duration {
	if c.TTL > 0 && c.TTL < c.L1TTL {
		return c.TTL
	}
	return c.L1TTL
}

// ToSturdycOptions converts the Config to sturdyc.Option slice.
// Capacity, NumShards, TTL and EvictionPercentage are passed directly to
// sturdyc.New() and are not included in the options.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid for the selected
// backend.
func (c Config) Validate() error {
	if c.TTL < 0 {
		return &ConfigError{Field: "TTL", Message: "must be non-negative"}
	}

	switch c.Backend {
	case BackendMemory:
		return c.validateMemory()
	case BackendRedis:
		return c.validateRedis()
	case BackendTiered:
		if err := c.validateRedis(); err != nil {
			return err
		}
		if c.L1MaxCost <= 0 {
			return &ConfigError{Field: "L1MaxCost", Message: "must be greater than 0"}
		}
		if c.L1TTL <= 0 {
			return &ConfigError{Field: "L1TTL", Message: "must be greater than 0"}
		}
		return nil
	default:
		return &ConfigError{Field: "Backend", Message: "must be one of memory, redis, tiered"}
	}
}

func (c Config) validateMemory() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}

	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}

	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}

	if c.EvictionInterval < 0 {
		return &ConfigError{Field: "EvictionInterval", Message: "must be non-negative"}
	}

	return nil
}

func (c Config) validateRedis() error {
	if c.Redis.Addr == "" {
		return &ConfigError{Field: "Redis.Addr", Message: "cannot be empty"}
	}
	if c.Redis.DB < 0 {
		return &ConfigError{Field: "Redis.DB", Message: "must be non-negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
