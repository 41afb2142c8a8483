// Package cacheinfra holds the fast store adapters behind cache.FastStore:
// an in-process sturdyc store, a Redis store and a ristretto+Redis tiered
// store.
package cacheinfra

import (
	"context"
)

// Store is implemented by every adapter in this package.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*RedisStore)(nil)
	_ Store = (*TieredStore)(nil)
)

// New validates cfg and builds the adapter named by cfg.Backend.
func New(cfg Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		store Store
		err   error
	)
	switch cfg.Backend {
	case BackendRedis:
		store, err = NewRedisStore(cfg)
	case BackendTiered:
		store, err = NewTieredStore(cfg)
	default:
		store, err = NewMemoryStore(cfg)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}
