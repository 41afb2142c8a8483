package cacheinfra

import (
	"bytes"
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// remote is the shared layer behind a TieredStore.
type remote interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TieredStore combines an in-process ristretto L1 with a shared L2
// (Redis in production). Reads check L1 first, then L2; an L2 hit is
// promoted into L1. Writes go to L2 first and only reach L1 once L2 has
// accepted them.
//
// L1 copies expire after Config.L1TTL. Delete clears this process's L1
// and L2, but another process holding an L1 copy keeps serving it until
// that copy expires, so deletes propagate within L1TTL.
type TieredStore struct {
	l1    *ristretto.Cache[string, []byte]
	l2    remote
	l1TTL time.Duration
}

// NewTieredStore creates a tiered store over Redis.
func NewTieredStore(cfg Config) (*TieredStore, error) {
	cfg.Backend = BackendTiered
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l2, err := NewRedisStore(cfg)
	if err != nil {
		return nil, err
	}
	ts, err := newTieredStore(cfg, l2)
	if err != nil {
		_ = l2.Close()
		return nil, err
	}
	return ts, nil
}

func newTieredStore(cfg Config, l2 remote) (*TieredStore, error) {
	if cfg.L1TTL <= 0 {
		return nil, &ConfigError{Field: "L1TTL", Message: "must be greater than 0"}
	}
	l1, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: cfg.L1MaxCost * 10,
		MaxCost:     cfg.L1MaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &TieredStore{l1: l1, l2: l2, l1TTL: cfg.l1TTL()}, nil
}

func (t *TieredStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if v, ok := t.l1.Get(key); ok {
		return bytes.Clone(v), true, nil
	}

	v, ok, err := t.l2.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}

	t.setL1(key, v)
	return v, true, nil
}

func (t *TieredStore) Set(ctx context.Context, key string, value []byte) error {
	if err := t.l2.Set(ctx, key, value); err != nil {
		return err
	}
	t.setL1(key, value)
	return nil
}

// Delete removes key from both layers. L1 is cleared even when L2 fails so
// this process stops serving the entry.
func (t *TieredStore) Delete(ctx context.Context, key string) error {
	t.l1.Del(key)
	return t.l2.Delete(ctx, key)
}

func (t *TieredStore) Close() error {
	t.l1.Close()
	return t.l2.Close()
}

func (t *TieredStore) setL1(key string, value []byte) {
	t.l1.SetWithTTL(key, bytes.Clone(value), 1, t.l1TTL)
	t.l1.Wait()
}
