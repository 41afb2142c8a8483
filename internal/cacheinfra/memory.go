package cacheinfra

import (
	"bytes"
	"context"

	"github.com/viccon/sturdyc"
)

// MemoryStore is an in-process fast store backed by a sturdyc client.
type MemoryStore struct {
	client *sturdyc.Client[[]byte]
}

// NewMemoryStore validates cfg and creates a sharded sturdyc client sized
// by Capacity, NumShards, TTL and EvictionPercentage.
func NewMemoryStore(cfg Config) (*MemoryStore, error) {
	cfg.Backend = BackendMemory
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[[]byte](
		cfg.Capacity,
		cfg.NumShards,
		cfg.effectiveTTL(),
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &MemoryStore{client: client}, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.client.Get(key)
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.client.Set(key, bytes.Clone(value))
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// Size returns the number of entries currently held.
func (s *MemoryStore) Size() int {
	return s.client.Size()
}

func (s *MemoryStore) Close() error {
	return nil
}
