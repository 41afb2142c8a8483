package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/goliatone/go-lookup-cache/cache"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.DatabaseDriver != "sqlite3" {
		t.Errorf("DatabaseDriver = %q, want sqlite3", cfg.DatabaseDriver)
	}
	if cfg.CacheBackend != cache.BackendMemory {
		t.Errorf("CacheBackend = %q, want memory", cfg.CacheBackend)
	}
	if cfg.CacheTTL != 0 {
		t.Errorf("CacheTTL = %v, want 0 (no expiry)", cfg.CacheTTL)
	}
	if cfg.L1TTL != 5*time.Second {
		t.Errorf("L1TTL = %v, want 5s", cfg.L1TTL)
	}
	if cfg.Threshold != 2 {
		t.Errorf("Threshold = %d, want 2", cfg.Threshold)
	}
	if cfg.RecordCodec != "json" {
		t.Errorf("RecordCodec = %q, want json", cfg.RecordCodec)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.LogLevel)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"LOOKUP_DB_DRIVER":           "postgres",
		"LOOKUP_DB_DSN":              "postgres://world@localhost/world?sslmode=disable",
		"LOOKUP_CACHE_BACKEND":       "tiered",
		"LOOKUP_CACHE_TTL":           "10m",
		"LOOKUP_CACHE_L1_MAX_COST":   "500",
		"LOOKUP_CACHE_L1_TTL":        "2s",
		"LOOKUP_REDIS_ADDR":          "redis:6379",
		"LOOKUP_REDIS_DB":            "3",
		"LOOKUP_PROMOTION_THRESHOLD": "5",
		"LOOKUP_RECORD_CODEC":        "msgpack",
		"LOOKUP_LOG_LEVEL":           "debug",
	})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.DatabaseDriver != "postgres" || cfg.Threshold != 5 || cfg.RecordCodec != "msgpack" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.LogLevel)
	}

	cc := cfg.Cache()
	if cc.Backend != cache.BackendTiered || cc.TTL != 10*time.Minute || cc.L1MaxCost != 500 || cc.L1TTL != 2*time.Second {
		t.Errorf("unexpected cache config: %+v", cc)
	}
	if cc.Redis.Addr != "redis:6379" || cc.Redis.DB != 3 {
		t.Errorf("unexpected redis config: %+v", cc.Redis)
	}
	if err := cc.Validate(); err != nil {
		t.Errorf("derived cache config should be valid: %v", err)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{name: "unknown driver", vars: map[string]string{"LOOKUP_DB_DRIVER": "mysql"}},
		{name: "unknown backend", vars: map[string]string{"LOOKUP_CACHE_BACKEND": "memcached"}},
		{name: "zero threshold", vars: map[string]string{"LOOKUP_PROMOTION_THRESHOLD": "0"}},
		{name: "negative ttl", vars: map[string]string{"LOOKUP_CACHE_TTL": "-1s"}},
		{name: "tiered without l1 ttl", vars: map[string]string{"LOOKUP_CACHE_BACKEND": "tiered", "LOOKUP_CACHE_L1_TTL": "0s"}},
		{name: "unknown codec", vars: map[string]string{"LOOKUP_RECORD_CODEC": "xml"}},
		{name: "malformed number", vars: map[string]string{"LOOKUP_CACHE_CAPACITY": "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFrom(tt.vars); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidate_RedisAddressRequiredOutsideMemory(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	cfg.RedisAddr = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("memory backend should not need redis: %v", err)
	}
	cfg.CacheBackend = cache.BackendRedis
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected redis backend without address to fail")
	}
}
