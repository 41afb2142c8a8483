package di

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-lookup-cache/config"
	"github.com/goliatone/go-lookup-cache/pkg/testsupport"
)

func newBenchContainer(b *testing.B, vars map[string]string) *Container {
	b.Helper()
	vars["LOOKUP_DB_DSN"] = "file:" + filepath.Join(b.TempDir(), "world.db") + "?_foreign_keys=off"
	cfg, err := config.LoadFrom(vars)
	if err != nil {
		b.Fatalf("LoadFrom: %v", err)
	}
	c, err := NewContainer(context.Background(), cfg)
	if err != nil {
		b.Fatalf("NewContainer: %v", err)
	}
	b.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	if err := c.CreateSchema(ctx); err != nil {
		b.Fatalf("CreateSchema: %v", err)
	}

	world := testsupport.LoadWorld(b)
	for _, r := range world.Regions {
		if _, err := c.Regions().Save(ctx, r); err != nil {
			b.Fatalf("seed region: %v", err)
		}
	}
	for _, p := range world.Places {
		if _, err := c.Places().Save(ctx, p); err != nil {
			b.Fatalf("seed place: %v", err)
		}
	}
	return c
}

// BenchmarkPromotedVsPrimary compares a promoted lookup against one that
// always reaches SQLite.
func BenchmarkPromotedVsPrimary(b *testing.B) {
	b.Run("promoted", func(b *testing.B) {
		c := newBenchContainer(b, map[string]string{})
		ctx := context.Background()
		_, _ = c.Places().GetByID(ctx, 7)
		_, _ = c.Places().GetByID(ctx, 7)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := c.Places().GetByID(ctx, 7); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("primary", func(b *testing.B) {
		c := newBenchContainer(b, map[string]string{"LOOKUP_PROMOTION_THRESHOLD": "1000000000"})
		ctx := context.Background()

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := c.Places().GetByID(ctx, 7); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkConcurrentLookups(b *testing.B) {
	c := newBenchContainer(b, map[string]string{})
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		var id int64
		for pb.Next() {
			id = id%8 + 1
			if _, err := c.Places().GetByID(ctx, id); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
