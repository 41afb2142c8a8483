// Package cache provides the fast store contract and key building used by
// the lookup services.
//
// # Overview
//
// This package exports two main interfaces and their default implementations:
//
//   - FastStore: a key/value store holding serialized cache records
//   - KeyBuilder: builds namespaced keys such as "placeName:Haag"
//
// The fast store has no transactions and no secondary indices. Values are
// opaque bytes; encoding them is the record package's job.
//
// # Basic Usage
//
//	store, err := cache.NewFastStore(cache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	keys := cache.NewKeyBuilder("")
//	key := keys.NameKey(model.KindPlace, "Haag") // "placeName:Haag"
//
//	if err := store.Set(ctx, key, payload); err != nil {
//		// promotion failed, the caller still has the primary result
//	}
//	payload, found, err := store.Get(ctx, key)
//
// # Backends
//
// Config.Backend selects the implementation:
//
//   - "memory": in-process sturdyc client, sharded, capacity bounded
//   - "redis": shared Redis instance via go-redis
//   - "tiered": ristretto L1 in front of Redis L2; reads promote L2 hits into L1
//
// # Key Collisions
//
// Keys are derived from entity names, not ids. Two entities of the same kind
// sharing a name overwrite each other's entry and are indistinguishable on a
// cache hit. This is a known limitation kept for compatibility with records
// already stored under name keys. A KeyBuilder prefix can isolate deployments
// sharing one Redis database but does not change this.
//
// # Error Handling
//
// Get reports a miss as (nil, false, nil); an error means the backend itself
// failed. Callers on the read path treat both the same way.
package cache
