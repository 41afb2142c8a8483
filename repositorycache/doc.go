// Package repositorycache provides the lookup services for places and regions.
//
// # Overview
//
// Each service sits in front of a primary store (store.PlaceStore or
// store.RegionStore) and a fast store (cache.FastStore). Reads are counted
// per (kind, id) by an access tracker; once an id is requested often enough
// it is promoted: a flat record.CacheRecord is written to the fast store and
// later lookups are answered from it without touching the primary store.
//
// # Basic Usage
//
//	fast, err := cache.NewFastStore(cache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer fast.Close()
//
//	places := repositorycache.NewPlaces(bunstore.NewPlaceStore(db), fast)
//
//	p, err := places.GetByID(ctx, 7) // primary store
//	p, err = places.GetByID(ctx, 7)  // primary store, promoted as "placeName:Haag"
//	p, err = places.GetByID(ctx, 7)  // fast store
//
// # Promotion
//
// GetByID follows these steps:
//
//  1. Reject ids <= 0 with an InvalidArgument error.
//  2. Increment the count for (kind, id).
//  3. If the count reached the threshold and a name was recorded, read the
//     record from the fast store and rebuild the entity from it.
//  4. Otherwise, or on a fast store miss or failure, fetch from the primary
//     store. NotFound and store failures are returned unchanged.
//  5. If the count reached the threshold, build the record, write it under
//     "<kind>Name:<name>" and record the name.
//  6. Return the entity from step 4.
//
// The first lookup of an id therefore always reaches the primary store.
// With the default threshold of 2 the second lookup promotes and the third
// is served from the fast store. A region is promoted as the record of its
// capital and keyed by the capital's name; regions without a capital are
// always served from the primary store.
//
// # Partial Results
//
// Entities rebuilt from a cache record are partial. A Place has no Region
// and a Region has no capital, languages, independence year or GNP. The
// record is a snapshot taken at promotion time: Update and UpdateByID do
// not refresh it.
//
// # Deletion
//
// DeleteByID and Delete fetch the entity, delete it from the primary store,
// then remove the fast store entry recorded for the id and forget the id in
// the tracker. A later lookup starts counting from one again and reports
// NotFound.
//
// # Error Handling
//
// Errors are *goerrors.Error values classified by the errs package:
// InvalidArgument, NotFound and StoreOperationFailure. Fast store failures
// never fail a call; they are logged at Warn level, counted in
// lookup_fast_store_errors_total and treated as a miss.
//
// # Concurrency
//
// Services are safe for concurrent use. The tracker updates each (kind, id)
// atomically and a promotion already running for an id makes concurrent
// promotions of the same id return early.
//
// # Observability
//
// Options attach a *slog.Logger, Prometheus metrics (NewMetrics) and an
// OpenTelemetry tracer provider. Every GetByID opens a
// "repositorycache.GetByID" span tagged with kind, id and source.
package repositorycache
