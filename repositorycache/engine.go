package repositorycache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/puzpuzpuz/xsync/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/goliatone/go-lookup-cache/cache"
	"github.com/goliatone/go-lookup-cache/errs"
	"github.com/goliatone/go-lookup-cache/model"
	"github.com/goliatone/go-lookup-cache/record"
	"github.com/goliatone/go-lookup-cache/store"
	"github.com/goliatone/go-lookup-cache/tracker"
)

// engine runs the frequency-gated promotion for one entity kind.
type engine[T any] struct {
	kind    model.Kind
	primary store.Store[T]
	fast    cache.FastStore

	// toRecord builds the record to promote for a fetched entity. A nil
	// record with a nil error means there is nothing to promote.
	toRecord   func(ctx context.Context, entity T) (*record.CacheRecord, error)
	fromRecord func(rec *record.CacheRecord) T

	tracker tracker.AccessTracker
	codec   record.Codec
	keys    cache.KeyBuilder
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer

	// promoting holds ids with a promotion in flight.
	promoting *xsync.MapOf[int64, struct{}]
}

func newEngine[T any](kind model.Kind, primary store.Store[T], fast cache.FastStore, o options) *engine[T] {
	return &engine[T]{
		kind:      kind,
		primary:   primary,
		fast:      fast,
		tracker:   o.tracker,
		codec:     o.codec,
		keys:      o.keys,
		logger:    o.logger.With(slog.String("kind", kind.String())),
		metrics:   o.metrics,
		tracer:    o.tracerProvider.Tracer(instrumentationName),
		promoting: xsync.NewMapOf[int64, struct{}](),
	}
}

func (e *engine[T]) validID(id int64) error {
	if id <= 0 {
		return errs.InvalidArgument(fmt.Sprintf("%s id must be greater than 0, got %d", e.kind, id))
	}
	return nil
}

// get serves id from the fast store once it has been promoted, otherwise
// from the primary store, promoting it when the count reaches the
// threshold.
func (e *engine[T]) get(ctx context.Context, id int64) (T, error) {
	var zero T

	ctx, span := e.tracer.Start(ctx, "repositorycache.GetByID", trace.WithAttributes(
		attribute.String("kind", e.kind.String()),
		attribute.Int64("id", id),
	))
	defer span.End()

	if err := e.validID(id); err != nil {
		recordError(span, err)
		return zero, err
	}

	count, gen := e.tracker.RecordAndGet(e.kind, id)
	eligible := count >= e.tracker.Threshold()

	if eligible {
		if entity, ok := e.fromFastStore(ctx, id); ok {
			span.SetAttributes(attribute.String("source", sourceFast))
			e.metrics.request(e.kind, sourceFast)
			return entity, nil
		}
	}

	entity, err := e.primary.GetByID(ctx, id)
	if err != nil {
		recordError(span, err)
		return zero, err
	}
	span.SetAttributes(attribute.String("source", sourcePrimary))
	e.metrics.request(e.kind, sourcePrimary)

	if eligible {
		e.promote(ctx, id, count, gen, entity)
	}
	return entity, nil
}

// fromFastStore reads the record cached for id. Misses and failures both
// report false so the caller falls through to the primary store.
func (e *engine[T]) fromFastStore(ctx context.Context, id int64) (T, bool) {
	var zero T

	name, ok := e.tracker.CachedKeyName(e.kind, id)
	if !ok {
		return zero, false
	}
	key := e.keys.NameKey(e.kind, name)

	data, found, err := e.fast.Get(ctx, key)
	if err != nil {
		e.metrics.fastStoreError(e.kind, "get")
		e.logger.WarnContext(ctx, "fast store read failed, using primary store",
			slog.Int64("id", id), slog.String("key", key), slog.Any("error", err))
		return zero, false
	}
	if !found {
		e.logger.DebugContext(ctx, "fast store miss", slog.Int64("id", id), slog.String("key", key))
		return zero, false
	}

	rec, err := e.codec.Unmarshal(data)
	if err != nil {
		e.metrics.fastStoreError(e.kind, "decode")
		e.logger.WarnContext(ctx, "cached record unreadable, using primary store",
			slog.Int64("id", id), slog.String("key", key), slog.Any("error", err))
		return zero, false
	}

	e.logger.DebugContext(ctx, "fast store hit", slog.Int64("id", id), slog.String("key", key))
	return e.fromRecord(rec), true
}

// promote writes the record for entity under its name key and remembers
// the name against tracker generation gen. Failures are logged and never
// reach the caller.
func (e *engine[T]) promote(ctx context.Context, id int64, count int, gen uint64, entity T) {
	if _, busy := e.promoting.LoadOrStore(id, struct{}{}); busy {
		e.logger.DebugContext(ctx, "promotion already in flight", slog.Int64("id", id))
		return
	}
	defer e.promoting.Delete(id)

	rec, err := e.toRecord(ctx, entity)
	if err != nil {
		e.logger.WarnContext(ctx, "promotion skipped, record not built",
			slog.Int64("id", id), slog.Any("error", err))
		return
	}
	if rec == nil {
		e.logger.InfoContext(ctx, "promotion skipped, nothing to cache", slog.Int64("id", id))
		return
	}

	data, err := e.codec.Marshal(rec)
	if err != nil {
		e.metrics.fastStoreError(e.kind, "encode")
		e.logger.WarnContext(ctx, "promotion skipped, record not encoded",
			slog.Int64("id", id), slog.Any("error", err))
		return
	}

	key := e.keys.NameKey(e.kind, rec.Name)
	if err := e.fast.Set(ctx, key, data); err != nil {
		e.metrics.fastStoreError(e.kind, "set")
		e.logger.WarnContext(ctx, "promotion write failed",
			slog.Int64("id", id), slog.String("key", key), slog.Any("error", err))
		return
	}

	if !e.tracker.SetCachedKeyName(e.kind, id, gen, rec.Name) {
		// the id was forgotten while promoting, i.e. deleted
		e.discard(ctx, id, key)
		return
	}

	e.metrics.promotion(e.kind)
	e.logger.InfoContext(ctx, "promoted to fast store",
		slog.Int64("id", id), slog.String("key", key), slog.Int("count", count))
}

// deleteByID removes id from the primary store, then drops its fast store
// entry and tracker state so a later lookup cannot resurrect it.
func (e *engine[T]) deleteByID(ctx context.Context, id int64) error {
	if err := e.validID(id); err != nil {
		return err
	}
	if _, err := e.primary.GetByID(ctx, id); err != nil {
		return err
	}
	if err := e.primary.DeleteByID(ctx, id); err != nil {
		return err
	}

	if name, ok := e.tracker.CachedKeyName(e.kind, id); ok {
		e.discard(ctx, id, e.keys.NameKey(e.kind, name))
	}
	e.tracker.Forget(e.kind, id)

	e.logger.InfoContext(ctx, "deleted", slog.Int64("id", id))
	return nil
}

func (e *engine[T]) discard(ctx context.Context, id int64, key string) {
	if err := e.fast.Delete(ctx, key); err != nil {
		e.metrics.fastStoreError(e.kind, "delete")
		e.logger.WarnContext(ctx, "fast store delete failed",
			slog.Int64("id", id), slog.String("key", key), slog.Any("error", err))
	}
}

func (e *engine[T]) getItems(ctx context.Context, offset, limit int) ([]T, error) {
	if offset < 0 || limit < 0 {
		return nil, errs.InvalidArgument(fmt.Sprintf("offset and limit cannot be negative, got %d and %d", offset, limit))
	}
	if limit == 0 {
		return []T{}, nil
	}
	return e.primary.GetItems(ctx, offset, limit)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
