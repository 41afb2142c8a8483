package repositorycache

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/goliatone/go-lookup-cache/cache"
	"github.com/goliatone/go-lookup-cache/record"
	"github.com/goliatone/go-lookup-cache/tracker"
)

const instrumentationName = "github.com/goliatone/go-lookup-cache/repositorycache"

// Option configures a lookup service.
type Option func(*options)

type options struct {
	threshold      int
	tracker        tracker.AccessTracker
	logger         *slog.Logger
	metrics        *Metrics
	tracerProvider trace.TracerProvider
	codec          record.Codec
	keys           cache.KeyBuilder
}

// WithThreshold sets the promotion threshold of the tracker the service
// creates. Ignored when WithTracker is used.
func WithThreshold(n int) Option {
	return func(o *options) {
		o.threshold = n
	}
}

// WithTracker shares an access tracker between services. Its own
// threshold applies.
func WithTracker(t tracker.AccessTracker) Option {
	return func(o *options) {
		o.tracker = t
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics records lookups on m. Nil disables metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracerProvider sets the provider lookup spans are created from.
// Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithCodec selects the cache record encoding. Defaults to JSON.
func WithCodec(c record.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithKeyBuilder overrides how fast store keys are built.
func WithKeyBuilder(kb cache.KeyBuilder) Option {
	return func(o *options) {
		o.keys = kb
	}
}

func buildOptions(opts []Option) options {
	o := options{threshold: tracker.DefaultThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.tracker == nil {
		o.tracker = tracker.New(o.threshold)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}
	if o.codec == nil {
		o.codec = record.JSONCodec{}
	}
	if o.keys == nil {
		o.keys = cache.NewKeyBuilder("")
	}
	return o
}
