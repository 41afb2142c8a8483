package di

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/goliatone/go-lookup-cache/cache"
	"github.com/goliatone/go-lookup-cache/config"
	"github.com/goliatone/go-lookup-cache/record"
	"github.com/goliatone/go-lookup-cache/repositorycache"
	"github.com/goliatone/go-lookup-cache/store/bunstore"
	"github.com/goliatone/go-lookup-cache/tracker"
)

// Container provides dependency injection for the lookup stack.
// It owns a single database handle, fast store and access tracker, and
// builds both lookup services on top of them so places and regions share
// one tracker.
type Container struct {
	config  config.Config
	db      *bun.DB
	fast    cache.ClosableStore
	tracker *tracker.Tracker
	metrics *repositorycache.Metrics
	places  *repositorycache.Places
	regions *repositorycache.Regions
	logger  *slog.Logger
}

// Option customizes a Container.
type Option func(*containerOptions)

type containerOptions struct {
	logger         *slog.Logger
	registerer     prometheus.Registerer
	tracerProvider trace.TracerProvider
}

// WithLogger replaces the stderr text logger built from Config.LogLevel.
func WithLogger(logger *slog.Logger) Option {
	return func(o *containerOptions) {
		o.logger = logger
	}
}

// WithRegisterer registers the lookup metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *containerOptions) {
		o.registerer = reg
	}
}

// WithTracerProvider passes tp to both lookup services.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *containerOptions) {
		o.tracerProvider = tp
	}
}

// NewContainer creates a new DI container from cfg. It opens the database,
// builds the fast store selected by cfg and wires the lookup services.
func NewContainer(ctx context.Context, cfg config.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o containerOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	}

	codec, err := record.CodecByName(cfg.RecordCodec)
	if err != nil {
		return nil, err
	}

	metrics, err := repositorycache.NewMetrics(o.registerer)
	if err != nil {
		return nil, err
	}

	db, err := bunstore.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	fast, err := cache.NewFastStore(cfg.Cache())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	tr := tracker.New(cfg.Threshold)
	if err := repositorycache.RegisterTrackedIDs(o.registerer, tr.Len); err != nil {
		_ = fast.Close()
		_ = db.Close()
		return nil, err
	}

	serviceOpts := []repositorycache.Option{
		repositorycache.WithTracker(tr),
		repositorycache.WithLogger(o.logger),
		repositorycache.WithMetrics(metrics),
		repositorycache.WithCodec(codec),
		repositorycache.WithKeyBuilder(cache.NewKeyBuilder(cfg.CacheKeyPrefix)),
	}
	if o.tracerProvider != nil {
		serviceOpts = append(serviceOpts, repositorycache.WithTracerProvider(o.tracerProvider))
	}

	return &Container{
		config:  cfg,
		db:      db,
		fast:    fast,
		tracker: tr,
		metrics: metrics,
		places:  repositorycache.NewPlaces(bunstore.NewPlaceStore(db), fast, serviceOpts...),
		regions: repositorycache.NewRegions(bunstore.NewRegionStore(db), fast, serviceOpts...),
		logger:  o.logger,
	}, nil
}

// NewContainerFromEnv creates a new DI container using configuration read
// from LOOKUP_* environment variables.
func NewContainerFromEnv(ctx context.Context, opts ...Option) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewContainer(ctx, cfg, opts...)
}

// CreateSchema creates the tables the stores read from when missing.
func (c *Container) CreateSchema(ctx context.Context) error {
	return bunstore.CreateSchema(ctx, c.db)
}

// Places returns the singleton place lookup service.
func (c *Container) Places() *repositorycache.Places {
	return c.places
}

// Regions returns the singleton region lookup service.
func (c *Container) Regions() *repositorycache.Regions {
	return c.regions
}

// FastStore returns the fast store shared by both services.
// This allows inspecting promoted records directly.
func (c *Container) FastStore() cache.FastStore {
	return c.fast
}

// Tracker returns the access tracker shared by both services.
func (c *Container) Tracker() *tracker.Tracker {
	return c.tracker
}

// DB returns the database handle backing the primary stores.
func (c *Container) DB() *bun.DB {
	return c.db
}

// Config returns a copy of the configuration used by this container.
// This is useful for debugging and monitoring purposes.
func (c *Container) Config() config.Config {
	return c.config
}

// Close releases the fast store and the database handle.
func (c *Container) Close() error {
	return errors.Join(c.fast.Close(), c.db.Close())
}
