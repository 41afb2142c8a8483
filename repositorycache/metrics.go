package repositorycache

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-lookup-cache/model"
)

// Lookup sources reported on requests.
const (
	sourceFast    = "fast"
	sourcePrimary = "primary"
)

// Metrics holds the Prometheus collectors shared by the lookup services.
// A nil *Metrics disables recording.
type Metrics struct {
	requests        *prometheus.CounterVec // by kind and source
	promotions      *prometheus.CounterVec // by kind
	fastStoreErrors *prometheus.CounterVec // by kind and op
}

// NewMetrics creates the lookup collectors and registers them with reg.
// A nil reg returns nil metrics.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, nil
	}

	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lookup",
			Name:      "requests_total",
			Help:      "Lookups served, by entity kind and source (fast or primary)",
		}, []string{"kind", "source"}),

		promotions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lookup",
			Name:      "promotions_total",
			Help:      "Cache records written to the fast store after crossing the threshold",
		}, []string{"kind"}),

		fastStoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lookup",
			Name:      "fast_store_errors_total",
			Help:      "Swallowed fast store failures, by entity kind and operation",
		}, []string{"kind", "op"}), // op: get, set, delete, decode, encode
	}

	for _, c := range []prometheus.Collector{m.requests, m.promotions, m.fastStoreErrors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RegisterTrackedIDs exposes the number of tracked ids as the
// lookup_tracked_ids gauge.
func RegisterTrackedIDs(reg prometheus.Registerer, size func() int) error {
	if reg == nil || size == nil {
		return nil
	}
	return reg.Register(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "lookup",
		Name:      "tracked_ids",
		Help:      "Number of (kind, id) pairs held by the access tracker",
	}, func() float64 { return float64(size()) }))
}

func (m *Metrics) request(kind model.Kind, source string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(kind.String(), source).Inc()
}

func (m *Metrics) promotion(kind model.Kind) {
	if m == nil {
		return
	}
	m.promotions.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) fastStoreError(kind model.Kind, op string) {
	if m == nil {
		return
	}
	m.fastStoreErrors.WithLabelValues(kind.String(), op).Inc()
}
