// Package tracker counts lookups per (kind, id) and remembers the name a
// promoted entity was cached under.
//
// Entries are created lazily on the first lookup of an id and live for the
// process lifetime unless Forget is called. The number of tracked ids is
// intentionally unbounded: the set of hot ids in the world dataset is small
// and a silent eviction would reset counts and re-trigger promotions. Len
// is exposed so callers can watch growth.
package tracker

import (
	"sync/atomic"

	"github.com/goliatone/go-lookup-cache/model"
	"github.com/puzpuzpuz/xsync/v3"
)

// DefaultThreshold is the access count at which an id becomes eligible for
// promotion.
const DefaultThreshold = 2

// AccessTracker is the contract the lookup services depend on. Tests inject
// fakes with deterministic counts.
type AccessTracker interface {
	// RecordAndGet increments and returns the count for (kind, id),
	// starting at 1, together with the generation of the entry counted.
	RecordAndGet(kind model.Kind, id int64) (count int, gen uint64)
	// CachedKeyName returns the name recorded for a promoted id.
	CachedKeyName(kind model.Kind, id int64) (string, bool)
	// SetCachedKeyName records a promotion. It returns false and records
	// nothing when the id has not reached the threshold yet, or when the
	// entry is no longer generation gen because the id was forgotten.
	SetCachedKeyName(kind model.Kind, id int64, gen uint64, name string) bool
	// Forget drops every piece of state held for (kind, id).
	Forget(kind model.Kind, id int64)
	// Threshold returns the promotion threshold.
	Threshold() int
}

type entryKey struct {
	kind model.Kind
	id   int64
}

// entry is one tracked id. gen identifies the entry across a Forget: an
// entry recreated after Forget gets a fresh generation.
type entry struct {
	count int
	gen   uint64
	name  string
}

// Tracker is the default AccessTracker. Each update runs as an atomic
// compute on its key, so concurrent lookups of one id never lose
// increments and lookups of different ids do not contend on a shared lock.
type Tracker struct {
	threshold int
	entries   *xsync.MapOf[entryKey, entry]
	gens      atomic.Uint64
}

var _ AccessTracker = (*Tracker)(nil)

// New creates a Tracker promoting at threshold. Values below 1 fall back
// to DefaultThreshold.
func New(threshold int) *Tracker {
	if threshold < 1 {
		threshold = DefaultThreshold
	}
	return &Tracker{
		threshold: threshold,
		entries:   xsync.NewMapOf[entryKey, entry](),
	}
}

func (t *Tracker) Threshold() int {
	return t.threshold
}

func (t *Tracker) RecordAndGet(kind model.Kind, id int64) (int, uint64) {
	e, _ := t.entries.Compute(entryKey{kind: kind, id: id}, func(old entry, loaded bool) (entry, bool) {
		if !loaded {
			old.gen = t.gens.Add(1)
		}
		old.count++
		return old, false
	})
	return e.count, e.gen
}

func (t *Tracker) CachedKeyName(kind model.Kind, id int64) (string, bool) {
	e, ok := t.entries.Load(entryKey{kind: kind, id: id})
	if !ok || e.name == "" {
		return "", false
	}
	return e.name, true
}

func (t *Tracker) SetCachedKeyName(kind model.Kind, id int64, gen uint64, name string) bool {
	recorded := false
	t.entries.Compute(entryKey{kind: kind, id: id}, func(old entry, loaded bool) (entry, bool) {
		if !loaded {
			return old, true
		}
		if old.gen != gen || old.count < t.threshold {
			return old, false
		}
		old.name = name
		recorded = true
		return old, false
	})
	return recorded
}

func (t *Tracker) Forget(kind model.Kind, id int64) {
	t.entries.Delete(entryKey{kind: kind, id: id})
}

// Count returns the current count for (kind, id) without incrementing it.
func (t *Tracker) Count(kind model.Kind, id int64) int {
	e, _ := t.entries.Load(entryKey{kind: kind, id: id})
	return e.count
}

// Len returns the number of tracked (kind, id) pairs.
func (t *Tracker) Len() int {
	return t.entries.Size()
}
