package repositorycache

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/goliatone/go-lookup-cache/errs"
	"github.com/goliatone/go-lookup-cache/model"
	"github.com/goliatone/go-lookup-cache/pkg/testsupport"
)

// mockStore is an in-memory primary store that records every call.
type mockStore[T any] struct {
	mu      sync.Mutex
	kind    model.Kind
	rows    map[int64]T
	idOf    func(T) int64
	setID   func(T, int64)
	nextID  int64
	calls   []string
	getErr  error
	saveErr error
}

func newMockStore[T any](kind model.Kind, idOf func(T) int64, setID func(T, int64), rows ...T) *mockStore[T] {
	m := &mockStore[T]{kind: kind, rows: make(map[int64]T), idOf: idOf, setID: setID, nextID: 100}
	for _, r := range rows {
		m.rows[idOf(r)] = r
	}
	return m
}

func (m *mockStore[T]) recordCall(method string) {
	m.calls = append(m.calls, method)
}

// getCalls returns a copy of the recorded calls.
func (m *mockStore[T]) getCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// callCount returns how many times method was called.
func (m *mockStore[T]) callCount(method string) int {
	n := 0
	for _, c := range m.getCalls() {
		if c == method {
			n++
		}
	}
	return n
}

func (m *mockStore[T]) GetByID(_ context.Context, id int64) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("GetByID")
	var zero T
	if m.getErr != nil {
		return zero, m.getErr
	}
	row, ok := m.rows[id]
	if !ok {
		return zero, errs.NotFound(m.kind.String(), id)
	}
	return row, nil
}

func (m *mockStore[T]) sorted() []T {
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.rows[id])
	}
	return out
}

func (m *mockStore[T]) GetAll(_ context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("GetAll")
	return m.sorted(), nil
}

func (m *mockStore[T]) GetItems(_ context.Context, offset, limit int) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("GetItems")
	all := m.sorted()
	if offset >= len(all) {
		return []T{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (m *mockStore[T]) Count(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("Count")
	return len(m.rows), nil
}

func (m *mockStore[T]) Save(_ context.Context, entity T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("Save")
	var zero T
	if m.saveErr != nil {
		return zero, errs.StoreFailure(m.saveErr, m.kind.String(), "save")
	}
	if m.idOf(entity) == 0 {
		m.nextID++
		m.setID(entity, m.nextID)
	}
	m.rows[m.idOf(entity)] = entity
	return entity, nil
}

func (m *mockStore[T]) Update(_ context.Context, entity T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("Update")
	id := m.idOf(entity)
	if _, ok := m.rows[id]; !ok {
		return errs.NotFound(m.kind.String(), id)
	}
	m.rows[id] = entity
	return nil
}

func (m *mockStore[T]) DeleteByID(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("DeleteByID")
	if _, ok := m.rows[id]; !ok {
		return errs.NotFound(m.kind.String(), id)
	}
	delete(m.rows, id)
	return nil
}

type mockPlaceStore struct {
	*mockStore[*model.Place]
}

func newMockPlaceStore(places ...*model.Place) *mockPlaceStore {
	return &mockPlaceStore{newMockStore(model.KindPlace,
		func(p *model.Place) int64 { return p.ID },
		func(p *model.Place, id int64) { p.ID = id },
		places...)}
}

type mockRegionStore struct {
	*mockStore[*model.Region]
	capitals map[int64]*model.Place
}

func newMockRegionStore(world *testsupport.World) *mockRegionStore {
	m := &mockRegionStore{
		mockStore: newMockStore(model.KindRegion,
			func(r *model.Region) int64 { return r.ID },
			func(r *model.Region, id int64) { r.ID = id },
			world.Regions...),
		capitals: make(map[int64]*model.Place),
	}
	for _, r := range world.Regions {
		if r.Capital != nil {
			m.capitals[r.ID] = r.Capital
		}
	}
	return m
}

func (m *mockRegionStore) GetCapitalPlaceByRegionID(_ context.Context, id int64) (*model.Place, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordCall("GetCapitalPlaceByRegionID")
	if _, ok := m.rows[id]; !ok {
		return nil, errs.NotFound(model.KindRegion.String(), id)
	}
	return m.capitals[id], nil
}

// mockFastStore is an in-memory fast store that can fail on demand.
type mockFastStore struct {
	mu        sync.Mutex
	data      map[string][]byte
	calls     []string
	getErr    error
	setErr    error
	deleteErr error

	// afterSet runs once a Set has been stored, outside the lock.
	afterSet func()
}

func newMockFastStore() *mockFastStore {
	return &mockFastStore{data: make(map[string][]byte)}
}

func (f *mockFastStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "Get")
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *mockFastStore) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	f.calls = append(f.calls, "Set")
	if f.setErr != nil {
		f.mu.Unlock()
		return f.setErr
	}
	f.data[key] = value
	hook := f.afterSet
	f.afterSet = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return nil
}

func (f *mockFastStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "Delete")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.data, key)
	return nil
}

func (f *mockFastStore) has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[key]
	return ok
}

// evict drops key as an external eviction policy would.
func (f *mockFastStore) evict(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
}

func (f *mockFastStore) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == method {
			n++
		}
	}
	return n
}

var errBackend = errors.New("backend unavailable")
