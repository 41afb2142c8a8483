package repositorycache

import (
	"context"

	"github.com/goliatone/go-lookup-cache/cache"
	"github.com/goliatone/go-lookup-cache/errs"
	"github.com/goliatone/go-lookup-cache/model"
	"github.com/goliatone/go-lookup-cache/record"
	"github.com/goliatone/go-lookup-cache/store"
)

// Places is the lookup service for places. Hot places are cached under
// "placeName:<name>".
type Places struct {
	lookup  *engine[*model.Place]
	primary store.PlaceStore
}

// NewPlaces creates the place lookup service over primary and fast.
func NewPlaces(primary store.PlaceStore, fast cache.FastStore, opts ...Option) *Places {
	o := buildOptions(opts)
	e := newEngine[*model.Place](model.KindPlace, primary, fast, o)
	e.toRecord = func(_ context.Context, p *model.Place) (*record.CacheRecord, error) {
		return record.ToRecord(p)
	}
	e.fromRecord = record.ToPlace
	return &Places{lookup: e, primary: primary}
}

// GetByID returns the place with id. Once promoted the result is rebuilt
// from the cache record and has no Region set.
func (s *Places) GetByID(ctx context.Context, id int64) (*model.Place, error) {
	return s.lookup.get(ctx, id)
}

// GetAll returns every place from the primary store.
func (s *Places) GetAll(ctx context.Context) ([]*model.Place, error) {
	return s.primary.GetAll(ctx)
}

// GetItems returns a page of places. A zero limit returns an empty page.
func (s *Places) GetItems(ctx context.Context, offset, limit int) ([]*model.Place, error) {
	return s.lookup.getItems(ctx, offset, limit)
}

// Count returns the number of stored places.
func (s *Places) Count(ctx context.Context) (int, error) {
	return s.primary.Count(ctx)
}

// Save validates and inserts place, returning it with its assigned id.
func (s *Places) Save(ctx context.Context, place *model.Place) (*model.Place, error) {
	if place == nil {
		return nil, errs.InvalidArgument("place cannot be nil")
	}
	if err := place.Validate(); err != nil {
		return nil, errs.InvalidEntity(model.KindPlace.String(), err)
	}
	return s.primary.Save(ctx, place)
}

// Update writes place. A promoted record is left as is.
func (s *Places) Update(ctx context.Context, place *model.Place) error {
	if place == nil {
		return errs.InvalidArgument("place cannot be nil")
	}
	if err := place.Validate(); err != nil {
		return errs.InvalidEntity(model.KindPlace.String(), err)
	}
	return s.primary.Update(ctx, place)
}

// UpdateByID copies region id, name, district and population from place
// onto the stored place with id and writes it back.
func (s *Places) UpdateByID(ctx context.Context, id int64, place *model.Place) (*model.Place, error) {
	if err := s.lookup.validID(id); err != nil {
		return nil, err
	}
	if place == nil {
		return nil, errs.InvalidArgument("place cannot be nil")
	}

	existing, err := s.primary.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.ApplyUpdate(place)
	if err := s.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes place by its id, clearing any cached record.
func (s *Places) Delete(ctx context.Context, place *model.Place) error {
	if place == nil {
		return errs.InvalidArgument("place cannot be nil")
	}
	return s.lookup.deleteByID(ctx, place.ID)
}

// DeleteByID removes the place and any cached record for it.
func (s *Places) DeleteByID(ctx context.Context, id int64) error {
	return s.lookup.deleteByID(ctx, id)
}
