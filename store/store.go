// Package store defines the primary store contracts the lookup services
// depend on. Implementations own error translation: a missing row is
// reported with errs.NotFound and every other failure with
// errs.StoreFailure.
package store

import (
	"context"

	"github.com/goliatone/go-lookup-cache/model"
)

// Store is the CRUD surface shared by every entity kind, keyed by integer id.
type Store[T any] interface {
	// GetByID returns the entity joined with its related graph.
	GetByID(ctx context.Context, id int64) (T, error)
	// GetAll returns every entity ordered by id.
	GetAll(ctx context.Context) ([]T, error)
	// GetItems returns at most limit entities starting at offset, ordered by id.
	GetItems(ctx context.Context, offset, limit int) ([]T, error)
	Count(ctx context.Context) (int, error)
	// Save inserts the entity and returns it with its assigned id.
	Save(ctx context.Context, entity T) (T, error)
	// Update writes every column of the entity identified by its id.
	Update(ctx context.Context, entity T) error
	DeleteByID(ctx context.Context, id int64) error
}

// PlaceStore persists places.
type PlaceStore interface {
	Store[*model.Place]
}

// RegionStore persists regions and resolves their capitals.
type RegionStore interface {
	Store[*model.Region]
	// GetCapitalPlaceByRegionID returns the capital of region id joined with
	// the region and its languages. A region without a capital yields
	// (nil, nil).
	GetCapitalPlaceByRegionID(ctx context.Context, id int64) (*model.Place, error)
}
