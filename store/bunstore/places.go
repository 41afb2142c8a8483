package bunstore

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-lookup-cache/errs"
	"github.com/goliatone/go-lookup-cache/model"
	"github.com/goliatone/go-lookup-cache/store"
)

var _ store.PlaceStore = (*PlaceStore)(nil)

// PlaceStore reads places joined with their region and the region's
// languages.
type PlaceStore struct {
	db *bun.DB
}

func NewPlaceStore(db *bun.DB) *PlaceStore {
	return &PlaceStore{db: db}
}

func (s *PlaceStore) GetByID(ctx context.Context, id int64) (*model.Place, error) {
	place := new(model.Place)
	if err := s.selectPlaces(ctx, place, withRelation("Region"), byID(id)); err != nil {
		return nil, mapError(err, model.KindPlace, id, "get")
	}
	if err := loadLanguages(ctx, s.db, place.Region); err != nil {
		return nil, errs.StoreFailure(err, model.KindPlace.String(), "get")
	}
	return place, nil
}

func (s *PlaceStore) GetAll(ctx context.Context) ([]*model.Place, error) {
	return s.list(ctx, "get all", withRelation("Region"), orderByID())
}

func (s *PlaceStore) GetItems(ctx context.Context, offset, limit int) ([]*model.Place, error) {
	return s.list(ctx, "get items", withRelation("Region"), orderByID(), paginate(offset, limit))
}

func (s *PlaceStore) Count(ctx context.Context) (int, error) {
	n, err := s.db.NewSelect().Model((*model.Place)(nil)).Count(ctx)
	if err != nil {
		return 0, errs.StoreFailure(err, model.KindPlace.String(), "count")
	}
	return n, nil
}

func (s *PlaceStore) Save(ctx context.Context, place *model.Place) (*model.Place, error) {
	if place == nil {
		return nil, errs.InvalidArgument("place cannot be nil")
	}
	if place.Region != nil && place.RegionID == 0 {
		place.RegionID = place.Region.ID
	}
	if _, err := s.db.NewInsert().Model(place).Returning("id").Exec(ctx); err != nil {
		return nil, errs.StoreFailure(err, model.KindPlace.String(), "save")
	}
	return place, nil
}

func (s *PlaceStore) Update(ctx context.Context, place *model.Place) error {
	if place == nil {
		return errs.InvalidArgument("place cannot be nil")
	}
	res, err := s.db.NewUpdate().Model(place).WherePK().Exec(ctx)
	if err != nil {
		return errs.StoreFailure(err, model.KindPlace.String(), "update")
	}
	return requireAffected(res, model.KindPlace, place.ID, "update")
}

func (s *PlaceStore) DeleteByID(ctx context.Context, id int64) error {
	res, err := s.db.NewDelete().
		Model((*model.Place)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errs.StoreFailure(err, model.KindPlace.String(), "delete")
	}
	return requireAffected(res, model.KindPlace, id, "delete")
}

func (s *PlaceStore) list(ctx context.Context, operation string, criteria ...repository.SelectCriteria) ([]*model.Place, error) {
	places := make([]*model.Place, 0)
	if err := s.selectPlaces(ctx, &places, criteria...); err != nil {
		return nil, errs.StoreFailure(err, model.KindPlace.String(), operation)
	}

	regions := make([]*model.Region, 0, len(places))
	for _, p := range places {
		regions = append(regions, p.Region)
	}
	if err := loadLanguages(ctx, s.db, regions...); err != nil {
		return nil, errs.StoreFailure(err, model.KindPlace.String(), operation)
	}
	return places, nil
}

func (s *PlaceStore) selectPlaces(ctx context.Context, dest any, criteria ...repository.SelectCriteria) error {
	return apply(s.db.NewSelect().Model(dest), criteria...).Scan(ctx)
}
