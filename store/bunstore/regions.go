package bunstore

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-lookup-cache/errs"
	"github.com/goliatone/go-lookup-cache/model"
	"github.com/goliatone/go-lookup-cache/store"
)

var _ store.RegionStore = (*RegionStore)(nil)

// RegionStore reads regions joined with their capital and languages. Writes
// touching languages run in one transaction.
type RegionStore struct {
	db *bun.DB
}

func NewRegionStore(db *bun.DB) *RegionStore {
	return &RegionStore{db: db}
}

func (s *RegionStore) GetByID(ctx context.Context, id int64) (*model.Region, error) {
	region := new(model.Region)
	if err := s.selectRegions(ctx, region, withRelation("Capital"), byID(id)); err != nil {
		return nil, mapError(err, model.KindRegion, id, "get")
	}
	if err := loadLanguages(ctx, s.db, region); err != nil {
		return nil, errs.StoreFailure(err, model.KindRegion.String(), "get")
	}
	return region, nil
}

func (s *RegionStore) GetAll(ctx context.Context) ([]*model.Region, error) {
	return s.list(ctx, "get all", withRelation("Capital"), orderByID())
}

func (s *RegionStore) GetItems(ctx context.Context, offset, limit int) ([]*model.Region, error) {
	return s.list(ctx, "get items", withRelation("Capital"), orderByID(), paginate(offset, limit))
}

func (s *RegionStore) Count(ctx context.Context) (int, error) {
	n, err := s.db.NewSelect().Model((*model.Region)(nil)).Count(ctx)
	if err != nil {
		return 0, errs.StoreFailure(err, model.KindRegion.String(), "count")
	}
	return n, nil
}

// GetCapitalPlaceByRegionID returns the capital joined with region id and
// its languages, or (nil, nil) when the region has no capital.
func (s *RegionStore) GetCapitalPlaceByRegionID(ctx context.Context, id int64) (*model.Place, error) {
	region := new(model.Region)
	if err := s.selectRegions(ctx, region, byID(id)); err != nil {
		return nil, mapError(err, model.KindRegion, id, "get capital")
	}
	if region.CapitalID == nil {
		return nil, nil
	}

	capitalID := *region.CapitalID
	capital := new(model.Place)
	err := s.db.NewSelect().Model(capital).Where("?TableAlias.id = ?", capitalID).Scan(ctx)
	if err != nil {
		return nil, mapError(err, model.KindPlace, capitalID, "get capital")
	}
	if err := loadLanguages(ctx, s.db, region); err != nil {
		return nil, errs.StoreFailure(err, model.KindRegion.String(), "get capital")
	}
	capital.Region = region
	return capital, nil
}

// Save inserts the region and its languages.
func (s *RegionStore) Save(ctx context.Context, region *model.Region) (*model.Region, error) {
	if region == nil {
		return nil, errs.InvalidArgument("region cannot be nil")
	}
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(region).Returning("id").Exec(ctx); err != nil {
			return err
		}
		return insertLanguages(ctx, tx, region.ID, region.Languages)
	})
	if err != nil {
		return nil, errs.StoreFailure(err, model.KindRegion.String(), "save")
	}
	return region, nil
}

// Update writes the region row. Languages are replaced only when
// region.Languages is non-nil.
func (s *RegionStore) Update(ctx context.Context, region *model.Region) error {
	if region == nil {
		return errs.InvalidArgument("region cannot be nil")
	}
	var notFound error
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().Model(region).WherePK().Exec(ctx)
		if err != nil {
			return err
		}
		if notFound = requireAffected(res, model.KindRegion, region.ID, "update"); notFound != nil {
			return notFound
		}
		if region.Languages == nil {
			return nil
		}
		if err := deleteLanguages(ctx, tx, region.ID); err != nil {
			return err
		}
		return insertLanguages(ctx, tx, region.ID, region.Languages)
	})
	if notFound != nil {
		return notFound
	}
	if err != nil {
		return errs.StoreFailure(err, model.KindRegion.String(), "update")
	}
	return nil
}

// DeleteByID removes the region and its languages. Places pointing at the
// region are left untouched.
func (s *RegionStore) DeleteByID(ctx context.Context, id int64) error {
	var notFound error
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*model.Region)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		if notFound = requireAffected(res, model.KindRegion, id, "delete"); notFound != nil {
			return notFound
		}
		return deleteLanguages(ctx, tx, id)
	})
	if notFound != nil {
		return notFound
	}
	if err != nil {
		return errs.StoreFailure(err, model.KindRegion.String(), "delete")
	}
	return nil
}

func (s *RegionStore) list(ctx context.Context, operation string, criteria ...repository.SelectCriteria) ([]*model.Region, error) {
	regions := make([]*model.Region, 0)
	if err := s.selectRegions(ctx, &regions, criteria...); err != nil {
		return nil, errs.StoreFailure(err, model.KindRegion.String(), operation)
	}
	if err := loadLanguages(ctx, s.db, regions...); err != nil {
		return nil, errs.StoreFailure(err, model.KindRegion.String(), operation)
	}
	return regions, nil
}

func (s *RegionStore) selectRegions(ctx context.Context, dest any, criteria ...repository.SelectCriteria) error {
	return apply(s.db.NewSelect().Model(dest), criteria...).Scan(ctx)
}
