package repositorycache

import (
	"context"

	"github.com/goliatone/go-lookup-cache/cache"
	"github.com/goliatone/go-lookup-cache/errs"
	"github.com/goliatone/go-lookup-cache/model"
	"github.com/goliatone/go-lookup-cache/record"
	"github.com/goliatone/go-lookup-cache/store"
)

// Regions is the lookup service for regions. A hot region is cached as the
// record of its capital, under "regionName:<capital name>". Regions
// without a capital are never promoted.
type Regions struct {
	lookup  *engine[*model.Region]
	primary store.RegionStore
}

// NewRegions creates the region lookup service over primary and fast.
func NewRegions(primary store.RegionStore, fast cache.FastStore, opts ...Option) *Regions {
	o := buildOptions(opts)
	s := &Regions{primary: primary}
	e := newEngine[*model.Region](model.KindRegion, primary, fast, o)
	e.toRecord = s.capitalRecord
	e.fromRecord = record.ToRegion
	s.lookup = e
	return s
}

func (s *Regions) capitalRecord(ctx context.Context, region *model.Region) (*record.CacheRecord, error) {
	capital, err := s.primary.GetCapitalPlaceByRegionID(ctx, region.ID)
	if err != nil || capital == nil {
		return nil, err
	}
	if capital.Region == nil {
		capital.Region = region
	}
	return record.ToRecord(capital)
}

// GetByID returns the region with id. Once promoted the result is rebuilt
// from the cache record without capital, languages or economic fields.
func (s *Regions) GetByID(ctx context.Context, id int64) (*model.Region, error) {
	return s.lookup.get(ctx, id)
}

// GetAll returns every region from the primary store.
func (s *Regions) GetAll(ctx context.Context) ([]*model.Region, error) {
	return s.primary.GetAll(ctx)
}

// GetItems returns a page of regions. A zero limit returns an empty page.
func (s *Regions) GetItems(ctx context.Context, offset, limit int) ([]*model.Region, error) {
	return s.lookup.getItems(ctx, offset, limit)
}

// Count returns the number of stored regions.
func (s *Regions) Count(ctx context.Context) (int, error) {
	return s.primary.Count(ctx)
}

// Save validates and inserts region together with its languages.
func (s *Regions) Save(ctx context.Context, region *model.Region) (*model.Region, error) {
	if region == nil {
		return nil, errs.InvalidArgument("region cannot be nil")
	}
	if err := region.Validate(); err != nil {
		return nil, errs.InvalidEntity(model.KindRegion.String(), err)
	}
	return s.primary.Save(ctx, region)
}

// Update writes region. A promoted record is left as is.
func (s *Regions) Update(ctx context.Context, region *model.Region) error {
	if region == nil {
		return errs.InvalidArgument("region cannot be nil")
	}
	if err := region.Validate(); err != nil {
		return errs.InvalidEntity(model.KindRegion.String(), err)
	}
	return s.primary.Update(ctx, region)
}

// UpdateByID copies every editable field of region, capital and languages
// included, onto the stored region with id and writes it back.
func (s *Regions) UpdateByID(ctx context.Context, id int64, region *model.Region) (*model.Region, error) {
	if err := s.lookup.validID(id); err != nil {
		return nil, err
	}
	if region == nil {
		return nil, errs.InvalidArgument("region cannot be nil")
	}

	existing, err := s.primary.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing.ApplyUpdate(region)
	if err := s.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes region by its id, clearing any cached record.
func (s *Regions) Delete(ctx context.Context, region *model.Region) error {
	if region == nil {
		return errs.InvalidArgument("region cannot be nil")
	}
	return s.lookup.deleteByID(ctx, region.ID)
}

// DeleteByID removes the region and any cached record for it.
func (s *Regions) DeleteByID(ctx context.Context, id int64) error {
	return s.lookup.deleteByID(ctx, id)
}
