package bunstore

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-lookup-cache/model"
)

// loadLanguages fills Languages on every region with a single query.
func loadLanguages(ctx context.Context, db bun.IDB, regions ...*model.Region) error {
	byRegion := make(map[int64][]*model.Region, len(regions))
	ids := make([]int64, 0, len(regions))
	for _, r := range regions {
		if r == nil {
			continue
		}
		if _, seen := byRegion[r.ID]; !seen {
			ids = append(ids, r.ID)
		}
		byRegion[r.ID] = append(byRegion[r.ID], r)
		r.Languages = []*model.Language{}
	}
	if len(ids) == 0 {
		return nil
	}

	var langs []*model.Language
	err := db.NewSelect().
		Model(&langs).
		Where("l.country_id IN (?)", bun.In(ids)).
		OrderExpr("l.country_id ASC, l.language ASC").
		Scan(ctx)
	if err != nil {
		return err
	}

	for _, l := range langs {
		for _, r := range byRegion[l.RegionID] {
			r.Languages = append(r.Languages, l)
		}
	}
	return nil
}

func insertLanguages(ctx context.Context, tx bun.IDB, regionID int64, langs []*model.Language) error {
	if len(langs) == 0 {
		return nil
	}
	for _, l := range langs {
		l.RegionID = regionID
	}
	_, err := tx.NewInsert().Model(&langs).Exec(ctx)
	return err
}

func deleteLanguages(ctx context.Context, tx bun.IDB, regionID int64) error {
	_, err := tx.NewDelete().
		Model((*model.Language)(nil)).
		Where("country_id = ?", regionID).
		Exec(ctx)
	return err
}
