// Package record converts between joined Place/Region entities and the flat
// CacheRecord stored in the fast store.
//
// The forward direction (ToRecord) is total over fully joined Places. The
// reverse directions are partial by design: ToPlace never sets the region
// reference, and ToRegion leaves independence year, life expectancy, GNP,
// capital and languages empty. The record is a read shortcut for
// single-entity display, not a restore path, so missing data is not guessed.
package record

import (
	"sort"

	"github.com/goliatone/go-lookup-cache/errs"
	"github.com/goliatone/go-lookup-cache/model"
)

// CacheRecord is a point-in-time snapshot of a Place joined with its Region.
type CacheRecord struct {
	ID         int64  `json:"id" msgpack:"id"`
	Name       string `json:"name" msgpack:"name"`
	District   string `json:"district" msgpack:"district"`
	Population int64  `json:"population" msgpack:"population"`

	RegionID            int64           `json:"regionId" msgpack:"regionId"`
	RegionCode          string          `json:"regionCode" msgpack:"regionCode"`
	RegionSecondaryCode string          `json:"alternativeRegionCode" msgpack:"alternativeRegionCode"`
	RegionName          string          `json:"regionName" msgpack:"regionName"`
	Continent           model.Continent `json:"continent" msgpack:"continent"`
	SubRegion           string          `json:"subRegion" msgpack:"subRegion"`
	RegionSurfaceArea   float64         `json:"regionSurfaceArea" msgpack:"regionSurfaceArea"`
	RegionPopulation    int64           `json:"regionPopulation" msgpack:"regionPopulation"`

	Languages []LanguageRecord `json:"languages" msgpack:"languages"`
}

// LanguageRecord is the projection of a Region's Language.
type LanguageRecord struct {
	Language   string  `json:"language" msgpack:"language"`
	Official   bool    `json:"isOfficial" msgpack:"isOfficial"`
	Percentage float64 `json:"percentage" msgpack:"percentage"`
}

// ToRecord flattens a fully joined Place. The Place's Region must be loaded;
// its Languages are copied sorted by name so equal inputs encode equally.
func ToRecord(place *model.Place) (*CacheRecord, error) {
	if place == nil {
		return nil, errs.InvalidArgument("place cannot be nil")
	}
	region := place.Region
	if region == nil {
		return nil, errs.InvalidArgument("place region is not loaded")
	}

	rec := &CacheRecord{
		ID:         place.ID,
		Name:       place.Name,
		District:   place.District,
		Population: place.Population,

		RegionID:            region.ID,
		RegionCode:          region.Code,
		RegionSecondaryCode: region.SecondaryCode,
		RegionName:          region.Name,
		Continent:           region.Continent,
		SubRegion:           region.RegionName,
		RegionSurfaceArea:   region.SurfaceArea,
		RegionPopulation:    region.Population,

		Languages: make([]LanguageRecord, 0, len(region.Languages)),
	}

	for _, l := range region.Languages {
		if l == nil {
			continue
		}
		rec.Languages = append(rec.Languages, LanguageRecord{
			Language:   l.Name,
			Official:   l.Official,
			Percentage: l.Percentage,
		})
	}
	sort.Slice(rec.Languages, func(i, j int) bool {
		return rec.Languages[i].Language < rec.Languages[j].Language
	})

	return rec, nil
}

// ToPlace rebuilds a Place with id, name, district and population only.
// The region reference is intentionally left unset.
func ToPlace(rec *CacheRecord) *model.Place {
	if rec == nil {
		return nil
	}
	return &model.Place{
		ID:         rec.ID,
		Name:       rec.Name,
		District:   rec.District,
		Population: rec.Population,
	}
}

// ToRegion rebuilds a Region with id, codes, name, continent, sub-region,
// surface area and population. Independence year, life expectancy, GNP,
// capital and languages stay at their zero values.
func ToRegion(rec *CacheRecord) *model.Region {
	if rec == nil {
		return nil
	}
	return &model.Region{
		ID:            rec.RegionID,
		Code:          rec.RegionCode,
		SecondaryCode: rec.RegionSecondaryCode,
		Name:          rec.RegionName,
		Continent:     rec.Continent,
		RegionName:    rec.SubRegion,
		SurfaceArea:   rec.RegionSurfaceArea,
		Population:    rec.RegionPopulation,
	}
}
