package model

import (
	"github.com/uptrace/bun"
)

// Region owns a set of Places, a set of spoken Languages and optionally
// points at its capital Place.
type Region struct {
	bun.BaseModel `bun:"table:country,alias:r"`

	ID               int64     `bun:"id,pk,autoincrement" json:"id"`
	Code             string    `bun:"code,notnull" json:"code"`
	SecondaryCode    string    `bun:"code_2" json:"secondary_code"`
	Name             string    `bun:"name,notnull" json:"name"`
	Continent        Continent `bun:"continent" json:"continent"`
	RegionName       string    `bun:"region" json:"region_name"`
	SurfaceArea      float64   `bun:"surface_area" json:"surface_area"`
	IndependenceYear *int16    `bun:"indep_year" json:"independence_year,omitempty"`
	Population       int64     `bun:"population" json:"population"`
	LifeExpectancy   *float64  `bun:"life_expectancy" json:"life_expectancy,omitempty"`
	GNP              *float64  `bun:"gnp" json:"gnp,omitempty"`
	GNPOld           *float64  `bun:"gnpo_id" json:"gnp_old,omitempty"`
	LocalName        string    `bun:"local_name" json:"local_name"`
	GovernmentForm   string    `bun:"government_form" json:"government_form"`
	HeadOfState      string    `bun:"head_of_state" json:"head_of_state"`

	CapitalID *int64 `bun:"capital" json:"capital_id,omitempty"`
	Capital   *Place `bun:"rel:belongs-to,join:capital=id" json:"capital,omitempty"`

	Languages []*Language `bun:"rel:has-many,join:id=country_id" json:"languages,omitempty"`
}

// ApplyUpdate copies the fields an update-by-id is allowed to change from
// src into r. The id is never copied.
func (r *Region) ApplyUpdate(src *Region) {
	r.Code = src.Code
	r.SecondaryCode = src.SecondaryCode
	r.Name = src.Name
	r.Continent = src.Continent
	r.RegionName = src.RegionName
	r.SurfaceArea = src.SurfaceArea
	r.IndependenceYear = src.IndependenceYear
	r.Population = src.Population
	r.LifeExpectancy = src.LifeExpectancy
	r.GNP = src.GNP
	r.GNPOld = src.GNPOld
	r.LocalName = src.LocalName
	r.GovernmentForm = src.GovernmentForm
	r.HeadOfState = src.HeadOfState
	r.CapitalID = src.CapitalID
	r.Capital = src.Capital
	r.Languages = src.Languages
}

// Language is a language spoken in a Region together with its share of
// speakers.
type Language struct {
	bun.BaseModel `bun:"table:country_language,alias:l"`

	ID         int64   `bun:"id,pk,autoincrement" json:"id"`
	RegionID   int64   `bun:"country_id,notnull" json:"region_id"`
	Name       string  `bun:"language,notnull" json:"language"`
	Official   bool    `bun:"is_official" json:"official"`
	Percentage float64 `bun:"percentage" json:"percentage"`
}
