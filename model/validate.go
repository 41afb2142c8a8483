package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the fields a Place must carry before it is persisted.
func (p *Place) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 35)),
		validation.Field(&p.RegionID, validation.Required, validation.Min(int64(1))),
		validation.Field(&p.District, validation.Length(0, 20)),
		validation.Field(&p.Population, validation.Min(int64(0))),
	)
}

// Validate checks the fields a Region must carry before it is persisted.
// Languages are validated element by element.
func (r *Region) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Code, validation.Required, validation.Length(3, 3)),
		validation.Field(&r.SecondaryCode, validation.Length(0, 2)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 52)),
		validation.Field(&r.Continent, validation.Required, validation.In(continentValues()...)),
		validation.Field(&r.SurfaceArea, validation.Min(0.0)),
		validation.Field(&r.Population, validation.Min(int64(0))),
		validation.Field(&r.Languages),
	)
}

// Validate checks a single Language row.
func (l *Language) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Name, validation.Required, validation.Length(1, 30)),
		validation.Field(&l.Percentage, validation.Min(0.0), validation.Max(100.0)),
	)
}

func continentValues() []any {
	continents := Continents()
	values := make([]any, len(continents))
	for i, c := range continents {
		values[i] = c
	}
	return values
}
