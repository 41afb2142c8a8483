package model

import (
	"github.com/uptrace/bun"
)

// Place is a named settlement owned by exactly one Region.
type Place struct {
	bun.BaseModel `bun:"table:city,alias:p"`

	ID         int64   `bun:"id,pk,autoincrement" json:"id"`
	Name       string  `bun:"name,notnull" json:"name"`
	RegionID   int64   `bun:"country_id,notnull" json:"region_id"`
	Region     *Region `bun:"rel:belongs-to,join:country_id=id" json:"region,omitempty"`
	District   string  `bun:"district" json:"district"`
	Population int64   `bun:"population" json:"population"`
}

// ApplyUpdate copies the fields an update-by-id is allowed to change from
// src into p. The id is never copied.
func (p *Place) ApplyUpdate(src *Place) {
	p.RegionID = src.RegionID
	if src.Region != nil {
		p.Region = src.Region
		if p.RegionID == 0 {
			p.RegionID = src.Region.ID
		}
	}
	p.Name = src.Name
	p.District = src.District
	p.Population = src.Population
}
