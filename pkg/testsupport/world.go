package testsupport

import (
	_ "embed"
	"encoding/json"
	"testing"

	"github.com/goliatone/go-lookup-cache/model"
)

//go:embed testdata/world.json
var worldJSON []byte

// World is a small slice of the classic world dataset, fully joined: every
// Place points at its Region, every Region carries its Languages and
// Capital.
type World struct {
	Regions []*model.Region `json:"regions"`
	Places  []*model.Place  `json:"places"`
}

// LoadWorld decodes the embedded dataset and links the entity graph.
// Each call returns fresh copies, so tests may mutate the result.
func LoadWorld(t testing.TB) *World {
	t.Helper()

	var w World
	if err := json.Unmarshal(worldJSON, &w); err != nil {
		t.Fatalf("failed to decode world fixture: %v", err)
	}

	regions := make(map[int64]*model.Region, len(w.Regions))
	for _, r := range w.Regions {
		regions[r.ID] = r
	}
	places := make(map[int64]*model.Place, len(w.Places))
	for _, p := range w.Places {
		p.Region = regions[p.RegionID]
		places[p.ID] = p
	}
	for _, r := range w.Regions {
		if r.CapitalID != nil {
			r.Capital = places[*r.CapitalID]
		}
	}

	return &w
}

// Place returns the Place with id or fails the test.
func (w *World) Place(t *testing.T, id int64) *model.Place {
	t.Helper()
	for _, p := range w.Places {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("world fixture has no place %d", id)
	return nil
}

// Region returns the Region with id or fails the test.
func (w *World) Region(t *testing.T, id int64) *model.Region {
	t.Helper()
	for _, r := range w.Regions {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("world fixture has no region %d", id)
	return nil
}
