package record

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-lookup-cache/errs"
	"github.com/goliatone/go-lookup-cache/model"
	"github.com/goliatone/go-lookup-cache/pkg/testsupport"
)

func TestToRecord_FlattensJoinedPlace(t *testing.T) {
	w := testsupport.LoadWorld(t)
	haag := w.Place(t, 7)

	rec, err := ToRecord(haag)
	if err != nil {
		t.Fatalf("ToRecord() failed: %v", err)
	}

	var want CacheRecord
	testsupport.LoadFixtureJSON(t, testsupport.FixturePath("haag_record.json"), &want)

	if !reflect.DeepEqual(*rec, want) {
		t.Errorf("record mismatch:\nwant %+v\ngot  %+v", want, *rec)
	}
}

func TestToRecord_SortsLanguages(t *testing.T) {
	w := testsupport.LoadWorld(t)
	kabul := w.Place(t, 1)

	rec, err := ToRecord(kabul)
	if err != nil {
		t.Fatalf("ToRecord() failed: %v", err)
	}

	got := make([]string, len(rec.Languages))
	for i, l := range rec.Languages {
		got[i] = l.Language
	}
	want := []string{"Dari", "Pashto", "Uzbek"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("languages = %v, want %v", got, want)
	}
}

func TestToRecord_RequiresRegion(t *testing.T) {
	_, err := ToRecord(&model.Place{ID: 1, Name: "Kabul"})
	if !errs.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument error, got %v", err)
	}

	_, err = ToRecord(nil)
	if !errs.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument error for nil place, got %v", err)
	}
}

func TestToPlace_IsPartial(t *testing.T) {
	w := testsupport.LoadWorld(t)
	haag := w.Place(t, 7)

	rec, err := ToRecord(haag)
	if err != nil {
		t.Fatalf("ToRecord() failed: %v", err)
	}
	got := ToPlace(rec)

	if got.ID != 7 || got.Name != "Haag" || got.District != "Zuid-Holland" || got.Population != 440900 {
		t.Errorf("unexpected reconstructed place: %+v", got)
	}
	if got.Region != nil {
		t.Error("expected region reference to stay unset")
	}
	if got.RegionID != 0 {
		t.Errorf("expected region id to stay unset, got %d", got.RegionID)
	}
}

func TestToRegion_IsPartial(t *testing.T) {
	w := testsupport.LoadWorld(t)
	kabul := w.Place(t, 1)

	rec, err := ToRecord(kabul)
	if err != nil {
		t.Fatalf("ToRecord() failed: %v", err)
	}
	got := ToRegion(rec)

	if got.ID != 1 || got.Code != "AFG" || got.SecondaryCode != "AF" || got.Name != "Afghanistan" {
		t.Errorf("unexpected identity fields: %+v", got)
	}
	if got.Continent != model.ContinentAsia || got.RegionName != "Southern and Central Asia" {
		t.Errorf("unexpected geography fields: %+v", got)
	}
	if got.SurfaceArea != 652090 || got.Population != 22720000 {
		t.Errorf("unexpected numeric fields: %+v", got)
	}
	if got.IndependenceYear != nil || got.LifeExpectancy != nil || got.GNP != nil || got.GNPOld != nil {
		t.Error("expected independence year, life expectancy and GNP to stay empty")
	}
	if got.CapitalID != nil || got.Capital != nil {
		t.Error("expected capital to stay empty")
	}
	if len(got.Languages) != 0 {
		t.Error("expected languages to stay empty")
	}
}

func TestReverse_NilRecord(t *testing.T) {
	if ToPlace(nil) != nil {
		t.Error("expected nil place for nil record")
	}
	if ToRegion(nil) != nil {
		t.Error("expected nil region for nil record")
	}
}
