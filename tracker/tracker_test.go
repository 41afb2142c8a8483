package tracker

import (
	"sync"
	"testing"

	"github.com/goliatone/go-lookup-cache/model"
)

func TestTracker_RecordAndGet(t *testing.T) {
	tr := New(DefaultThreshold)

	for want := 1; want <= 3; want++ {
		if got, _ := tr.RecordAndGet(model.KindPlace, 7); got != want {
			t.Fatalf("RecordAndGet() call %d = %d, want %d", want, got, want)
		}
	}

	if got, _ := tr.RecordAndGet(model.KindRegion, 7); got != 1 {
		t.Errorf("expected kinds to be counted separately, got %d", got)
	}
	if got, _ := tr.RecordAndGet(model.KindPlace, 8); got != 1 {
		t.Errorf("expected ids to be counted separately, got %d", got)
	}
}

func TestTracker_SetCachedKeyName_RequiresThreshold(t *testing.T) {
	tr := New(2)

	if tr.SetCachedKeyName(model.KindPlace, 7, 1, "Haag") {
		t.Error("expected untracked id to be rejected")
	}
	if _, ok := tr.CachedKeyName(model.KindPlace, 7); ok {
		t.Error("expected no name for untracked id")
	}
	if tr.Len() != 0 {
		t.Errorf("expected rejected promotion not to create an entry, got %d", tr.Len())
	}

	_, gen := tr.RecordAndGet(model.KindPlace, 7)
	if tr.SetCachedKeyName(model.KindPlace, 7, gen, "Haag") {
		t.Error("expected id below threshold to be rejected")
	}

	tr.RecordAndGet(model.KindPlace, 7)
	if !tr.SetCachedKeyName(model.KindPlace, 7, gen, "Haag") {
		t.Fatal("expected id at threshold to be accepted")
	}

	name, ok := tr.CachedKeyName(model.KindPlace, 7)
	if !ok || name != "Haag" {
		t.Errorf("CachedKeyName() = %q, %v", name, ok)
	}
}

func TestTracker_Forget(t *testing.T) {
	tr := New(2)
	tr.RecordAndGet(model.KindPlace, 7)
	_, gen := tr.RecordAndGet(model.KindPlace, 7)
	tr.SetCachedKeyName(model.KindPlace, 7, gen, "Haag")

	tr.Forget(model.KindPlace, 7)

	if _, ok := tr.CachedKeyName(model.KindPlace, 7); ok {
		t.Error("expected name to be cleared")
	}
	if got := tr.Count(model.KindPlace, 7); got != 0 {
		t.Errorf("expected count to be cleared, got %d", got)
	}
	if got, _ := tr.RecordAndGet(model.KindPlace, 7); got != 1 {
		t.Errorf("expected counting to restart at 1, got %d", got)
	}
}

func TestTracker_RecordAndGet_GenerationStableUntilForget(t *testing.T) {
	tr := New(2)

	_, first := tr.RecordAndGet(model.KindPlace, 7)
	if _, again := tr.RecordAndGet(model.KindPlace, 7); again != first {
		t.Errorf("generation changed without Forget: %d then %d", first, again)
	}
	if _, other := tr.RecordAndGet(model.KindPlace, 8); other == first {
		t.Error("expected distinct ids to get distinct generations")
	}

	tr.Forget(model.KindPlace, 7)
	if _, next := tr.RecordAndGet(model.KindPlace, 7); next == first {
		t.Error("expected a new generation after Forget")
	}
}

func TestTracker_SetCachedKeyName_RejectsEntryRecreatedAfterForget(t *testing.T) {
	tr := New(1)

	_, stale := tr.RecordAndGet(model.KindPlace, 7)
	tr.Forget(model.KindPlace, 7)
	_, fresh := tr.RecordAndGet(model.KindPlace, 7)

	if tr.SetCachedKeyName(model.KindPlace, 7, stale, "Haag") {
		t.Fatal("expected a name from before Forget to be rejected")
	}
	if _, ok := tr.CachedKeyName(model.KindPlace, 7); ok {
		t.Error("expected no name on the recreated entry")
	}
	if !tr.SetCachedKeyName(model.KindPlace, 7, fresh, "Haag") {
		t.Error("expected the current generation to be accepted")
	}
}

func TestTracker_ThresholdDefault(t *testing.T) {
	if got := New(0).Threshold(); got != DefaultThreshold {
		t.Errorf("Threshold() = %d, want %d", got, DefaultThreshold)
	}
	if got := New(5).Threshold(); got != 5 {
		t.Errorf("Threshold() = %d, want 5", got)
	}
}

func TestTracker_ConcurrentIncrements(t *testing.T) {
	tr := New(2)
	const workers = 16
	const perWorker = 500

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				tr.RecordAndGet(model.KindPlace, 7)
				tr.RecordAndGet(model.KindRegion, int64(w+1))
			}
		}(w)
	}
	wg.Wait()

	if got := tr.Count(model.KindPlace, 7); got != workers*perWorker {
		t.Errorf("lost increments: got %d, want %d", got, workers*perWorker)
	}
	if got := tr.Len(); got != workers+1 {
		t.Errorf("Len() = %d, want %d", got, workers+1)
	}
}
