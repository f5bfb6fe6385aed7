package progress

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/ziadkadry99/learnsite/internal/kv"
)

func TestToggleScenario(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(kv.NewMemory(), "html", nil)

	if got := tr.Toggle(ctx, "b"); !got {
		t.Fatal("first toggle should mark complete")
	}
	if ids := tr.Set(ctx).IDs(); len(ids) != 1 || ids[0] != "b" {
		t.Fatalf("set = %v, want [b]", ids)
	}
	if got := tr.Toggle(ctx, "b"); got {
		t.Fatal("second toggle should clear")
	}
	if ids := tr.Set(ctx).IDs(); len(ids) != 0 {
		t.Fatalf("set = %v, want empty", ids)
	}
}

func TestSetsAreScopedPerCollection(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	NewTracker(store, "html", nil).Toggle(ctx, "intro")

	if NewTracker(store, "css", nil).IsComplete(ctx, "intro") {
		t.Error("css tracker should not see html completion")
	}
	if !NewTracker(store, "html", nil).IsComplete(ctx, "intro") {
		t.Error("html tracker should see its own completion")
	}
	raw, ok, _ := store.Get(ctx, "completed:html")
	if !ok || raw != `["intro"]` {
		t.Errorf("persisted value = %q, %v", raw, ok)
	}
}

func TestStaleIdsSurvive(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	store.Set(ctx, Key("html"), `["removed-lesson"]`)

	tr := NewTracker(store, "html", nil)
	tr.Toggle(ctx, "new")
	if !tr.IsComplete(ctx, "removed-lesson") {
		t.Error("stale id should be kept")
	}
}

func TestDegradesWhenStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(kv.Disabled{}, "html", nil)

	if len(tr.Set(ctx)) != 0 {
		t.Error("unavailable store should read as empty")
	}
	if !tr.Toggle(ctx, "a") {
		t.Error("toggle should still report the requested state")
	}
	if tr.IsComplete(ctx, "a") {
		t.Error("nothing should have been persisted")
	}
}

func TestCorruptValueReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	store.Set(ctx, Key("html"), `{not json`)
	if got := NewTracker(store, "html", nil).Set(ctx); len(got) != 0 {
		t.Errorf("corrupt set = %v, want empty", got)
	}
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()
		initial := rapid.SliceOf(rapid.StringMatching(`[a-z]{1,4}`)).Draw(rt, "initial")
		id := rapid.StringMatching(`[a-z]{1,4}`).Draw(rt, "id")

		store := kv.NewMemory()
		tr := NewTracker(store, "c", nil)
		for _, x := range initial {
			if !tr.IsComplete(ctx, x) {
				tr.Toggle(ctx, x)
			}
		}
		before := tr.IsComplete(ctx, id)
		tr.Toggle(ctx, id)
		tr.Toggle(ctx, id)
		if after := tr.IsComplete(ctx, id); after != before {
			rt.Fatalf("membership of %q changed: %v -> %v", id, before, after)
		}
	})
}

// slowStore widens the window between reading and writing a set.
type slowStore struct {
	*kv.Memory
	delay time.Duration
}

func (s slowStore) Get(ctx context.Context, key string) (string, bool, error) {
	time.Sleep(s.delay)
	return s.Memory.Get(ctx, key)
}

func TestConcurrentTogglesKeepEveryUpdate(t *testing.T) {
	ctx := context.Background()
	store := slowStore{Memory: kv.NewMemory(), delay: 20 * time.Millisecond}

	ids := []string{"a", "b", "c", "d"}
	var wg sync.WaitGroup
	for _, id := range ids {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			NewTracker(store, "html", nil).Toggle(ctx, id)
		}()
	}
	wg.Wait()

	got := NewTracker(store, "html", nil).Set(ctx).IDs()
	if strings.Join(got, ",") != "a,b,c,d" {
		t.Errorf("after concurrent toggles set = %v, want %v", got, ids)
	}
}
