package nav

import (
	"context"
	"testing"
)

func newTestPreloader(t *testing.T, fetcher Fetcher, cache *PageCache, indicator Indicator) *Preloader {
	t.Helper()
	return NewPreloader(PreloaderConfig{
		Catalog:   testCatalog(t),
		Cache:     cache,
		Fetcher:   fetcher,
		Indicator: indicator,
	})
}

func TestPreloader_RunsAtMostOnce(t *testing.T) {
	fetcher := newStubFetcher()
	cache := NewPageCache()
	p := newTestPreloader(t, fetcher, cache, nil)

	ctx := context.Background()
	if !p.Trigger(ctx) {
		t.Fatal("first Trigger = false, want true")
	}
	if p.Trigger(ctx) {
		t.Error("second Trigger = true, want false")
	}

	if got := fetcher.count(); got != 3 {
		t.Errorf("fetch calls = %d, want 3 (one bulk pass)", got)
	}
	if got := p.Phase(); got != PreloadComplete {
		t.Errorf("Phase() = %v, want complete", got)
	}
}

func TestPreloader_PopulatesCache(t *testing.T) {
	fetcher := newStubFetcher()
	cache := NewPageCache()
	p := newTestPreloader(t, fetcher, cache, nil)

	p.Trigger(context.Background())

	for _, key := range []string{"ravex", "inferno", "nova"} {
		if _, ok := cache.Get(key); !ok {
			t.Errorf("cache missing entry for %s", key)
		}
	}
}

func TestPreloader_FailureIsolation(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.fail["inferno"] = errBoom
	cache := NewPageCache()
	p := newTestPreloader(t, fetcher, cache, nil)

	p.Trigger(context.Background())

	// All fetches settle; one failure never aborts the others.
	if got := fetcher.count(); got != 3 {
		t.Errorf("fetch calls = %d, want 3", got)
	}
	for _, key := range []string{"ravex", "nova"} {
		if _, ok := cache.Get(key); !ok {
			t.Errorf("cache missing entry for %s", key)
		}
	}
	if _, ok := cache.Get("inferno"); ok {
		t.Error("failed entry must stay uncached")
	}
	if got := p.Phase(); got != PreloadComplete {
		t.Errorf("Phase() = %v, want complete", got)
	}
}

func TestPreloader_SkipsWarmEntries(t *testing.T) {
	fetcher := newStubFetcher()
	cache := NewPageCache()
	cache.Set("ravex", "<p>already here</p>")
	p := newTestPreloader(t, fetcher, cache, nil)

	p.Trigger(context.Background())

	if got := fetcher.count(); got != 2 {
		t.Errorf("fetch calls = %d, want 2", got)
	}
	if fragment, _ := cache.Get("ravex"); fragment != "<p>already here</p>" {
		t.Errorf("warm entry was overwritten: %q", fragment)
	}
}

func TestPreloader_IndicatorLifecycle(t *testing.T) {
	fetcher := newStubFetcher()
	indicator := &recordingIndicator{}
	p := newTestPreloader(t, fetcher, NewPageCache(), indicator)

	p.Trigger(context.Background())

	// Zero display and fade durations remove the notice immediately
	// after the completion message.
	assertSequence(t, indicator.sequence(), []string{
		"show:Loading artist pages...",
		"replace:All pages ready",
		"hide",
	})
}
