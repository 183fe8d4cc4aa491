package nav

import (
	"context"
	"testing"
	"time"
)

func TestStack_PushBackForward(t *testing.T) {
	s := NewStack()

	var popped []Entry
	s.SetPopHandler(func(e Entry) { popped = append(popped, e) })

	s.Push(Entry{Artist: "ravex", Fragment: "#artist/ravex"})
	s.Push(Entry{Artist: "inferno", Fragment: "#artist/inferno"})

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (root + 2)", s.Len())
	}

	if !s.Back() {
		t.Fatal("Back() = false, want true")
	}
	if !s.Back() {
		t.Fatal("second Back() = false, want true")
	}
	if s.Back() {
		t.Error("Back() at root = true, want false")
	}
	if !s.Forward() {
		t.Fatal("Forward() = false, want true")
	}

	want := []Entry{
		{Artist: "ravex", Fragment: "#artist/ravex"},
		{},
		{Artist: "ravex", Fragment: "#artist/ravex"},
	}
	if len(popped) != len(want) {
		t.Fatalf("popped %d entries, want %d", len(popped), len(want))
	}
	for i := range want {
		if popped[i] != want[i] {
			t.Errorf("popped[%d] = %+v, want %+v", i, popped[i], want[i])
		}
	}
}

func TestStack_PushDiscardsForwardEntries(t *testing.T) {
	s := NewStack()
	s.Push(Entry{Artist: "ravex"})
	s.Push(Entry{Artist: "inferno"})
	s.Back()
	s.Push(Entry{Artist: "nova"})

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.Forward() {
		t.Error("Forward() after push = true, want false")
	}
	if got := s.Current(); got.Artist != "nova" {
		t.Errorf("Current().Artist = %q, want nova", got.Artist)
	}
}

func TestStack_ReplaceDoesNotGrow(t *testing.T) {
	s := NewStack()
	s.Replace(Entry{Artist: "inferno", Fragment: "#artist/inferno"})

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if got := s.Current(); got.Artist != "inferno" {
		t.Errorf("Current().Artist = %q, want inferno", got.Artist)
	}
}

// wireSession builds the full navigation wiring against a stub
// fetcher: stack, router and history sync, with pops replayed.
func wireSession(t *testing.T, fetcher Fetcher, deepLinkDelay time.Duration) (*Router, *Stack, *HistorySync, *recordingSurface) {
	t.Helper()

	surface := &recordingSurface{}
	stack := NewStack()
	cache := NewPageCache()

	router := NewRouter(RouterConfig{
		Catalog: testCatalog(t),
		Cache:   cache,
		Fetcher: fetcher,
		Surface: surface,
		History: stack,
	})
	sync := NewHistorySync(router, deepLinkDelay, nil)
	stack.SetPopHandler(func(e Entry) { sync.HandlePop(context.Background(), e) })

	return router, stack, sync, surface
}

func TestHistoryRoundTrip(t *testing.T) {
	fetcher := newStubFetcher()
	router, stack, _, _ := wireSession(t, fetcher, 0)

	router.Navigate(context.Background(), "ravex", true)

	if !stack.Back() {
		t.Fatal("Back() = false, want true")
	}
	state, _ := router.Current()
	if state != StateHome {
		t.Fatalf("after back: state = %v, want home", state)
	}

	if !stack.Forward() {
		t.Fatal("Forward() = false, want true")
	}
	state, key := router.Current()
	if state != StateArtist || key != "ravex" {
		t.Errorf("after forward: Current() = %v/%q, want artist/ravex", state, key)
	}

	// The cache was warm on replay; only the original navigation
	// fetched.
	if got := fetcher.count(); got != 1 {
		t.Errorf("fetch calls = %d, want 1", got)
	}

	// Replays never re-push: the stack still holds root + ravex.
	if stack.Len() != 2 {
		t.Errorf("stack Len() = %d, want 2", stack.Len())
	}
}

func TestHandlePop_HomeEntryWritesNoHistory(t *testing.T) {
	fetcher := newStubFetcher()
	router, stack, sync, surface := wireSession(t, fetcher, 0)

	router.Navigate(context.Background(), "inferno", true)
	sync.HandlePop(context.Background(), Entry{})

	state, _ := router.Current()
	if state != StateHome {
		t.Errorf("state = %v, want home", state)
	}
	if stack.Len() != 2 {
		t.Errorf("stack Len() = %d, want 2 (no redundant home entry)", stack.Len())
	}
	assertSequence(t, surface.sequence(), []string{"loading:inferno", "artist:inferno", "exit", "home"})
}

func TestDeepLink_ResolvesWithReplace(t *testing.T) {
	fetcher := newStubFetcher()
	router, stack, sync, _ := wireSession(t, fetcher, 5*time.Millisecond)

	ok := sync.HandleInitialFragment(context.Background(), "#artist/inferno")
	if !ok {
		t.Fatal("HandleInitialFragment = false, want true")
	}

	state, key := router.Current()
	if state != StateArtist || key != "inferno" {
		t.Errorf("Current() = %v/%q, want artist/inferno", state, key)
	}

	// Replace, never push: the root entry was rewritten in place.
	if stack.Len() != 1 {
		t.Errorf("stack Len() = %d, want 1", stack.Len())
	}
	if got := stack.Current(); got.Artist != "inferno" || got.Fragment != "#artist/inferno" {
		t.Errorf("Current() entry = %+v, want inferno deep link", got)
	}
}

func TestDeepLink_UnknownOrMalformedFragment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "unknown artist", raw: "#artist/doesnotexist"},
		{name: "outside namespace", raw: "#contact"},
		{name: "empty", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := newStubFetcher()
			router, stack, sync, surface := wireSession(t, fetcher, 0)

			if sync.HandleInitialFragment(context.Background(), tt.raw) {
				t.Error("HandleInitialFragment = true, want false")
			}
			if got := fetcher.count(); got != 0 {
				t.Errorf("fetch calls = %d, want 0", got)
			}
			if len(surface.sequence()) != 0 {
				t.Errorf("surface calls = %v, want none", surface.sequence())
			}
			state, _ := router.Current()
			if state != StateHome {
				t.Errorf("state = %v, want home", state)
			}
			if got := stack.Current(); !got.IsHome() {
				t.Errorf("stack entry = %+v, want home", got)
			}
		})
	}
}
