package nav

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/zoundznation/zoundznation.github.io/internal/site"
)

func testCatalog(t *testing.T) *site.Catalog {
	t.Helper()
	c, err := site.NewCatalog([]site.Artist{
		{Key: "ravex", SourceURL: "https://example.com/ravex.html", DisplayName: "RaveX"},
		{Key: "inferno", SourceURL: "https://example.com/inferno.html", DisplayName: "Inferno"},
		{Key: "nova", SourceURL: "https://example.com/nova.html", DisplayName: "Nova"},
	})
	if err != nil {
		t.Fatalf("test catalog: %v", err)
	}
	return c
}

// stubFetcher serves canned fragments, counts calls, and can fail or
// block per key.
type stubFetcher struct {
	mu    sync.Mutex
	calls int
	fail  map[string]error
	gate  map[string]chan struct{}

	// started receives the key of every fetch as it begins, when set.
	started chan string
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		fail: make(map[string]error),
		gate: make(map[string]chan struct{}),
	}
}

func (f *stubFetcher) FetchFragment(ctx context.Context, a site.Artist) (string, error) {
	f.mu.Lock()
	f.calls++
	gate := f.gate[a.Key]
	failErr := f.fail[a.Key]
	f.mu.Unlock()

	if f.started != nil {
		f.started <- a.Key
	}
	if gate != nil {
		<-gate
	}
	if failErr != nil {
		return "", failErr
	}
	return "<p>page for " + a.Key + "</p>", nil
}

func (f *stubFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// recordingSurface captures the panel transitions the router drives.
type recordingSurface struct {
	mu    sync.Mutex
	calls []string
}

func (s *recordingSurface) record(call string) {
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
}

func (s *recordingSurface) EnterLoading(a site.Artist)         { s.record("loading:" + a.Key) }
func (s *recordingSurface) RenderArtist(a site.Artist, _ string) { s.record("artist:" + a.Key) }
func (s *recordingSurface) ExitArtist()                        { s.record("exit") }
func (s *recordingSurface) RenderHome()                        { s.record("home") }

func (s *recordingSurface) sequence() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *recordingSurface) renders(key string) int {
	n := 0
	for _, c := range s.sequence() {
		if c == "artist:"+key {
			n++
		}
	}
	return n
}

// recordingHistory captures Push/Replace calls in order.
type recordingHistory struct {
	mu      sync.Mutex
	writes  []string
	entries []Entry
}

func (h *recordingHistory) Push(e Entry) {
	h.mu.Lock()
	h.writes = append(h.writes, "push:"+e.Artist)
	h.entries = append(h.entries, e)
	h.mu.Unlock()
}

func (h *recordingHistory) Replace(e Entry) {
	h.mu.Lock()
	h.writes = append(h.writes, "replace:"+e.Artist)
	h.entries = append(h.entries, e)
	h.mu.Unlock()
}

func (h *recordingHistory) sequence() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.writes))
	copy(out, h.writes)
	return out
}

// recordingIndicator captures preload notice calls in order.
type recordingIndicator struct {
	mu    sync.Mutex
	calls []string
}

func (i *recordingIndicator) record(call string) {
	i.mu.Lock()
	i.calls = append(i.calls, call)
	i.mu.Unlock()
}

func (i *recordingIndicator) ShowNotice(msg string)    { i.record("show:" + msg) }
func (i *recordingIndicator) ReplaceNotice(msg string) { i.record("replace:" + msg) }
func (i *recordingIndicator) HideNotice()              { i.record("hide") }

func (i *recordingIndicator) sequence() []string {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]string, len(i.calls))
	copy(out, i.calls)
	return out
}

// fetcherFunc adapts a plain function to the Fetcher interface.
type fetcherFunc func(ctx context.Context, a site.Artist) (string, error)

func (f fetcherFunc) FetchFragment(ctx context.Context, a site.Artist) (string, error) {
	return f(ctx, a)
}

// historyFunc adapts a plain function to the History interface.
type historyFunc func(op string, e Entry)

func (h historyFunc) Push(e Entry)    { h("push", e) }
func (h historyFunc) Replace(e Entry) { h("replace", e) }

var errBoom = errors.New("boom")

func newTestRouter(t *testing.T, fetcher Fetcher, surface Surface, history History) (*Router, *PageCache) {
	t.Helper()
	cache := NewPageCache()
	r := NewRouter(RouterConfig{
		Catalog: testCatalog(t),
		Cache:   cache,
		Fetcher: fetcher,
		Surface: surface,
		History: history,
		OnEvent: nil,
	})
	return r, cache
}

func assertSequence(t *testing.T, got, want []string) {
	t.Helper()
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
}
