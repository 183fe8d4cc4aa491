package nav

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoundznation/zoundznation.github.io/internal/site"
)

// State identifies which panel the Router considers active.
type State int

const (
	// StateHome shows the home panel.
	StateHome State = iota

	// StateLoading shows the loading placeholder while an artist's
	// content is being resolved. Loading is always interposed between
	// Home and Artist, even when the cache satisfies it instantly.
	StateLoading

	// StateArtist shows an artist panel with injected content.
	StateArtist
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateHome:
		return "home"
	case StateLoading:
		return "loading"
	case StateArtist:
		return "artist"
	default:
		return "unknown"
	}
}

// Fetcher resolves an artist's content fragment. Implemented by
// site.Fetcher; test doubles substitute it freely.
type Fetcher interface {
	FetchFragment(ctx context.Context, a site.Artist) (string, error)
}

// Surface is the set of panel touchpoints the Router drives. In the
// web front end these are DOM mutations; the terminal host maps them
// onto Bubble Tea messages.
type Surface interface {
	// EnterLoading hides the home panel and shows the loading
	// placeholder for the artist.
	EnterLoading(a site.Artist)

	// RenderArtist injects the fragment, activates the artist panel
	// (deactivating whichever panel was showing), scrolls to the top
	// and installs the contextual back control. The injected fragment
	// replaces any previously injected content wholesale.
	RenderArtist(a site.Artist, fragment string)

	// ExitArtist deactivates the artist panel. Its content is cleared
	// by the following RenderHome, after the fade pause.
	ExitArtist()

	// RenderHome restores the home panel.
	RenderHome()
}

type historyMode int

const (
	historyNone historyMode = iota
	historyPush
	historyReplace
)

// RouterConfig wires a Router's collaborators.
type RouterConfig struct {
	Catalog *site.Catalog
	Cache   *PageCache
	Fetcher Fetcher
	Surface Surface
	History History

	// TransitionDelay is the pause between hiding the outgoing panel
	// and attaching the incoming content, mirroring the CSS fade of
	// the web front end. Zero disables the pause.
	TransitionDelay time.Duration

	OnEvent EventFunc
}

// Router is the central navigation state machine: given a target
// key it resolves content (cache hit or on-demand fetch), performs
// the panel transition and keeps the session history in step.
//
// Every navigation bumps a generation counter; a resolution compares
// its captured generation before applying, so a superseded in-flight
// navigation completes without clobbering the newer one.
type Router struct {
	catalog         *site.Catalog
	cache           *PageCache
	fetcher         Fetcher
	surface         Surface
	history         History
	transitionDelay time.Duration
	onEvent         EventFunc

	mu         sync.Mutex
	state      State
	current    string
	generation uint64
}

// NewRouter creates a Router from cfg. A nil Cache gets a fresh
// empty one.
func NewRouter(cfg RouterConfig) *Router {
	if cfg.Cache == nil {
		cfg.Cache = NewPageCache()
	}
	return &Router{
		catalog:         cfg.Catalog,
		cache:           cfg.Cache,
		fetcher:         cfg.Fetcher,
		surface:         cfg.Surface,
		history:         cfg.History,
		transitionDelay: cfg.TransitionDelay,
		onEvent:         cfg.OnEvent,
		state:           StateHome,
	}
}

// Navigate resolves key against the route table and shows its artist
// panel. Unknown keys are a silent no-op, guarding against stale or
// malformed links.
//
// When pushHistory is set, the history entry is written before
// content resolution begins so the URL reflects the navigation
// immediately even on a slow fetch. A failed fetch abandons the
// transition without correcting history; the URL may then show an
// artist while the panel does not, which is an accepted limitation.
func (r *Router) Navigate(ctx context.Context, key string, pushHistory bool) {
	mode := historyNone
	if pushHistory {
		mode = historyPush
	}
	r.navigate(ctx, key, mode)
}

func (r *Router) navigate(ctx context.Context, key string, mode historyMode) {
	artist, ok := r.catalog.Lookup(key)
	if !ok {
		r.onEvent.emit(Event{Message: fmt.Sprintf("ignoring navigation to unknown artist %q", key), Level: LevelVerbose})
		return
	}

	gen := r.begin(artist.Key)

	switch mode {
	case historyPush:
		r.history.Push(entryFor(artist))
	case historyReplace:
		r.history.Replace(entryFor(artist))
	}

	// The cache is consulted before any panel mutation. A hit skips
	// the visible placeholder and the fade pause; the loading state
	// is entered and immediately satisfied.
	if fragment, hit := r.cache.Get(artist.Key); hit {
		r.apply(gen, artist, fragment)
		return
	}

	r.surface.EnterLoading(artist)

	fragment, err := r.fetcher.FetchFragment(ctx, artist)
	if err != nil {
		// Abandon the transition. The placeholder stays until a later
		// successful navigation overwrites it, and the cache stays
		// unpopulated so the fetch is naturally retried next time.
		r.onEvent.emit(Event{Message: fmt.Sprintf("navigation to %s failed: %v", artist.Key, err), Level: LevelWarning})
		return
	}
	r.cache.Set(artist.Key, fragment)

	r.wait(ctx, r.transitionDelay)
	r.apply(gen, artist, fragment)
}

// NavigateHome rewrites history to the bare path and restores the
// home panel.
func (r *Router) NavigateHome(ctx context.Context) {
	gen := r.bump()
	r.history.Push(Entry{})
	r.showHome(ctx, gen)
}

// restoreHome performs the home display logic without touching
// history; used when replaying a popped home entry.
func (r *Router) restoreHome(ctx context.Context) {
	r.showHome(ctx, r.bump())
}

// Current returns the active state and, for Loading/Artist, the
// artist key it concerns.
func (r *Router) Current() (State, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.current
}

func (r *Router) begin(key string) uint64 {
	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.state = StateLoading
	r.current = key
	r.mu.Unlock()
	return gen
}

func (r *Router) bump() uint64 {
	r.mu.Lock()
	r.generation++
	gen := r.generation
	r.mu.Unlock()
	return gen
}

// apply finishes an artist transition unless a newer navigation has
// started since gen was captured.
func (r *Router) apply(gen uint64, a site.Artist, fragment string) {
	r.mu.Lock()
	if gen != r.generation {
		r.mu.Unlock()
		r.onEvent.emit(Event{Message: fmt.Sprintf("discarding superseded navigation to %s", a.Key), Level: LevelVerbose})
		return
	}
	r.state = StateArtist
	r.current = a.Key
	r.mu.Unlock()

	r.surface.RenderArtist(a, fragment)
	r.onEvent.emit(Event{Message: fmt.Sprintf("showing %s", a.DisplayName), Level: LevelInfo})
}

func (r *Router) showHome(ctx context.Context, gen uint64) {
	r.surface.ExitArtist()
	r.wait(ctx, r.transitionDelay)

	r.mu.Lock()
	if gen != r.generation {
		r.mu.Unlock()
		return
	}
	r.state = StateHome
	r.current = ""
	r.mu.Unlock()

	r.surface.RenderHome()
}

func (r *Router) wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}
