package nav

import (
	"context"
	"fmt"
	"time"

	"github.com/zoundznation/zoundznation.github.io/internal/site"
)

// HistorySync bridges host navigation events into Router calls: it
// replays restored back/forward entries and resolves the initial
// deep link.
type HistorySync struct {
	router        *Router
	deepLinkDelay time.Duration
	onEvent       EventFunc
}

// NewHistorySync creates a HistorySync around router. deepLinkDelay
// is the pause before an initial deep link is resolved, giving the
// host time to finish its first paint.
func NewHistorySync(router *Router, deepLinkDelay time.Duration, onEvent EventFunc) *HistorySync {
	return &HistorySync{
		router:        router,
		deepLinkDelay: deepLinkDelay,
		onEvent:       onEvent,
	}
}

// HandlePop replays a restored history entry without re-pushing it,
// so back/forward never duplicate stack entries. A home entry runs
// the home display logic directly; home is the implicit root state
// and gets no redundant history write.
func (s *HistorySync) HandlePop(ctx context.Context, e Entry) {
	if e.IsHome() {
		s.router.restoreHome(ctx)
		return
	}
	s.router.navigate(ctx, e.Artist, historyNone)
}

// HandleInitialFragment resolves a deep link from the initial URL
// fragment. A fragment addressing a known artist waits the deep-link
// delay, then replaces the current history entry (never pushes) and
// performs the artist transition, so the root entry stays the only
// one on the stack. Reports whether a navigation ran.
func (s *HistorySync) HandleInitialFragment(ctx context.Context, raw string) bool {
	key, ok := site.ParseFragment(raw)
	if !ok {
		return false
	}
	if _, known := s.router.catalog.Lookup(key); !known {
		s.onEvent.emit(Event{Message: fmt.Sprintf("ignoring deep link to unknown artist %q", key), Level: LevelVerbose})
		return false
	}

	if s.deepLinkDelay > 0 {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(s.deepLinkDelay):
		}
	}

	s.router.navigate(ctx, key, historyReplace)
	return true
}
