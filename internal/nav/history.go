package nav

import (
	"sync"

	"github.com/zoundznation/zoundznation.github.io/internal/site"
)

// Entry is one history record: the state object plus the URL
// fragment associated with it. An artist view carries the artist key
// and "#artist/<key>"; the home view is the zero Entry (bare path,
// empty state).
type Entry struct {
	Artist   string
	Fragment string
}

// IsHome reports whether the entry addresses the home view.
func (e Entry) IsHome() bool {
	return e.Artist == ""
}

func entryFor(a site.Artist) Entry {
	return Entry{Artist: a.Key, Fragment: site.FragmentFor(a.Key)}
}

// History is the subset of session-history operations the Router
// needs: writing entries. Reading entries back (back/forward) is the
// host's concern and is delivered to a HistorySync as pop events.
type History interface {
	// Push appends a new entry, discarding any forward entries.
	Push(Entry)

	// Replace overwrites the current entry without growing the stack.
	Replace(Entry)
}

// Stack is an in-memory session history standing in for the browser
// history in a terminal host. It starts with a single home entry,
// implements History for the Router, and offers Back/Forward which
// deliver the restored entry to the registered pop handler, the
// analog of a popstate event.
type Stack struct {
	mu      sync.Mutex
	entries []Entry
	index   int
	onPop   func(Entry)
}

// NewStack creates a Stack holding the implicit root home entry.
func NewStack() *Stack {
	return &Stack{entries: []Entry{{}}}
}

// SetPopHandler registers the callback invoked with the restored
// entry on every Back/Forward. Must be set before navigation starts.
func (s *Stack) SetPopHandler(fn func(Entry)) {
	s.mu.Lock()
	s.onPop = fn
	s.mu.Unlock()
}

// Push implements History.
func (s *Stack) Push(e Entry) {
	s.mu.Lock()
	s.entries = append(s.entries[:s.index+1], e)
	s.index = len(s.entries) - 1
	s.mu.Unlock()
}

// Replace implements History.
func (s *Stack) Replace(e Entry) {
	s.mu.Lock()
	s.entries[s.index] = e
	s.mu.Unlock()
}

// Back moves one entry backwards and delivers it to the pop handler.
// Returns false when already at the oldest entry.
func (s *Stack) Back() bool {
	s.mu.Lock()
	if s.index == 0 {
		s.mu.Unlock()
		return false
	}
	s.index--
	e := s.entries[s.index]
	fn := s.onPop
	s.mu.Unlock()

	if fn != nil {
		fn(e)
	}
	return true
}

// Forward moves one entry forwards and delivers it to the pop
// handler. Returns false when already at the newest entry.
func (s *Stack) Forward() bool {
	s.mu.Lock()
	if s.index >= len(s.entries)-1 {
		s.mu.Unlock()
		return false
	}
	s.index++
	e := s.entries[s.index]
	fn := s.onPop
	s.mu.Unlock()

	if fn != nil {
		fn(e)
	}
	return true
}

// Current returns the entry the stack points at.
func (s *Stack) Current() Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[s.index]
}

// Len returns the number of entries on the stack.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
