package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zoundznation/zoundznation.github.io/internal/nav"
	"github.com/zoundznation/zoundznation.github.io/internal/site"
)

// Message types delivered by the navigation layer into the Bubble
// Tea event loop. The teaSurface translates Surface and Indicator
// calls into these; Update applies them to the model.
type (
	// loadingMsg shows the loading placeholder for an artist.
	loadingMsg struct{ artist site.Artist }

	// artistMsg activates the artist panel with rendered content.
	artistMsg struct {
		artist site.Artist
		body   string
	}

	// leavingMsg deactivates the artist panel; its content clears
	// when the following homeMsg lands after the fade pause.
	leavingMsg struct{}

	// homeMsg restores the home panel.
	homeMsg struct{}

	// noticeMsg shows or replaces the preload indicator text.
	noticeMsg struct{ text string }

	// noticeClearMsg removes the preload indicator.
	noticeClearMsg struct{}

	// eventMsg carries a navigation event into the log strip.
	eventMsg struct{ event nav.Event }

	// navDoneMsg marks the end of a command that drove the router;
	// all visible effects arrive separately via surface messages.
	navDoneMsg struct{}
)

// teaSurface adapts nav.Surface and nav.Indicator onto program
// messages. Router and preloader calls run in command goroutines;
// the program serializes the resulting messages, which is the
// terminal analog of DOM mutations applied on the event loop.
type teaSurface struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

// attach wires the program's Send once it exists. Calls arriving
// before attach are dropped; nothing navigates before Run.
func (s *teaSurface) attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *teaSurface) post(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

func (s *teaSurface) EnterLoading(a site.Artist) {
	s.post(loadingMsg{artist: a})
}

func (s *teaSurface) RenderArtist(a site.Artist, fragment string) {
	s.post(artistMsg{artist: a, body: renderFragment(fragment)})
}

func (s *teaSurface) ExitArtist() {
	s.post(leavingMsg{})
}

func (s *teaSurface) RenderHome() {
	s.post(homeMsg{})
}

func (s *teaSurface) ShowNotice(message string) {
	s.post(noticeMsg{text: message})
}

func (s *teaSurface) ReplaceNotice(message string) {
	s.post(noticeMsg{text: message})
}

func (s *teaSurface) HideNotice() {
	s.post(noticeClearMsg{})
}

func (s *teaSurface) emit(e nav.Event) {
	s.post(eventMsg{event: e})
}
