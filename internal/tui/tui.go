// Package tui provides the Bubble Tea terminal front end for the
// ZoundZ Nation navigation layer: a scrollable home panel, artist
// panels fed by the router, a loading placeholder and the preload
// indicator.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zoundznation/zoundznation.github.io/internal/config"
	"github.com/zoundznation/zoundznation.github.io/internal/nav"
	"github.com/zoundznation/zoundznation.github.io/internal/site"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	artistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	noticeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// viewState mirrors the router's panel state on the terminal side.
// It is driven exclusively by surface messages, never set directly
// by key handling, so the display always matches what the most
// recent router transition intended.
type viewState int

const (
	viewHome viewState = iota
	viewLoading
	viewArtist
	viewLeaving
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	router    *nav.Router
	preloader *nav.Preloader
	stack     *nav.Stack
	histSync  *nav.HistorySync

	artists         []site.Artist
	initialFragment string
	verbose         bool

	state      viewState
	artist     site.Artist
	body       string
	bodyScroll int

	scroll      int
	cursor      int
	preloadSeen bool

	spinner spinner.Model
	notice  string
	logs    []nav.Event

	width  int
	height int
}

func newModel(ctx context.Context, cancel context.CancelFunc, router *nav.Router, preloader *nav.Preloader, stack *nav.Stack, histSync *nav.HistorySync, catalog *site.Catalog, initialFragment string, verbose bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		ctx:             ctx,
		cancel:          cancel,
		router:          router,
		preloader:       preloader,
		stack:           stack,
		histSync:        histSync,
		artists:         catalog.Artists(),
		initialFragment: initialFragment,
		verbose:         verbose,
		state:           viewHome,
		spinner:         sp,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.initialFragment != "" {
		cmds = append(cmds, m.deepLinkCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if cmd := m.checkArtistsVisible(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case loadingMsg:
		m.state = viewLoading
		m.artist = msg.artist

	case artistMsg:
		m.state = viewArtist
		m.artist = msg.artist
		m.body = msg.body
		m.bodyScroll = 0

	case leavingMsg:
		m.state = viewLeaving

	case homeMsg:
		m.state = viewHome

	case noticeMsg:
		m.notice = msg.text

	case noticeClearMsg:
		m.notice = ""

	case eventMsg:
		m.logs = append(m.logs, msg.event)
		// Keep only the most recent entries.
		if len(m.logs) > 6 {
			m.logs = m.logs[len(m.logs)-6:]
		}

	case navDoneMsg:
		// Effects already arrived through surface messages.
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.cancel()
		return m, tea.Quit

	case "up", "k":
		if m.state == viewHome && m.scroll > 0 {
			m.scroll--
		}
		if m.state == viewArtist && m.bodyScroll > 0 {
			m.bodyScroll--
		}

	case "down", "j":
		if m.state == viewHome {
			if m.scroll < len(m.homeLayout().lines)-1 {
				m.scroll++
			}
			return m, m.checkArtistsVisible()
		}
		if m.state == viewArtist {
			m.bodyScroll++
		}

	case "tab":
		if m.state == viewHome {
			m.cursor = (m.cursor + 1) % len(m.artists)
		}

	case "shift+tab":
		if m.state == viewHome {
			m.cursor = (m.cursor + len(m.artists) - 1) % len(m.artists)
		}

	case "enter":
		if m.state == viewHome && len(m.artists) > 0 {
			return m, tea.Batch(m.openArtistCmd(m.artists[m.cursor].Key), m.spinner.Tick)
		}

	case "backspace", "left":
		return m, m.backCmd()

	case "right":
		return m, m.forwardCmd()

	case "h":
		if m.state == viewArtist || m.state == viewLoading {
			return m, m.goHomeCmd()
		}
	}

	return m, nil
}

// checkArtistsVisible fires the preload trigger the first time the
// artists section scrolls into view, the terminal analog of an
// intersection observer. The Preloader carries its own once-guard;
// preloadSeen only avoids spawning redundant commands.
func (m *Model) checkArtistsVisible() tea.Cmd {
	if m.preloadSeen || m.height == 0 {
		return nil
	}
	layout := m.homeLayout()
	if m.scroll+m.contentHeight() > layout.artistsHeader {
		m.preloadSeen = true
		return tea.Batch(m.preloadCmd(), m.spinner.Tick)
	}
	return nil
}

func (m Model) contentHeight() int {
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

// Commands. Each drives the navigation layer in a background
// goroutine; every visible effect comes back as a surface message.

func (m Model) openArtistCmd(key string) tea.Cmd {
	return func() tea.Msg {
		m.router.Navigate(m.ctx, key, true)
		return navDoneMsg{}
	}
}

func (m Model) goHomeCmd() tea.Cmd {
	return func() tea.Msg {
		m.router.NavigateHome(m.ctx)
		return navDoneMsg{}
	}
}

func (m Model) backCmd() tea.Cmd {
	return func() tea.Msg {
		m.stack.Back()
		return navDoneMsg{}
	}
}

func (m Model) forwardCmd() tea.Cmd {
	return func() tea.Msg {
		m.stack.Forward()
		return navDoneMsg{}
	}
}

func (m Model) preloadCmd() tea.Cmd {
	return func() tea.Msg {
		m.preloader.Trigger(m.ctx)
		return navDoneMsg{}
	}
}

func (m Model) deepLinkCmd() tea.Cmd {
	return func() tea.Msg {
		m.histSync.HandleInitialFragment(m.ctx, m.initialFragment)
		return navDoneMsg{}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("♪ ZOUNDZ NATION"))
	b.WriteString("\n")

	switch m.state {
	case viewHome:
		b.WriteString(m.viewHomePanel())
	case viewLoading:
		b.WriteString(m.viewLoadingPanel())
	case viewArtist:
		b.WriteString(m.viewArtistPanel())
	case viewLeaving:
		b.WriteString(dimStyle.Render("…"))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.spinner.View() + " " + m.notice))
		b.WriteString("\n")
	}

	if logs := m.renderLogs(); logs != "" {
		b.WriteString("\n")
		b.WriteString(logs)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

// homeLayout lays out the home panel's sections as lines and records
// where the artists section starts, for the visibility check.
type homeLayout struct {
	lines         []string
	artistsHeader int
}

func (m Model) homeLayout() homeLayout {
	var lines []string

	lines = append(lines,
		dimStyle.Render("Independent artists. Loud futures."),
		"",
		sectionStyle.Render("ABOUT"),
		"ZoundZ Nation is a collective of underground electronic",
		"artists releasing music on their own terms. Scroll down",
		"to meet the roster.",
		"",
		"Every artist page below is served from its own document",
		"and loaded into place without leaving this screen.",
		"",
	)

	artistsHeader := len(lines)
	lines = append(lines, sectionStyle.Render("ARTISTS"))
	for i, a := range m.artists {
		marker := "  "
		style := artistStyle
		if i == m.cursor {
			marker = "› "
			style = selectedStyle
		}
		lines = append(lines, marker+style.Render(fmt.Sprintf("♪ %s", a.DisplayName)))
	}

	lines = append(lines,
		"",
		sectionStyle.Render("CONTACT"),
		dimStyle.Render("booking@zoundznation.github.io"),
	)

	return homeLayout{lines: lines, artistsHeader: artistsHeader}
}

func (m Model) viewHomePanel() string {
	layout := m.homeLayout()
	lines := layout.lines

	start := m.scroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	end := start + m.contentHeight()
	if end > len(lines) {
		end = len(lines)
	}

	return strings.Join(lines[start:end], "\n") + "\n"
}

func (m Model) viewLoadingPanel() string {
	var b strings.Builder
	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Loading %s...", m.artist.DisplayName)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewArtistPanel() string {
	var b strings.Builder

	b.WriteString(selectedStyle.Render(m.artist.DisplayName))
	b.WriteString("\n")
	// Contextual back control, re-installed with every injected page.
	b.WriteString(dimStyle.Render("‹ back to the site (backspace)"))
	b.WriteString("\n\n")

	width := m.width - 2
	if width < 20 {
		width = 76
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(m.body)
	lines := strings.Split(wrapped, "\n")

	start := m.bodyScroll
	if start > len(lines)-1 {
		start = len(lines) - 1
		if start < 0 {
			start = 0
		}
	}
	end := start + m.contentHeight()
	if end > len(lines) {
		end = len(lines)
	}

	b.WriteString(strings.Join(lines[start:end], "\n"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, e := range m.logs {
		if e.Level == nav.LevelVerbose && !m.verbose {
			continue
		}
		var style lipgloss.Style
		prefix := "•"
		switch e.Level {
		case nav.LevelError:
			style = errorStyle
			prefix = "✗"
		case nav.LevelWarning:
			style = warningStyle
			prefix = "!"
		case nav.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case nav.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + e.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case viewHome:
		return "↑/↓: scroll • tab: pick artist • enter: open • ←/→: back/forward • q: quit"
	case viewLoading:
		return "←: back • q: quit"
	case viewArtist:
		return "↑/↓: scroll • backspace: back • →: forward • h: home • q: quit"
	}
	return "q: quit"
}

// Run starts the TUI application. initialFragment, when non-empty,
// is treated as the URL fragment the session was opened with
// ("#artist/<key>" deep links resolve after the first paint).
func Run(settings *config.Settings, catalog *site.Catalog, initialFragment string, verbose bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	surface := &teaSurface{}
	onEvent := nav.EventFunc(func(e nav.Event) {
		surface.emit(e)
	})

	cache := nav.NewPageCache()
	fetcher := site.NewFetcher(settings.RequestTimeout(), settings.UserAgent, settings.ContentMarker)
	stack := nav.NewStack()

	router := nav.NewRouter(nav.RouterConfig{
		Catalog:         catalog,
		Cache:           cache,
		Fetcher:         fetcher,
		Surface:         surface,
		History:         stack,
		TransitionDelay: settings.TransitionDelay(),
		OnEvent:         onEvent,
	})

	preloader := nav.NewPreloader(nav.PreloaderConfig{
		Catalog:       catalog,
		Cache:         cache,
		Fetcher:       fetcher,
		Indicator:     surface,
		NoticeDisplay: settings.PreloadNoticeDisplay(),
		NoticeFade:    settings.PreloadNoticeFade(),
		MaxConcurrent: settings.MaxConcurrentPreload,
		OnEvent:       onEvent,
	})

	histSync := nav.NewHistorySync(router, settings.DeepLinkDelay(), onEvent)
	stack.SetPopHandler(func(e nav.Entry) { histSync.HandlePop(ctx, e) })

	m := newModel(ctx, cancel, router, preloader, stack, histSync, catalog, initialFragment, verbose)
	p := tea.NewProgram(m, tea.WithAltScreen())
	surface.attach(p.Send)

	_, err := p.Run()
	return err
}
