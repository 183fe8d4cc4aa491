package nav

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zoundznation/zoundznation.github.io/internal/site"
)

// PreloadPhase is the forward-only progression of the one-shot bulk
// preload. It never resets, guaranteeing the preload runs at most
// once per process lifetime.
type PreloadPhase int

const (
	PreloadNotStarted PreloadPhase = iota
	PreloadStarted
	PreloadComplete
)

// Indicator is the visible progress surface for the preload: a
// persistent notice shown while pages load, swapped for a completion
// message and removed after a fixed display-plus-fade duration.
type Indicator interface {
	ShowNotice(message string)
	ReplaceNotice(message string)
	HideNotice()
}

// PreloaderConfig wires a Preloader's collaborators.
type PreloaderConfig struct {
	Catalog *site.Catalog
	Cache   *PageCache
	Fetcher Fetcher

	// Indicator may be nil for headless hosts.
	Indicator Indicator

	// NoticeDisplay and NoticeFade control how long the completion
	// message stays visible before the indicator is removed.
	NoticeDisplay time.Duration
	NoticeFade    time.Duration

	// MaxConcurrent limits in-flight fetches; zero fetches every key
	// at once.
	MaxConcurrent int

	OnEvent EventFunc
}

// Preloader opportunistically warms the PageCache with every known
// artist page the first time the artists section becomes visible.
//
// It is a pure background optimization: the Router never depends on
// preload having completed and always falls back to an on-demand
// fetch regardless of phase.
type Preloader struct {
	catalog   *site.Catalog
	cache     *PageCache
	fetcher   Fetcher
	indicator Indicator
	onEvent   EventFunc

	noticeDisplay time.Duration
	noticeFade    time.Duration
	maxConcurrent int

	mu    sync.Mutex
	phase PreloadPhase
}

// NewPreloader creates a Preloader from cfg.
func NewPreloader(cfg PreloaderConfig) *Preloader {
	return &Preloader{
		catalog:       cfg.Catalog,
		cache:         cfg.Cache,
		fetcher:       cfg.Fetcher,
		indicator:     cfg.Indicator,
		onEvent:       cfg.OnEvent,
		noticeDisplay: cfg.NoticeDisplay,
		noticeFade:    cfg.NoticeFade,
		maxConcurrent: cfg.MaxConcurrent,
	}
}

// Trigger runs the bulk fetch the first time it is called and
// reports whether this call started it. Later calls are no-ops, so
// the visibility observer may fire as often as it likes.
//
// Every fetch is awaited regardless of individual failures: a failed
// entry is skipped with a warning and its cache slot stays empty for
// a later on-demand retry.
func (p *Preloader) Trigger(ctx context.Context) bool {
	p.mu.Lock()
	if p.phase != PreloadNotStarted {
		p.mu.Unlock()
		return false
	}
	p.phase = PreloadStarted
	p.mu.Unlock()

	if p.indicator != nil {
		p.indicator.ShowNotice("Loading artist pages...")
	}
	p.onEvent.emit(Event{Message: "preloading artist pages", Level: LevelVerbose})

	var loaded int32

	g, gctx := errgroup.WithContext(ctx)
	if p.maxConcurrent > 0 {
		g.SetLimit(p.maxConcurrent)
	}
	for _, artist := range p.catalog.Artists() {
		artist := artist
		g.Go(func() error {
			if _, ok := p.cache.Get(artist.Key); ok {
				atomic.AddInt32(&loaded, 1)
				return nil
			}
			fragment, err := p.fetcher.FetchFragment(gctx, artist)
			if err != nil {
				p.onEvent.emit(Event{Message: fmt.Sprintf("preload skipped %s: %v", artist.Key, err), Level: LevelWarning})
				return nil
			}
			p.cache.Set(artist.Key, fragment)
			atomic.AddInt32(&loaded, 1)
			p.onEvent.emit(Event{Message: fmt.Sprintf("preloaded %s", artist.Key), Level: LevelVerbose})
			return nil
		})
	}
	// No goroutine returns an error; Wait is purely the all-settle
	// join point.
	_ = g.Wait()

	p.mu.Lock()
	p.phase = PreloadComplete
	p.mu.Unlock()

	p.onEvent.emit(Event{
		Message: fmt.Sprintf("preloaded %d/%d artist pages", atomic.LoadInt32(&loaded), p.catalog.Len()),
		Level:   LevelSuccess,
	})

	if p.indicator != nil {
		p.indicator.ReplaceNotice("All pages ready")
		p.scheduleHide()
	}
	return true
}

// Phase returns the current preload phase.
func (p *Preloader) Phase() PreloadPhase {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.phase
}

func (p *Preloader) scheduleHide() {
	delay := p.noticeDisplay + p.noticeFade
	if delay <= 0 {
		p.indicator.HideNotice()
		return
	}
	// Fire-and-forget, matching the web front end's removal timer.
	time.AfterFunc(delay, p.indicator.HideNotice)
}
