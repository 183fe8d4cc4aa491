package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zoundznation/zoundznation.github.io/internal/config"
	"github.com/zoundznation/zoundznation.github.io/internal/nav"
	"github.com/zoundznation/zoundznation.github.io/internal/site"
)

func main() {
	// Command line flags
	var (
		artistFlag   = flag.String("artist", "", "Artist key to navigate to (on-demand fetch path)")
		preloadFlag  = flag.Bool("preload", false, "Warm the page cache with every known artist page")
		fragmentFlag = flag.String("fragment", "", `Resolve an initial URL fragment, e.g. "#artist/inferno"`)
		configFlag   = flag.String("config", "", "Path to config file")
		catalogFlag  = flag.String("catalog", "", "Path to a YAML artist catalog")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag   = flag.Bool("dry-run", false, "List the catalog without fetching anything")
	)

	flag.Parse()

	if *artistFlag == "" && !*preloadFlag && *fragmentFlag == "" && !*dryRunFlag {
		fmt.Println("ZoundZ Nation navigator - resolve artist pages from the terminal")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  zoundz-nav -artist <key> [options]")
		fmt.Println("  zoundz-nav -preload [options]")
		fmt.Println("  zoundz-nav -fragment \"#artist/<key>\" [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: zoundz-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	catalogPath := settings.CatalogPath
	if *catalogFlag != "" {
		catalogPath = *catalogFlag
	}
	catalog := site.DefaultCatalog()
	if catalogPath != "" {
		var err error
		catalog, err = site.LoadCatalog(catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
			os.Exit(1)
		}
	}

	if *dryRunFlag {
		fmt.Printf("♪ %d artists in the catalog:\n", catalog.Len())
		for _, a := range catalog.Artists() {
			fmt.Printf("  %-10s %s → %s\n", a.Key, site.FragmentFor(a.Key), a.SourceURL)
		}
		return
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	onEvent := nav.EventFunc(func(event nav.Event) {
		if event.Level == nav.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := "   "
		switch event.Level {
		case nav.LevelError:
			prefix = "✗ "
		case nav.LevelWarning:
			prefix = "! "
		case nav.LevelSuccess:
			prefix = "✓ "
		case nav.LevelInfo:
			prefix = "› "
		}

		fmt.Println(prefix + event.Message)
	})

	cache := nav.NewPageCache()
	fetcher := site.NewFetcher(settings.RequestTimeout(), settings.UserAgent, settings.ContentMarker)
	stack := nav.NewStack()
	surface := consoleSurface{}

	router := nav.NewRouter(nav.RouterConfig{
		Catalog: catalog,
		Cache:   cache,
		Fetcher: fetcher,
		Surface: surface,
		History: stack,
		// Headless runs have nothing to fade.
		TransitionDelay: 0,
		OnEvent:         onEvent,
	})

	preloader := nav.NewPreloader(nav.PreloaderConfig{
		Catalog:       catalog,
		Cache:         cache,
		Fetcher:       fetcher,
		Indicator:     surface,
		MaxConcurrent: settings.MaxConcurrentPreload,
		OnEvent:       onEvent,
	})

	histSync := nav.NewHistorySync(router, settings.DeepLinkDelay(), onEvent)
	stack.SetPopHandler(func(e nav.Entry) { histSync.HandlePop(ctx, e) })

	fmt.Println("♪ ZoundZ Nation navigator")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━")

	if *preloadFlag {
		preloader.Trigger(ctx)
		fmt.Printf("\n%d/%d pages cached\n", cache.Len(), catalog.Len())
		if cache.Len() < catalog.Len() {
			os.Exit(1)
		}
		return
	}

	if *fragmentFlag != "" {
		if !histSync.HandleInitialFragment(ctx, *fragmentFlag) {
			fmt.Fprintf(os.Stderr, "Fragment %q does not address a known artist\n", *fragmentFlag)
			os.Exit(1)
		}
		return
	}

	router.Navigate(ctx, *artistFlag, true)
	if state, key := router.Current(); state != nav.StateArtist || key != *artistFlag {
		// Either an unknown key (silent no-op) or a failed fetch.
		os.Exit(1)
	}
}

// consoleSurface renders panel transitions as plain console output.
type consoleSurface struct{}

func (consoleSurface) EnterLoading(a site.Artist) {
	fmt.Printf("… loading %s\n", a.DisplayName)
}

func (consoleSurface) RenderArtist(a site.Artist, fragment string) {
	fmt.Printf("\n━━━ %s ━━━\n", a.DisplayName)
	fmt.Println(fragment)
}

func (consoleSurface) ExitArtist() {
	fmt.Println("← leaving artist page")
}

func (consoleSurface) RenderHome() {
	fmt.Println("⌂ home")
}

func (consoleSurface) ShowNotice(message string) {
	fmt.Println("· " + message)
}

func (consoleSurface) ReplaceNotice(message string) {
	fmt.Println("· " + message)
}

func (consoleSurface) HideNotice() {}
