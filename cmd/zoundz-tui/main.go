package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zoundznation/zoundznation.github.io/internal/config"
	"github.com/zoundznation/zoundznation.github.io/internal/site"
	"github.com/zoundznation/zoundznation.github.io/internal/tui"
)

func main() {
	var (
		configFlag   = flag.String("config", "", "Path to config file")
		catalogFlag  = flag.String("catalog", "", "Path to a YAML artist catalog")
		fragmentFlag = flag.String("fragment", "", `Initial URL fragment, e.g. "#artist/inferno"`)
		verboseFlag  = flag.Bool("verbose", false, "Show verbose events in the log strip")
	)
	flag.Parse()

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

	if err := tui.Run(settings, catalog, *fragmentFlag, *verboseFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
