// Package config provides configuration management for the ZoundZ
// Nation navigation layer.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Duration accessors for the timing knobs
//
// # Default Settings
//
// Use DefaultSettings() to get the reference deployment's values:
//
//	settings := config.DefaultSettings()
//	// 300ms panel fade, 100ms deep-link pause,
//	// 1500ms + 300ms preload notice display and fade
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	if err != nil {
//	    // Missing files fall back to defaults; other errors are real.
//	}
//
// The optional CatalogPath field points at a YAML route table that
// overrides the built-in artist catalog (see site.LoadCatalog).
package config
