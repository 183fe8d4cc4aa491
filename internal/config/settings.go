package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Settings holds all configuration options.
type Settings struct {
	// Request settings
	UserAgent         string `json:"user_agent"`
	RequestTimeoutSec int    `json:"request_timeout_sec"`

	// ContentMarker is the class carried by the content element of
	// every fetched artist document.
	ContentMarker string `json:"content_marker"`

	// Transition timing (milliseconds)
	TransitionDelayMS int `json:"transition_delay_ms"`
	DeepLinkDelayMS   int `json:"deep_link_delay_ms"`

	// Preload settings
	PreloadNoticeDisplayMS int `json:"preload_notice_display_ms"`
	PreloadNoticeFadeMS    int `json:"preload_notice_fade_ms"`
	MaxConcurrentPreload   int `json:"max_concurrent_preload"`

	// CatalogPath optionally points at a YAML route table overriding
	// the built-in artist catalog.
	CatalogPath string `json:"catalog_path"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		UserAgent:         "ZoundZNavigator",
		RequestTimeoutSec: 20,

		ContentMarker: "page-content",

		TransitionDelayMS: 300,
		DeepLinkDelayMS:   100,

		PreloadNoticeDisplayMS: 1500,
		PreloadNoticeFadeMS:    300,
		MaxConcurrentPreload:   0,
	}
}

// Load reads settings from a JSON file. A missing file yields the
// defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RequestTimeout returns the fetch timeout as a duration.
func (s *Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSec) * time.Second
}

// TransitionDelay returns the panel fade pause as a duration.
func (s *Settings) TransitionDelay() time.Duration {
	return time.Duration(s.TransitionDelayMS) * time.Millisecond
}

// DeepLinkDelay returns the first-paint pause applied before an
// initial deep link resolves.
func (s *Settings) DeepLinkDelay() time.Duration {
	return time.Duration(s.DeepLinkDelayMS) * time.Millisecond
}

// PreloadNoticeDisplay returns how long the preload completion
// message stays fully visible.
func (s *Settings) PreloadNoticeDisplay() time.Duration {
	return time.Duration(s.PreloadNoticeDisplayMS) * time.Millisecond
}

// PreloadNoticeFade returns the fade-out duration of the preload
// notice.
func (s *Settings) PreloadNoticeFade() time.Duration {
	return time.Duration(s.PreloadNoticeFadeMS) * time.Millisecond
}
