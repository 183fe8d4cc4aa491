package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Artist describes one artist sub-page of the site.
//
// The Key doubles as the URL fragment segment (#artist/<key>), the
// history state value and the page-cache key, so it must be unique
// and stable. SourceURL points at the full remote document the page
// content is extracted from.
type Artist struct {
	// Key is the short stable identifier for the artist page.
	Key string `yaml:"key"`

	// SourceURL is the location of the remote document containing
	// the artist's page content.
	SourceURL string `yaml:"url"`

	// DisplayName is the human-readable name used for titles and
	// history entries.
	DisplayName string `yaml:"name"`
}

// Catalog is the static route table: the fixed, ordered set of artist
// pages known at startup. It is immutable after construction.
type Catalog struct {
	artists []Artist
	byKey   map[string]Artist
}

// NewCatalog builds a Catalog from the given artists, preserving order.
//
// Returns an error if an artist has an empty key or source URL, or if
// two artists share a key.
func NewCatalog(artists []Artist) (*Catalog, error) {
	c := &Catalog{
		artists: make([]Artist, 0, len(artists)),
		byKey:   make(map[string]Artist, len(artists)),
	}

	for _, a := range artists {
		if a.Key == "" {
			return nil, fmt.Errorf("artist %q has an empty key", a.DisplayName)
		}
		if a.SourceURL == "" {
			return nil, fmt.Errorf("artist %q has no source URL", a.Key)
		}
		if _, exists := c.byKey[a.Key]; exists {
			return nil, fmt.Errorf("duplicate artist key %q", a.Key)
		}
		if a.DisplayName == "" {
			a.DisplayName = a.Key
		}
		c.artists = append(c.artists, a)
		c.byKey[a.Key] = a
	}

	return c, nil
}

// DefaultCatalog returns the built-in route table for the reference
// deployment.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Artist{
		{Key: "ravex", SourceURL: "https://zoundznation.github.io/ravex.html", DisplayName: "RaveX"},
		{Key: "inferno", SourceURL: "https://zoundznation.github.io/inferno.html", DisplayName: "Inferno"},
		{Key: "nova", SourceURL: "https://zoundznation.github.io/nova.html", DisplayName: "Nova"},
	})
	if err != nil {
		// The built-in table is validated by tests; this cannot happen
		// at runtime.
		panic(err)
	}
	return c
}

// catalogFile is the on-disk YAML shape for a catalog override.
type catalogFile struct {
	Artists []Artist `yaml:"artists"`
}

// LoadCatalog reads a YAML route table from path.
//
// The file lists artists in display order:
//
//	artists:
//	  - key: ravex
//	    url: https://zoundznation.github.io/ravex.html
//	    name: RaveX
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(file.Artists) == 0 {
		return nil, fmt.Errorf("catalog %s lists no artists", path)
	}

	return NewCatalog(file.Artists)
}

// Lookup resolves a key against the route table.
func (c *Catalog) Lookup(key string) (Artist, bool) {
	a, ok := c.byKey[key]
	return a, ok
}

// Artists returns the artists in catalog order. The returned slice is
// a copy and may be modified by the caller.
func (c *Catalog) Artists() []Artist {
	out := make([]Artist, len(c.artists))
	copy(out, c.artists)
	return out
}

// Len returns the number of artists in the catalog.
func (c *Catalog) Len() int {
	return len(c.artists)
}
