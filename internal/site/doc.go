// Package site defines the static artist route table, the URL
// fragment contract and the content fetcher for the ZoundZ Nation
// site.
//
// # Catalog
//
// The Catalog is the fixed enumeration of artist pages known at
// startup. Use DefaultCatalog for the built-in table or LoadCatalog
// to read a YAML override:
//
//	catalog := site.DefaultCatalog()
//	artist, ok := catalog.Lookup("ravex")
//
// # URL contract
//
// Artist views are addressed by the URL fragment "#artist/<key>";
// the home view is the bare path:
//
//	site.FragmentFor("ravex")           // "#artist/ravex"
//	site.ParseFragment("#artist/ravex") // "ravex", true
//
// # Fetching
//
// Fetcher retrieves an artist's remote document and extracts the
// single element carrying the content marker class. Each source
// document is expected to contain exactly one such element:
//
//	fragment, err := fetcher.FetchFragment(ctx, artist)
package site
