package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultContentMarker is the class every fetched artist document is
// expected to carry on exactly one element; everything outside that
// element is ignored.
const DefaultContentMarker = "page-content"

// ErrContentMissing is returned when a document was fetched but no
// element carries the content marker class.
//
// This typically occurs when:
//   - The source URL points at a page that is not an artist page
//   - The remote markup changed and dropped the marker
var ErrContentMissing = errors.New("no content marker element in document")

// Fetcher retrieves a remote artist document and extracts its page
// content fragment.
//
// A fragment is the serialized inner HTML of the single element
// bearing the content marker class. Fetching is stateless: the
// Fetcher holds no cache and performs no retries, so a failed fetch
// can simply be attempted again later.
//
// Example usage:
//
//	fetcher := site.NewFetcher(20*time.Second, "ZoundZNavigator", site.DefaultContentMarker)
//
//	fragment, err := fetcher.FetchFragment(ctx, artist)
//	if errors.Is(err, site.ErrContentMissing) {
//	    // document loaded but carries no page content
//	}
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	marker     string
}

// NewFetcher creates a Fetcher with the given request timeout,
// User-Agent header and content marker class. Zero values fall back
// to a 20 second timeout and DefaultContentMarker.
func NewFetcher(timeout time.Duration, userAgent, marker string) *Fetcher {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if marker == "" {
		marker = DefaultContentMarker
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
		marker:     marker,
	}
}

// FetchFragment retrieves the artist's source document and returns
// the serialized subtree of the first element carrying the content
// marker class.
//
// Returns an error if:
//   - The request fails or the response status is not 200 OK
//   - The body cannot be parsed as a document
//   - No element carries the marker (ErrContentMissing)
func (f *Fetcher) FetchFragment(ctx context.Context, a Artist) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.SourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", a.Key, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", a.Key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: HTTP %d: %s", a.Key, resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", a.Key, err)
	}

	sel := doc.Find("." + f.marker).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("%s: %w", a.Key, ErrContentMissing)
	}

	fragment, err := sel.Html()
	if err != nil {
		return "", fmt.Errorf("serialize %s: %w", a.Key, err)
	}

	return strings.TrimSpace(fragment), nil
}
