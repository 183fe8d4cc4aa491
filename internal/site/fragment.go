package site

import "strings"

// fragmentPrefix is the URL-fragment namespace for artist views.
// An artist view is addressed as "#artist/<key>"; the home view is
// the bare path with no fragment.
const fragmentPrefix = "artist/"

// FragmentFor returns the URL fragment addressing an artist view,
// including the leading "#".
func FragmentFor(key string) string {
	return "#" + fragmentPrefix + key
}

// ParseFragment extracts the artist key from a URL fragment.
//
// Both "#artist/ravex" and "artist/ravex" forms are accepted, since
// hosts differ in whether they strip the leading "#". Returns false
// for the empty fragment, fragments outside the artist namespace,
// and the bare "artist/" prefix.
func ParseFragment(raw string) (string, bool) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if !strings.HasPrefix(raw, fragmentPrefix) {
		return "", false
	}
	key := raw[len(fragmentPrefix):]
	if key == "" || strings.Contains(key, "/") {
		return "", false
	}
	return key, true
}
