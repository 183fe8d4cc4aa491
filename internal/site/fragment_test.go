package site

import "testing"

func TestFragmentFor(t *testing.T) {
	if got := FragmentFor("ravex"); got != "#artist/ravex" {
		t.Errorf("FragmentFor(ravex) = %q, want %q", got, "#artist/ravex")
	}
}

func TestParseFragment(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantKey string
		wantOK  bool
	}{
		{name: "with hash", raw: "#artist/ravex", wantKey: "ravex", wantOK: true},
		{name: "without hash", raw: "artist/inferno", wantKey: "inferno", wantOK: true},
		{name: "surrounding whitespace", raw: "  #artist/nova ", wantKey: "nova", wantOK: true},
		{name: "empty", raw: "", wantOK: false},
		{name: "bare hash", raw: "#", wantOK: false},
		{name: "outside namespace", raw: "#about", wantOK: false},
		{name: "prefix only", raw: "#artist/", wantOK: false},
		{name: "nested path", raw: "#artist/ravex/extra", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := ParseFragment(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseFragment(%q) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && key != tt.wantKey {
				t.Errorf("ParseFragment(%q) = %q, want %q", tt.raw, key, tt.wantKey)
			}
		})
	}
}
