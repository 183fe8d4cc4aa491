package tui

import (
	"strings"
	"testing"
)

func TestRenderFragment(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     []string
	}{
		{
			name:     "heading and paragraph",
			fragment: `<h2>RaveX</h2><p>Hard techno  from the docks.</p>`,
			want:     []string{"RAVEX", "Hard techno from the docks."},
		},
		{
			name:     "list items get bullets",
			fragment: `<ul><li>Warehouse EP</li><li>Dockside LP</li></ul>`,
			want:     []string{"• Warehouse EP", "• Dockside LP"},
		},
		{
			name:     "no block structure falls back to text",
			fragment: `plain <b>text</b> fragment`,
			want:     []string{"plain text fragment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderFragment(tt.fragment)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("renderFragment() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestRenderFragment_SkipsNestedContainers(t *testing.T) {
	got := renderFragment(`<li><p>only once</p></li>`)
	if strings.Count(got, "only once") != 1 {
		t.Errorf("nested block text duplicated: %q", got)
	}
}
