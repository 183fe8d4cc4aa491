package tui

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// renderFragment converts a content fragment's markup into plain
// text for the artist panel: one paragraph per block element,
// headings uppercased, whitespace collapsed.
func renderFragment(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<div>" + fragment + "</div>"))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	var blocks []string
	doc.Find("h1, h2, h3, h4, p, li, blockquote").Each(func(_ int, sel *goquery.Selection) {
		// Skip containers whose text is contributed by a nested
		// block element already visited separately.
		if sel.Find("h1, h2, h3, h4, p, li, blockquote").Length() > 0 {
			return
		}
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if text == "" {
			return
		}
		switch goquery.NodeName(sel) {
		case "h1", "h2", "h3", "h4":
			text = strings.ToUpper(text)
		case "li":
			text = "• " + text
		}
		blocks = append(blocks, text)
	})

	if len(blocks) == 0 {
		// No block structure in the fragment; fall back to bare text.
		return strings.Join(strings.Fields(doc.Text()), " ")
	}

	return strings.Join(blocks, "\n\n")
}
