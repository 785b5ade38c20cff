package exporters

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mrlokans/pocket2pinboard/internal/entities"
)

// extractTitle pulls the visible anchor text out of a document that
// contains exactly one bookmark. Escaped text can never contain a raw
// '<' or '"', so both markers are unambiguous.
func extractTitle(doc string) (string, bool) {
	anchor := strings.Index(doc, "<DT><A ")
	if anchor == -1 {
		return "", false
	}
	doc = doc[anchor:]

	start := strings.Index(doc, `">`)
	end := strings.Index(doc, "</A>")
	if start == -1 || end == -1 || start+2 > end {
		return "", false
	}
	return doc[start+2 : end], true
}

func TestNetscapeExporter_EscapingRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	exporter := NewNetscapeExporter()

	properties.Property("title survives escape and unescape", prop.ForAll(
		func(prefix string, special string, suffix string) bool {
			// Never empty, so the URL fallback stays out of the way.
			title := "t" + prefix + special + suffix

			var buf bytes.Buffer
			_, err := exporter.Export(&buf, []entities.Bookmark{
				{URL: "https://example.com/a", Title: title},
			})
			if err != nil {
				return false
			}

			escaped, ok := extractTitle(buf.String())
			if !ok {
				return false
			}

			// The raw specials must not leak through unescaped.
			if special != "" && strings.ContainsAny(escaped, `<>"`) {
				return false
			}

			return html.UnescapeString(escaped) == title
		},
		gen.AlphaString(),
		gen.OneConstOf("<", ">", "&", `"`, "'", "&amp;", "<A>", ""),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestNetscapeExporter_OrderAndCountProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	exporter := NewNetscapeExporter()

	properties.Property("anchors appear once each, in input order", prop.ForAll(
		func(count int) bool {
			bookmarks := make([]entities.Bookmark, count)
			for i := range bookmarks {
				bookmarks[i] = entities.Bookmark{
					URL:   fmt.Sprintf("https://example.com/item/%d", i),
					Title: fmt.Sprintf("item-%d", i),
				}
			}

			var buf bytes.Buffer
			result, err := exporter.Export(&buf, bookmarks)
			if err != nil || result.BookmarksProcessed != count {
				return false
			}

			doc := buf.String()
			last := -1
			for i := range bookmarks {
				marker := fmt.Sprintf(">item-%d</A>", i)
				if strings.Count(doc, marker) != 1 {
					return false
				}
				pos := strings.Index(doc, marker)
				if pos <= last {
					return false
				}
				last = pos
			}
			return true
		},
		gen.IntRange(0, 50),
	))

	properties.Property("rendering twice is byte identical", prop.ForAll(
		func(titles []string) bool {
			bookmarks := make([]entities.Bookmark, len(titles))
			for i, title := range titles {
				bookmarks[i] = entities.Bookmark{
					URL:   fmt.Sprintf("https://example.com/%d", i),
					Title: title,
				}
			}

			var first, second bytes.Buffer
			if _, err := exporter.Export(&first, bookmarks); err != nil {
				return false
			}
			if _, err := exporter.Export(&second, bookmarks); err != nil {
				return false
			}
			return bytes.Equal(first.Bytes(), second.Bytes())
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
