package exporters

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/mrlokans/pocket2pinboard/internal/entities"
)

// Netscape bookmark file format, as consumed by Pinboard and most
// browser import dialogs: a DL list of DT/A elements with metadata
// carried in anchor attributes. html/template's contextual escaping
// covers URL, title and tag text, which are untrusted free text.
// No HTML comment in the shell: html/template strips comments on output.
const netscapeTemplate = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
{{range .}}    <DT><A HREF="{{.URL}}"{{if .AddDate}} ADD_DATE="{{.AddDate}}"{{end}}{{if .Tags}} TAGS="{{.Tags}}"{{end}}{{if .ToRead}} TOREAD="yes"{{end}}>{{.Title}}</A>
{{end}}</DL><p>
`

// netscapeBookmark is the per-anchor view passed to the template.
type netscapeBookmark struct {
	URL     string
	Title   string
	AddDate int64
	Tags    string
	ToRead  bool
}

type NetscapeExporter struct {
	tmpl *template.Template
}

func NewNetscapeExporter() *NetscapeExporter {
	return &NetscapeExporter{
		tmpl: template.Must(template.New("netscape").Parse(netscapeTemplate)),
	}
}

// Export renders the bookmarks in the order supplied, one anchor per
// record. The whole document is assembled in memory and written out
// in a single call; output bytes are identical for identical input.
func (e *NetscapeExporter) Export(w io.Writer, bookmarks []entities.Bookmark) (ExportResult, error) {
	views := make([]netscapeBookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		title := b.Title
		if title == "" {
			title = b.URL
		}

		views = append(views, netscapeBookmark{
			URL:     b.URL,
			Title:   title,
			AddDate: b.TimeAdded,
			Tags:    strings.Join(b.Tags, ","),
			ToRead:  b.Status == entities.StatusUnread,
		})
	}

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, views); err != nil {
		return ExportResult{}, fmt.Errorf("failed to render bookmarks: %w", err)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write output: %w", err)
	}

	return ExportResult{BookmarksProcessed: len(views)}, nil
}

// Compile-time interface check
var _ BookmarkExporter = (*NetscapeExporter)(nil)
