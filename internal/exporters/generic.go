package exporters

import (
	"io"

	"github.com/mrlokans/pocket2pinboard/internal/entities"
)

type BookmarkExporter interface {
	Export(w io.Writer, bookmarks []entities.Bookmark) (ExportResult, error)
}

type ExportResult struct {
	BookmarksProcessed int `json:"bookmarks_processed"`
}
