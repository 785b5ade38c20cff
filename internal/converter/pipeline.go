package converter

import (
	"fmt"
	"io"

	"github.com/mrlokans/pocket2pinboard/internal/entities"
	"github.com/mrlokans/pocket2pinboard/internal/exporters"
	"github.com/mrlokans/pocket2pinboard/internal/logger"
	"github.com/mrlokans/pocket2pinboard/internal/pocket"
)

// Store persists parsed bookmarks. A nil store means the pipeline
// only renders.
type Store interface {
	SaveBookmarks(bookmarks []entities.Bookmark) error
}

type Options struct {
	TagDelimiter string
	SkipArchived bool
}

type Result struct {
	BookmarksProcessed int
	RowsSkipped        int
	ArchivedSkipped    int
}

// Pipeline handles the common conversion workflow:
// parse → filter → save → render.
type Pipeline struct {
	exporter exporters.BookmarkExporter
	store    Store
	log      logger.Logger
	opts     Options
}

func NewPipeline(exporter exporters.BookmarkExporter, store Store, log logger.Logger, opts Options) *Pipeline {
	return &Pipeline{
		exporter: exporter,
		store:    store,
		log:      log,
		opts:     opts,
	}
}

// Convert reads every input to completion, in the order supplied, and
// renders the combined collection to w as one document. A malformed
// input aborts the run before anything is written.
func (p *Pipeline) Convert(inputs []pocket.Input, w io.Writer) (Result, error) {
	var all []entities.Bookmark
	result := Result{}

	for _, in := range inputs {
		bookmarks, stats, err := pocket.Parse(in, pocket.Options{TagDelimiter: p.opts.TagDelimiter})
		if err != nil {
			return Result{}, err
		}

		p.log.Debug("parsed input",
			logger.String("input", in.Name),
			logger.Int("rows", stats.RowsRead),
			logger.Int("skipped", stats.RowsSkipped))

		result.RowsSkipped += stats.RowsSkipped
		all = append(all, bookmarks...)
	}

	if p.opts.SkipArchived {
		kept := make([]entities.Bookmark, 0, len(all))
		for _, b := range all {
			if b.Archived() {
				result.ArchivedSkipped++
				continue
			}
			kept = append(kept, b)
		}
		all = kept
	}

	if p.store != nil {
		if err := p.store.SaveBookmarks(all); err != nil {
			return Result{}, fmt.Errorf("failed to save bookmarks: %w", err)
		}
		p.log.Info("saved bookmarks", logger.Int("count", len(all)))
	}

	exportResult, err := p.exporter.Export(w, all)
	if err != nil {
		return Result{}, err
	}
	result.BookmarksProcessed = exportResult.BookmarksProcessed

	return result, nil
}

// Render writes an already-loaded collection, e.g. from the database.
func (p *Pipeline) Render(bookmarks []entities.Bookmark, w io.Writer) (Result, error) {
	exportResult, err := p.exporter.Export(w, bookmarks)
	if err != nil {
		return Result{}, err
	}
	return Result{BookmarksProcessed: exportResult.BookmarksProcessed}, nil
}
