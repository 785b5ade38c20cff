package pocket

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mrlokans/pocket2pinboard/internal/entities"
)

// Canonical column names for a Pocket CSV export.
const (
	columnURL       = "url"
	columnTitle     = "title"
	columnTags      = "tags"
	columnTimeAdded = "time_added"
	columnStatus    = "status"
)

// Pocket has shipped several export variants over the years, so
// headers are resolved by name through this alias table rather than
// by position.
var headerAliases = map[string]string{
	"url":         columnURL,
	"link":        columnURL,
	"href":        columnURL,
	"given_url":   columnURL,
	"title":       columnTitle,
	"name":        columnTitle,
	"given_title": columnTitle,
	"tags":        columnTags,
	"tag":         columnTags,
	"time":        columnTimeAdded,
	"time_added":  columnTimeAdded,
	"timestamp":   columnTimeAdded,
	"created":     columnTimeAdded,
	"status":      columnStatus,
	"state":       columnStatus,
}

// Options control source-specific parsing details.
type Options struct {
	// TagDelimiter separates tags within the tags field. Defaults to a comma.
	TagDelimiter string
}

func (o Options) tagDelimiter() string {
	if o.TagDelimiter == "" {
		return ","
	}
	return o.TagDelimiter
}

// Input is a named CSV stream handed in by the caller. The name is
// only used for error reporting.
type Input struct {
	Name   string
	Reader io.Reader
}

// Stats reports row-level outcomes of a parse.
type Stats struct {
	RowsRead    int
	RowsSkipped int
}

// Parse reads one Pocket CSV export stream and returns the retained
// bookmarks in row order.
//
// The first row must be a header naming at least a URL column; a
// stream without one fails with *MalformedInputError. Rows missing a
// URL are skipped and counted, not surfaced as errors - bookmark
// exports commonly contain partial rows and a hard failure per row
// would make them unconvertible.
func Parse(in Input, opts Options) ([]entities.Bookmark, Stats, error) {
	reader := csv.NewReader(in.Reader)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, Stats{}, &MalformedInputError{Input: in.Name, Err: fmt.Errorf("failed to read header: %w", err)}
	}

	columns := resolveHeader(header)
	if _, ok := columns[columnURL]; !ok {
		return nil, Stats{}, &MalformedInputError{Input: in.Name, Err: errors.New("no url column in header")}
	}

	var bookmarks []entities.Bookmark
	var stats Stats

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.RowsRead++
				stats.RowsSkipped++
				continue
			}
			// Not a row-level problem: the underlying stream failed.
			return nil, Stats{}, &MalformedInputError{Input: in.Name, Err: err}
		}
		stats.RowsRead++

		url := getColumn(record, columns, columnURL)
		if url == "" {
			stats.RowsSkipped++
			continue
		}

		title := getColumn(record, columns, columnTitle)
		if title == "" {
			title = url
		}

		bookmarks = append(bookmarks, entities.Bookmark{
			URL:       url,
			Title:     title,
			TimeAdded: parseEpoch(getColumn(record, columns, columnTimeAdded)),
			Tags:      splitTags(getColumn(record, columns, columnTags), opts.tagDelimiter()),
			Status:    entities.Status(strings.ToLower(getColumn(record, columns, columnStatus))),
		})
	}

	return bookmarks, stats, nil
}

// ParseAll parses every input to completion, in the order supplied,
// and concatenates the results. A malformed input aborts the whole
// run; there is no partial-output mode.
func ParseAll(inputs []Input, opts Options) ([]entities.Bookmark, Stats, error) {
	var all []entities.Bookmark
	var stats Stats

	for _, in := range inputs {
		bookmarks, s, err := Parse(in, opts)
		if err != nil {
			return nil, Stats{}, err
		}
		all = append(all, bookmarks...)
		stats.RowsRead += s.RowsRead
		stats.RowsSkipped += s.RowsSkipped
	}

	return all, stats, nil
}

func resolveHeader(header []string) map[string]int {
	columns := make(map[string]int)
	for i, h := range header {
		// Exports written on Windows tend to carry a UTF-8 BOM on the
		// first header cell.
		h = strings.TrimPrefix(h, "\ufeff")
		canonical, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, seen := columns[canonical]; !seen {
			columns[canonical] = i
		}
	}
	return columns
}

func getColumn(record []string, columns map[string]int, name string) string {
	if idx, ok := columns[name]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}

// splitTags splits a delimited tag field, trimming each piece and
// dropping empties. A blank field yields no tags rather than a single
// empty tag.
func splitTags(raw, delimiter string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, delimiter)
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// parseEpoch parses an epoch-seconds field. An unparsable value means
// the timestamp is absent, not that the row is bad.
func parseEpoch(raw string) int64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
