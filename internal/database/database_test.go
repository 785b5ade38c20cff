package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/pocket2pinboard/internal/entities"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatabase_SaveAndLoadBookmarks(t *testing.T) {
	db := newTestDatabase(t)

	bookmarks := []entities.Bookmark{
		{URL: "http://example.com/a", Title: "a", Tags: []string{"news", "tech"}, TimeAdded: 1600000000},
		{URL: "http://example.com/b", Title: "b", Status: entities.StatusArchive},
	}

	require.NoError(t, db.SaveBookmarks(bookmarks))

	loaded, err := db.GetAllBookmarks()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "http://example.com/a", loaded[0].URL)
	assert.Equal(t, []string{"news", "tech"}, loaded[0].Tags)
	assert.Equal(t, int64(1600000000), loaded[0].TimeAdded)
	assert.Equal(t, entities.StatusArchive, loaded[1].Status)
}

func TestDatabase_PreservesInsertionOrder(t *testing.T) {
	db := newTestDatabase(t)

	first := []entities.Bookmark{
		{URL: "http://example.com/1", Title: "1"},
		{URL: "http://example.com/2", Title: "2"},
	}
	second := []entities.Bookmark{
		{URL: "http://example.com/3", Title: "3"},
	}

	require.NoError(t, db.SaveBookmarks(first))
	require.NoError(t, db.SaveBookmarks(second))

	loaded, err := db.GetAllBookmarks()
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "1", loaded[0].Title)
	assert.Equal(t, "2", loaded[1].Title)
	assert.Equal(t, "3", loaded[2].Title)
}

func TestDatabase_CountBookmarks(t *testing.T) {
	db := newTestDatabase(t)

	count, err := db.CountBookmarks()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, db.SaveBookmarks([]entities.Bookmark{
		{URL: "http://example.com/a", Title: "a"},
	}))

	count, err = db.CountBookmarks()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDatabase_DuplicateURLsAreBothKept(t *testing.T) {
	db := newTestDatabase(t)

	require.NoError(t, db.SaveBookmarks([]entities.Bookmark{
		{URL: "http://example.com/a", Title: "from file one"},
		{URL: "http://example.com/a", Title: "from file two"},
	}))

	loaded, err := db.GetAllBookmarks()
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}
