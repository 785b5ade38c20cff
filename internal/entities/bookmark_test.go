package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookmark_AddedAt(t *testing.T) {
	b := Bookmark{TimeAdded: 1600000000}
	assert.Equal(t, time.Date(2020, 9, 13, 12, 26, 40, 0, time.UTC), b.AddedAt())

	assert.True(t, Bookmark{}.AddedAt().IsZero())
	assert.True(t, Bookmark{TimeAdded: -5}.AddedAt().IsZero())
}

func TestBookmark_Archived(t *testing.T) {
	assert.True(t, Bookmark{Status: StatusArchive}.Archived())
	assert.False(t, Bookmark{Status: StatusUnread}.Archived())
	assert.False(t, Bookmark{}.Archived())
}
