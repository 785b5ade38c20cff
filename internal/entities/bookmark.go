package entities

import "time"

// Status carries the Pocket read-state of a bookmark. It is kept as
// metadata on the record; filtering on it is opt-in.
type Status string

const (
	StatusUnread  Status = "unread"
	StatusArchive Status = "archive"
)

// Bookmark is the normalized representation of one saved link.
// The URL is the identity of the record; the parser never produces a
// Bookmark with an empty URL.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	URL       string    `gorm:"index;size:2048" json:"url"`
	Title     string    `gorm:"size:512" json:"title"`
	TimeAdded int64     `json:"time_added,omitempty"` // epoch seconds, 0 when unknown
	Tags      []string  `gorm:"serializer:json" json:"tags,omitempty"`
	Status    Status    `gorm:"size:20" json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

// AddedAt returns the time the bookmark was saved, or the zero time
// when the export did not carry a usable timestamp.
func (b Bookmark) AddedAt() time.Time {
	if b.TimeAdded <= 0 {
		return time.Time{}
	}
	return time.Unix(b.TimeAdded, 0).UTC()
}

func (b Bookmark) Archived() bool {
	return b.Status == StatusArchive
}
