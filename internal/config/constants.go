package config

const (
	DefaultOutputPath   = "pinboard_import.html"
	DefaultDatabasePath = "./bookmarks.db"
	DefaultTagDelimiter = ","
)
