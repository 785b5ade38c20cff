package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/pocket2pinboard/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&entities.Bookmark{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveBookmarks inserts bookmarks one by one so that auto-increment
// IDs follow slice order.
func (d *Database) SaveBookmarks(bookmarks []entities.Bookmark) error {
	for i := range bookmarks {
		if err := d.DB.Create(&bookmarks[i]).Error; err != nil {
			return fmt.Errorf("failed to save bookmark %q: %w", bookmarks[i].URL, err)
		}
	}
	return nil
}

// GetAllBookmarks returns every stored bookmark in insertion order.
func (d *Database) GetAllBookmarks() ([]entities.Bookmark, error) {
	var bookmarks []entities.Bookmark
	err := d.DB.Order("id asc").Find(&bookmarks).Error
	return bookmarks, err
}

func (d *Database) CountBookmarks() (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Bookmark{}).Count(&count).Error
	return count, err
}
