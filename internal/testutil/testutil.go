package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/db"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/model"
)

// NewTestDB opens a private in-memory sqlite database with the schema applied.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	// a single connection keeps transactions from tripping over sqlite table locks
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

// NewErrorDB returns a database without any tables, so every query fails.
func NewErrorDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

// SeedBook stores a title with every copy available.
func SeedBook(t *testing.T, gdb *gorm.DB, name string, num int) model.Book {
	t.Helper()

	book := model.Book{
		Name:     name,
		Author:   "Author of " + name,
		Category: "fiction",
		Num:      num,
		Status:   model.BookStatus{Available: num},
	}

	if err := gdb.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", name, err)
	}

	return book
}

// ReloadBook reads the current row for id.
func ReloadBook(t *testing.T, gdb *gorm.DB, book model.Book) model.Book {
	t.Helper()

	var fresh model.Book
	if err := gdb.First(&fresh, "id = ?", book.ID).Error; err != nil {
		t.Fatalf("failed to reload book %q: %v", book.Name, err)
	}
	return fresh
}
