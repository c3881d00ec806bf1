package repositories

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/binehq/bine-server/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB opens the Postgres database named by TEST_DATABASE_DSN and
// migrates a clean schema into it. Tests that need a database skip when
// the variable is unset, so the pure-function tests still run anywhere.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set; skipping database test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Exec("DROP TABLE IF EXISTS booknote_replies, booknote_likeit, booknotes, books, book_categories, friend_relations, users CASCADE").Error
	if err != nil {
		t.Fatalf("failed to reset test schema: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.FriendRelation{},
		&models.BookCategory{},
		&models.Book{},
		&models.BookNote{},
		&models.BookNoteLikeit{},
		&models.BookNoteReply{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		FullName:     username,
		Birthday:     time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Sex:          models.SexFemale,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %q: %v", username, err)
	}
	return user
}

func seedBook(t *testing.T, db *gorm.DB, isbn13 string) *models.Book {
	t.Helper()

	book := &models.Book{
		Title:  "The Wind in the Willows",
		Author: "Kenneth Grahame",
		ISBN13: isbn13,
	}
	if err := db.Create(book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", isbn13, err)
	}
	return book
}

func seedNote(t *testing.T, db *gorm.DB, userID, bookID uint, shareTo string) *models.BookNote {
	t.Helper()

	note := &models.BookNote{
		UserID:       userID,
		BookID:       bookID,
		ReadDateFrom: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		ReadDateTo:   time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		Content:      fmt.Sprintf("note by user %d shared %s", userID, shareTo),
		Preference:   4,
		ShareTo:      shareTo,
	}
	if err := db.Create(note).Error; err != nil {
		t.Fatalf("failed to seed note: %v", err)
	}
	return note
}

// befriend establishes a confirmed friendship through the normal
// request/confirm flow.
func befriend(t *testing.T, repo *FriendRepository, aID, bID uint) {
	t.Helper()

	if _, err := repo.CreateRequest(aID, bID); err != nil {
		t.Fatalf("CreateRequest(%d, %d) error: %v", aID, bID, err)
	}
	if err := repo.Confirm(bID, aID); err != nil {
		t.Fatalf("Confirm(%d, %d) error: %v", bID, aID, err)
	}
}
