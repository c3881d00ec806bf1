package serializers

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/binehq/bine-server/internal/models"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func TestUserView_NeverExposesCredential(t *testing.T) {
	user := &models.User{
		ID:           1,
		Username:     "booklover",
		Email:        "booklover@example.com",
		PasswordHash: "$2a$10$secret-credential-hash",
		FullName:     "Book Lover",
		Birthday:     date("1990-01-01"),
		Sex:          models.SexFemale,
		Tagline:      "always reading",
	}

	data, err := json.Marshal(User(user))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if strings.Contains(string(data), "secret-credential-hash") {
		t.Error("user view leaked the password hash")
	}
	if strings.Contains(string(data), "password") {
		t.Error("user view contains a password field")
	}
	if strings.Contains(string(data), "token_version") {
		t.Error("user view contains the token version")
	}
}

func TestUserView_Fields(t *testing.T) {
	user := &models.User{
		ID:       7,
		Username: "booklover",
		FullName: "Book Lover",
		Birthday: date("1990-01-01"),
		Sex:      models.SexMale,
		Tagline:  "always reading",
	}

	view := User(user)

	if view.ID != 7 {
		t.Errorf("ID = %d, want 7", view.ID)
	}
	if view.Birthday != "1990-01-01" {
		t.Errorf("Birthday = %q, want %q", view.Birthday, "1990-01-01")
	}
	if view.Photo != "" {
		t.Errorf("Photo = %q, want empty", view.Photo)
	}

	// photo is omitted from JSON when unset
	data, _ := json.Marshal(view)
	if strings.Contains(string(data), `"photo"`) {
		t.Error("empty photo should be omitted from JSON")
	}
}

func TestBookView_PubDate(t *testing.T) {
	pubDate := date("2015-06-01")

	tests := []struct {
		name string
		book models.Book
		want string
	}{
		{
			name: "With publication date",
			book: models.Book{Title: "T", Author: "A", PubDate: &pubDate},
			want: "2015-06-01",
		},
		{
			name: "Without publication date",
			book: models.Book{Title: "T", Author: "A"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Book(&tt.book)
			if view.PubDate != tt.want {
				t.Errorf("PubDate = %q, want %q", view.PubDate, tt.want)
			}
		})
	}
}

func TestNoteView_NestedSummariesAndCounts(t *testing.T) {
	note := &models.BookNote{
		ID:     3,
		UserID: 1,
		User: models.User{
			ID:           1,
			Username:     "booklover",
			FullName:     "Book Lover",
			PasswordHash: "$2a$10$secret-credential-hash",
		},
		BookID: 2,
		Book: models.Book{
			ID:    2,
			Title: "The Little Prince",
			Photo: "https://covers.example.com/9780156012195.jpg",
		},
		ReadDateFrom: date("2026-01-01"),
		ReadDateTo:   date("2026-01-15"),
		Content:      "A classic.",
		Preference:   5,
		ShareTo:      models.ShareFriends,
		Likeit: []models.BookNoteLikeit{
			{ID: 1, UserID: 4, NoteID: 3},
			{ID: 2, UserID: 5, NoteID: 3},
		},
		Replies: []models.BookNoteReply{
			{ID: 1, UserID: 4, NoteID: 3, Content: "Agreed!"},
		},
	}

	view := Note(note)

	if view.User.Username != "booklover" {
		t.Errorf("User.Username = %q, want %q", view.User.Username, "booklover")
	}
	if view.Book.Title != "The Little Prince" {
		t.Errorf("Book.Title = %q, want %q", view.Book.Title, "The Little Prince")
	}
	if view.Likeit != 2 {
		t.Errorf("Likeit = %d, want 2", view.Likeit)
	}
	if view.RepliesCount != 1 {
		t.Errorf("RepliesCount = %d, want 1", view.RepliesCount)
	}
	if view.ReadDateFrom != "2026-01-01" || view.ReadDateTo != "2026-01-15" {
		t.Errorf("read dates = %q..%q, want 2026-01-01..2026-01-15", view.ReadDateFrom, view.ReadDateTo)
	}

	data, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "secret-credential-hash") {
		t.Error("note view leaked the author's password hash")
	}
}

func TestReplyView(t *testing.T) {
	reply := &models.BookNoteReply{
		ID:     9,
		UserID: 4,
		User: models.User{
			ID:       4,
			Username: "pagecounter",
			FullName: "Page Counter",
		},
		NoteID:  3,
		Content: "Agreed!",
	}

	view := Reply(reply)

	if view.ID != 9 {
		t.Errorf("ID = %d, want 9", view.ID)
	}
	if view.User.ID != 4 {
		t.Errorf("User.ID = %d, want 4", view.User.ID)
	}
	if view.Content != "Agreed!" {
		t.Errorf("Content = %q, want %q", view.Content, "Agreed!")
	}
}
