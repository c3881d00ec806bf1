// Package serializers projects persisted records into the JSON view models
// returned at the API boundary. Credentials never appear in any projection.
package serializers

import (
	"time"

	"github.com/binehq/bine-server/internal/models"
)

const dateLayout = "2006-01-02"

type UserView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullname"`
	Birthday  string    `json:"birthday"`
	Sex       string    `json:"sex"`
	Tagline   string    `json:"tagline"`
	Photo     string    `json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedOn time.Time `json:"updated_on"`
}

// UserSummary is the nested author projection used inside notes and replies.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
}

type BookView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Publisher   string `json:"publisher"`
	PubDate     string `json:"pub_date,omitempty"`
	Description string `json:"description"`
	Photo       string `json:"photo,omitempty"`
}

// BookSummary is the nested book projection used inside notes.
type BookSummary struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Photo string `json:"photo,omitempty"`
}

type NoteView struct {
	ID           uint        `json:"id"`
	User         UserSummary `json:"user"`
	Book         BookSummary `json:"book"`
	Content      string      `json:"content"`
	Preference   int         `json:"preference"`
	ReadDateFrom string      `json:"read_date_from"`
	ReadDateTo   string      `json:"read_date_to"`
	ShareTo      string      `json:"share_to"`
	Likeit       int         `json:"likeit"`
	RepliesCount int         `json:"replies_count"`
	Attach       string      `json:"attach,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedOn    time.Time   `json:"updated_on"`
}

type ReplyView struct {
	ID        uint        `json:"id"`
	User      UserSummary `json:"user"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
}

func User(u *models.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Birthday:  u.Birthday.Format(dateLayout),
		Sex:       u.Sex,
		Tagline:   u.Tagline,
		Photo:     u.Photo,
		CreatedAt: u.CreatedAt,
		UpdatedOn: u.UpdatedAt,
	}
}

func Users(users []models.User) []UserView {
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, User(&users[i]))
	}
	return views
}

func Book(b *models.Book) BookView {
	view := BookView{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Publisher:   b.Publisher,
		Description: b.Description,
		Photo:       b.Photo,
	}
	if b.PubDate != nil {
		view.PubDate = b.PubDate.Format(dateLayout)
	}
	return view
}

func Books(books []models.Book) []BookView {
	views := make([]BookView, 0, len(books))
	for i := range books {
		views = append(views, Book(&books[i]))
	}
	return views
}

func Note(n *models.BookNote) NoteView {
	return NoteView{
		ID: n.ID,
		User: UserSummary{
			ID:       n.User.ID,
			Username: n.User.Username,
			FullName: n.User.FullName,
		},
		Book: BookSummary{
			ID:    n.Book.ID,
			Title: n.Book.Title,
			Photo: n.Book.Photo,
		},
		Content:      n.Content,
		Preference:   n.Preference,
		ReadDateFrom: n.ReadDateFrom.Format(dateLayout),
		ReadDateTo:   n.ReadDateTo.Format(dateLayout),
		ShareTo:      n.ShareTo,
		Likeit:       len(n.Likeit),
		RepliesCount: len(n.Replies),
		Attach:       n.Attach,
		CreatedAt:    n.CreatedAt,
		UpdatedOn:    n.UpdatedAt,
	}
}

func Notes(notes []models.BookNote) []NoteView {
	views := make([]NoteView, 0, len(notes))
	for i := range notes {
		views = append(views, Note(&notes[i]))
	}
	return views
}

func Reply(r *models.BookNoteReply) ReplyView {
	return ReplyView{
		ID: r.ID,
		User: UserSummary{
			ID:       r.User.ID,
			Username: r.User.Username,
			FullName: r.User.FullName,
		},
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}

func Replies(replies []models.BookNoteReply) []ReplyView {
	views := make([]ReplyView, 0, len(replies))
	for i := range replies {
		views = append(views, Reply(&replies[i]))
	}
	return views
}
