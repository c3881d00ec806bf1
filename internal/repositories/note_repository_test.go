package repositories

import (
	"testing"

	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/pkg/errors"
)

func TestFeed_ShareScope(t *testing.T) {
	db := testDB(t)
	notes := NewNoteRepository(db)
	friends := NewFriendRepository(db)

	viewer := seedUser(t, db, "viewer")
	friend := seedUser(t, db, "friend")
	stranger := seedUser(t, db, "stranger")
	book := seedBook(t, db, "9780143039099")

	befriend(t, friends, friend.ID, viewer.ID)

	ownPrivate := seedNote(t, db, viewer.ID, book.ID, models.SharePrivate)
	friendPrivate := seedNote(t, db, friend.ID, book.ID, models.SharePrivate)
	friendFriends := seedNote(t, db, friend.ID, book.ID, models.ShareFriends)
	friendAll := seedNote(t, db, friend.ID, book.ID, models.ShareAll)
	strangerAll := seedNote(t, db, stranger.ID, book.ID, models.ShareAll)

	feed, err := notes.Feed(viewer.ID)
	if err != nil {
		t.Fatalf("Feed() error: %v", err)
	}

	got := make(map[uint]bool, len(feed))
	for _, n := range feed {
		got[n.ID] = true
	}

	for _, want := range []*models.BookNote{ownPrivate, friendFriends, friendAll} {
		if !got[want.ID] {
			t.Errorf("Feed() missing note %d (share_to=%s by user %d)", want.ID, want.ShareTo, want.UserID)
		}
	}
	if got[friendPrivate.ID] {
		t.Error("Feed() included a friend's private note")
	}
	if got[strangerAll.ID] {
		t.Error("Feed() included a non-friend's note")
	}
	if len(feed) != 3 {
		t.Errorf("Feed() returned %d notes, want 3", len(feed))
	}
}

func TestFeed_Cap(t *testing.T) {
	db := testDB(t)
	notes := NewNoteRepository(db)

	viewer := seedUser(t, db, "prolific")
	book := seedBook(t, db, "9780143039099")

	for i := 0; i < models.FeedLimit+3; i++ {
		seedNote(t, db, viewer.ID, book.ID, models.SharePrivate)
	}

	feed, err := notes.Feed(viewer.ID)
	if err != nil {
		t.Fatalf("Feed() error: %v", err)
	}
	if len(feed) != models.FeedLimit {
		t.Errorf("Feed() returned %d notes, want %d", len(feed), models.FeedLimit)
	}
}

func TestLike_Idempotent(t *testing.T) {
	db := testDB(t)
	notes := NewNoteRepository(db)

	author := seedUser(t, db, "author")
	fan := seedUser(t, db, "fan")
	book := seedBook(t, db, "9780143039099")
	note := seedNote(t, db, author.ID, book.ID, models.ShareAll)

	if err := notes.Like(fan.ID, note.ID); err != nil {
		t.Fatalf("first Like() error: %v", err)
	}
	if err := notes.Like(fan.ID, note.ID); err != nil {
		t.Fatalf("second Like() error: %v", err)
	}

	var count int64
	if err := db.Model(&models.BookNoteLikeit{}).
		Where("user_id = ? AND note_id = ?", fan.ID, note.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if count != 1 {
		t.Errorf("like rows after double like = %d, want 1", count)
	}

	if err := notes.Unlike(fan.ID, note.ID); err != nil {
		t.Fatalf("Unlike() error: %v", err)
	}
	if err := db.Model(&models.BookNoteLikeit{}).
		Where("user_id = ? AND note_id = ?", fan.ID, note.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if count != 0 {
		t.Errorf("like rows after unlike = %d, want 0", count)
	}
}

func TestGetReplyByID_LoadsAuthor(t *testing.T) {
	db := testDB(t)
	notes := NewNoteRepository(db)

	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	book := seedBook(t, db, "9780143039099")
	note := seedNote(t, db, author.ID, book.ID, models.ShareAll)

	reply := &models.BookNoteReply{
		UserID:  commenter.ID,
		NoteID:  note.ID,
		Content: "great review",
	}
	if err := notes.CreateReply(reply); err != nil {
		t.Fatalf("CreateReply() error: %v", err)
	}

	loaded, err := notes.GetReplyByID(reply.ID)
	if err != nil {
		t.Fatalf("GetReplyByID() error: %v", err)
	}
	if loaded.User.ID != commenter.ID {
		t.Errorf("reply author id = %d, want %d", loaded.User.ID, commenter.ID)
	}
	if loaded.User.Username != "commenter" {
		t.Errorf("reply author username = %q, want %q", loaded.User.Username, "commenter")
	}

	if _, err := notes.GetReplyByID(reply.ID + 1000); errors.Code(err) != errors.ErrCodeNotFound {
		t.Errorf("GetReplyByID(missing) code = %q, want %q", errors.Code(err), errors.ErrCodeNotFound)
	}
}
