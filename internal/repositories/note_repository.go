package repositories

import (
	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// CreateNote creates a new book note
func (r *NoteRepository) CreateNote(note *models.BookNote) error {
	result := r.db.Create(note)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create note")
	}
	return nil
}

// GetNoteByID retrieves a note with its author, book, likes and replies.
func (r *NoteRepository) GetNoteByID(id uint) (*models.BookNote, error) {
	var note models.BookNote
	result := r.db.
		Preload("User").
		Preload("Book").
		Preload("Likeit").
		Preload("Replies").
		First(&note, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "note not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get note")
	}

	return &note, nil
}

// UpdateNote persists changes to a note
func (r *NoteRepository) UpdateNote(note *models.BookNote) error {
	result := r.db.Save(note)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update note")
	}
	return nil
}

// DeleteNote removes a note; likes and replies cascade.
func (r *NoteRepository) DeleteNote(id uint) error {
	result := r.db.Delete(&models.BookNote{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to delete note")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "note not found")
	}
	return nil
}

// Feed returns the newest notes visible to the viewer: the viewer's own
// notes plus confirmed friends' notes shared to friends or everyone, capped
// at models.FeedLimit.
func (r *NoteRepository) Feed(viewerID uint) ([]models.BookNote, error) {
	var notes []models.BookNote

	friendIDs := r.db.Model(&models.FriendRelation{}).
		Select("to_user_id").
		Where("from_user_id = ? AND status = ?", viewerID, models.FriendStatusConfirmed)

	err := r.db.
		Preload("User").
		Preload("Book").
		Preload("Likeit").
		Preload("Replies").
		Where("user_id = ? OR (user_id IN (?) AND share_to IN ?)",
			viewerID, friendIDs, []string{models.ShareFriends, models.ShareAll}).
		Order("created_at DESC").
		Limit(models.FeedLimit).
		Find(&notes).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get note feed")
	}

	return notes, nil
}

// NotesByUser returns all notes authored by a user, newest first.
func (r *NoteRepository) NotesByUser(userID uint) ([]models.BookNote, error) {
	var notes []models.BookNote

	err := r.db.
		Preload("User").
		Preload("Book").
		Preload("Likeit").
		Preload("Replies").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get user notes")
	}

	return notes, nil
}

// Like records a like. The insert is idempotent: a duplicate (user, note)
// pair hits the unique index and is dropped, never a second row.
func (r *NoteRepository) Like(userID, noteID uint) error {
	like := &models.BookNoteLikeit{
		UserID: userID,
		NoteID: noteID,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "note_id"}},
		DoNothing: true,
	}).Create(like).Error

	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to like note")
	}

	return nil
}

// Unlike removes a like; removing an absent like is a no-op.
func (r *NoteRepository) Unlike(userID, noteID uint) error {
	result := r.db.Where("user_id = ? AND note_id = ?", userID, noteID).
		Delete(&models.BookNoteLikeit{})

	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to unlike note")
	}

	return nil
}

// CreateReply appends a reply to a note
func (r *NoteRepository) CreateReply(reply *models.BookNoteReply) error {
	result := r.db.Create(reply)
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create reply")
	}
	return nil
}

// GetReplyByID retrieves a reply with its author loaded.
func (r *NoteRepository) GetReplyByID(id uint) (*models.BookNoteReply, error) {
	var reply models.BookNoteReply
	result := r.db.Preload("User").First(&reply, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "reply not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get reply")
	}

	return &reply, nil
}

// ListReplies returns a note's replies oldest first, with authors preloaded.
func (r *NoteRepository) ListReplies(noteID uint) ([]models.BookNoteReply, error) {
	var replies []models.BookNoteReply

	err := r.db.Where("note_id = ?", noteID).
		Preload("User").
		Order("created_at ASC").
		Find(&replies).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list replies")
	}

	return replies, nil
}
