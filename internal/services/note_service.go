package services

import (
	"strings"
	"time"

	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/internal/repositories"
	"github.com/binehq/bine-server/internal/security"
	"github.com/binehq/bine-server/pkg/errors"
)

type NoteService struct {
	repo       *repositories.NoteRepository
	bookRepo   *repositories.BookRepository
	friendRepo *repositories.FriendRepository
}

func NewNoteService(repo *repositories.NoteRepository, bookRepo *repositories.BookRepository, friendRepo *repositories.FriendRepository) *NoteService {
	return &NoteService{
		repo:       repo,
		bookRepo:   bookRepo,
		friendRepo: friendRepo,
	}
}

// NoteInput carries the fields accepted when creating or editing a note.
type NoteInput struct {
	BookID       uint
	ReadDateFrom time.Time
	ReadDateTo   time.Time
	Content      string
	Preference   int
	ShareTo      string
	Attach       string
}

func validateNoteInput(in *NoteInput) error {
	if in.ReadDateFrom.IsZero() || in.ReadDateTo.IsZero() {
		return errors.New(errors.ErrCodeValidation, "read dates are required")
	}
	if in.ReadDateTo.Before(in.ReadDateFrom) {
		return errors.New(errors.ErrCodeValidation, "read_date_from must not be after read_date_to")
	}
	if in.Preference < models.PreferenceMin || in.Preference > models.PreferenceMax {
		return errors.New(errors.ErrCodeValidation, "preference must be between 1 and 5")
	}
	switch in.ShareTo {
	case models.SharePrivate, models.ShareFriends, models.ShareAll:
	default:
		return errors.New(errors.ErrCodeValidation, "share_to must be P, F or A")
	}
	return nil
}

// CreateNote persists a new book note for the user.
func (s *NoteService) CreateNote(userID uint, in *NoteInput) (*models.BookNote, error) {
	if err := validateNoteInput(in); err != nil {
		return nil, err
	}

	if _, err := s.bookRepo.GetBookByID(in.BookID); err != nil {
		return nil, err
	}

	note := &models.BookNote{
		UserID:       userID,
		BookID:       in.BookID,
		ReadDateFrom: in.ReadDateFrom,
		ReadDateTo:   in.ReadDateTo,
		Content:      security.SanitizeHTML(security.SanitizeString(in.Content)),
		Preference:   in.Preference,
		ShareTo:      in.ShareTo,
		Attach:       in.Attach,
	}

	if err := s.repo.CreateNote(note); err != nil {
		return nil, err
	}

	return s.repo.GetNoteByID(note.ID)
}

// GetNote retrieves a note the viewer is allowed to see: own notes always,
// everyone-scoped notes always, friends-scoped notes only for confirmed
// friends of the author, private notes only for the author.
func (s *NoteService) GetNote(viewerID, noteID uint) (*models.BookNote, error) {
	note, err := s.repo.GetNoteByID(noteID)
	if err != nil {
		return nil, err
	}

	if note.UserID == viewerID {
		return note, nil
	}

	switch note.ShareTo {
	case models.ShareAll:
		return note, nil
	case models.ShareFriends:
		areFriends, err := s.friendRepo.AreFriends(viewerID, note.UserID)
		if err != nil {
			return nil, err
		}
		if areFriends {
			return note, nil
		}
	}

	return nil, errors.New(errors.ErrCodeForbidden, "note is not visible to you")
}

// Feed returns the newest notes visible to the viewer, capped at ten.
func (s *NoteService) Feed(viewerID uint) ([]models.BookNote, error) {
	return s.repo.Feed(viewerID)
}

// NotesByUser returns the viewer's own notes.
func (s *NoteService) NotesByUser(userID uint) ([]models.BookNote, error) {
	return s.repo.NotesByUser(userID)
}

// UpdateNote edits a note. Only the author may edit.
func (s *NoteService) UpdateNote(userID, noteID uint, in *NoteInput) (*models.BookNote, error) {
	note, err := s.repo.GetNoteByID(noteID)
	if err != nil {
		return nil, err
	}

	if note.UserID != userID {
		return nil, errors.New(errors.ErrCodeForbidden, "only the author may edit a note")
	}

	if err := validateNoteInput(in); err != nil {
		return nil, err
	}

	note.ReadDateFrom = in.ReadDateFrom
	note.ReadDateTo = in.ReadDateTo
	note.Content = security.SanitizeHTML(security.SanitizeString(in.Content))
	note.Preference = in.Preference
	note.ShareTo = in.ShareTo
	if in.Attach != "" {
		note.Attach = in.Attach
	}

	if err := s.repo.UpdateNote(note); err != nil {
		return nil, err
	}

	return s.repo.GetNoteByID(note.ID)
}

// DeleteNote removes a note. Only the author may delete.
func (s *NoteService) DeleteNote(userID, noteID uint) error {
	note, err := s.repo.GetNoteByID(noteID)
	if err != nil {
		return err
	}

	if note.UserID != userID {
		return errors.New(errors.ErrCodeForbidden, "only the author may delete a note")
	}

	return s.repo.DeleteNote(noteID)
}

// LikeNote records the user's like on a note. Liking twice is a no-op.
func (s *NoteService) LikeNote(userID, noteID uint) error {
	if _, err := s.GetNote(userID, noteID); err != nil {
		return err
	}
	return s.repo.Like(userID, noteID)
}

// UnlikeNote withdraws the user's like from a note.
func (s *NoteService) UnlikeNote(userID, noteID uint) error {
	if _, err := s.repo.GetNoteByID(noteID); err != nil {
		return err
	}
	return s.repo.Unlike(userID, noteID)
}

// ReplyToNote appends a reply to a note the user can see.
func (s *NoteService) ReplyToNote(userID, noteID uint, content string) (*models.BookNoteReply, error) {
	content = security.SanitizeHTML(security.SanitizeString(content))
	if strings.TrimSpace(content) == "" {
		return nil, errors.New(errors.ErrCodeValidation, "reply content is required")
	}
	if len(content) > models.ReplyMaxLength {
		return nil, errors.New(errors.ErrCodeValidation, "reply content is too long")
	}

	if _, err := s.GetNote(userID, noteID); err != nil {
		return nil, err
	}

	reply := &models.BookNoteReply{
		UserID:  userID,
		NoteID:  noteID,
		Content: content,
	}

	if err := s.repo.CreateReply(reply); err != nil {
		return nil, err
	}

	// Reload so the view model carries the author, not a zero user.
	return s.repo.GetReplyByID(reply.ID)
}

// ListReplies returns a note's replies, oldest first, provided the viewer
// can see the note.
func (s *NoteService) ListReplies(viewerID, noteID uint) ([]models.BookNoteReply, error) {
	if _, err := s.GetNote(viewerID, noteID); err != nil {
		return nil, err
	}
	return s.repo.ListReplies(noteID)
}
