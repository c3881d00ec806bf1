package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/binehq/bine-server/internal/middleware"
	"github.com/binehq/bine-server/internal/security"
	"github.com/binehq/bine-server/internal/serializers"
	"github.com/binehq/bine-server/internal/services"
	"github.com/binehq/bine-server/internal/storage"
	"github.com/binehq/bine-server/pkg/errors"
	"github.com/binehq/bine-server/pkg/logger"
	"github.com/gin-gonic/gin"
)

var allowedAttachTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func noteParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.New(errors.ErrCodeValidation, "invalid note id")
	}
	return uint(id), nil
}

// noteInputFromForm reads note fields from a multipart or urlencoded form.
func (h *Handler) noteInputFromForm(c *gin.Context) (*services.NoteInput, error) {
	bookID, err := strconv.ParseUint(c.PostForm("book_id"), 10, 32)
	if err != nil {
		return nil, errors.New(errors.ErrCodeValidation, "book_id is required")
	}

	readFrom, err := parseDate(c.PostForm("read_date_from"))
	if err != nil {
		return nil, errors.New(errors.ErrCodeValidation, "read_date_from must be YYYY-MM-DD")
	}

	readTo, err := parseDate(c.PostForm("read_date_to"))
	if err != nil {
		return nil, errors.New(errors.ErrCodeValidation, "read_date_to must be YYYY-MM-DD")
	}

	preference, err := strconv.Atoi(c.DefaultPostForm("preference", "3"))
	if err != nil {
		return nil, errors.New(errors.ErrCodeValidation, "preference must be a number")
	}

	return &services.NoteInput{
		BookID:       uint(bookID),
		ReadDateFrom: readFrom,
		ReadDateTo:   readTo,
		Content:      c.PostForm("content"),
		Preference:   preference,
		ShareTo:      c.DefaultPostForm("share_to", "F"),
	}, nil
}

// saveAttachment stores an uploaded note image, if any, and returns its
// relative media path.
func (h *Handler) saveAttachment(c *gin.Context, username string) (string, error) {
	fileHeader, err := c.FormFile("attach")
	if err != nil {
		// No attachment supplied.
		return "", nil
	}

	if !security.ValidateFileType(fileHeader.Filename, allowedAttachTypes) {
		return "", errors.New(errors.ErrCodeValidation, "attachment must be an image")
	}
	if !security.ValidateFileSize(fileHeader.Size, h.Config.UploadMaxSize) {
		return "", errors.New(errors.ErrCodeValidation, "attachment is empty or too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeInternalError, "failed to read attachment")
	}
	defer src.Close()

	relPath := storage.AttachmentPath(username, fileHeader.Filename, time.Now())
	return h.Media.Save(relPath, src)
}

// CreateNote handles POST /api/notes (multipart form)
func (h *Handler) CreateNote(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	input, err := h.noteInputFromForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.Users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	attach, err := h.saveAttachment(c, user.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	input.Attach = attach

	note, err := h.Notes.CreateNote(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializers.Note(note))
}

// Feed handles GET /api/notes/feed
func (h *Handler) Feed(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	notes, err := h.Notes.Feed(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Notes(notes))
}

// MyNotes handles GET /api/notes
func (h *Handler) MyNotes(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	notes, err := h.Notes.NotesByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Notes(notes))
}

// GetNote handles GET /api/notes/:id
func (h *Handler) GetNote(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	noteID, err := noteParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	note, err := h.Notes.GetNote(userID, noteID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Note(note))
}

// UpdateNote handles PATCH /api/notes/:id (multipart form)
func (h *Handler) UpdateNote(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	noteID, err := noteParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	input, err := h.noteInputFromForm(c)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.Users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	attach, err := h.saveAttachment(c, user.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	input.Attach = attach

	// Remember the attachment being replaced so its file can be cleaned up.
	var oldAttach string
	if attach != "" {
		if prev, err := h.Notes.GetNote(userID, noteID); err == nil {
			oldAttach = prev.Attach
		}
	}

	note, err := h.Notes.UpdateNote(userID, noteID, input)
	if err != nil {
		respondError(c, err)
		return
	}

	if oldAttach != "" && oldAttach != note.Attach {
		if err := h.Media.Remove(oldAttach); err != nil {
			logger.Warn("Failed to remove replaced attachment", "path", oldAttach, "error", err)
		}
	}

	c.JSON(http.StatusOK, serializers.Note(note))
}

// DeleteNote handles DELETE /api/notes/:id
func (h *Handler) DeleteNote(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	noteID, err := noteParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	note, err := h.Notes.GetNote(userID, noteID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Notes.DeleteNote(userID, noteID); err != nil {
		respondError(c, err)
		return
	}

	if err := h.Media.Remove(note.Attach); err != nil {
		logger.Warn("Failed to remove note attachment", "path", note.Attach, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// LikeNote handles POST /api/notes/:id/like
func (h *Handler) LikeNote(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	noteID, err := noteParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Notes.LikeNote(userID, noteID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "liked"})
}

// UnlikeNote handles DELETE /api/notes/:id/like
func (h *Handler) UnlikeNote(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	noteID, err := noteParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Notes.UnlikeNote(userID, noteID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "unliked"})
}

type replyRequest struct {
	Content string `json:"content" binding:"required"`
}

// ReplyToNote handles POST /api/notes/:id/replies
func (h *Handler) ReplyToNote(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	noteID, err := noteParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.New(errors.ErrCodeValidation, err.Error()))
		return
	}

	reply, err := h.Notes.ReplyToNote(userID, noteID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializers.Reply(reply))
}

// ListReplies handles GET /api/notes/:id/replies
func (h *Handler) ListReplies(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	noteID, err := noteParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	replies, err := h.Notes.ListReplies(userID, noteID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Replies(replies))
}
