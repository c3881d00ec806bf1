package handlers

import (
	"net/http"
	"time"

	"github.com/binehq/bine-server/internal/config"
	"github.com/binehq/bine-server/internal/services"
	"github.com/binehq/bine-server/internal/storage"
	"github.com/binehq/bine-server/pkg/errors"
	"github.com/binehq/bine-server/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Config  *config.Config
	Users   *services.UserService
	Friends *services.FriendService
	Books   *services.BookService
	Notes   *services.NoteService
	Media   *storage.MediaStore
}

func NewHandler(cfg *config.Config, users *services.UserService, friends *services.FriendService, books *services.BookService, notes *services.NoteService, media *storage.MediaStore) *Handler {
	return &Handler{
		Config:  cfg,
		Users:   users,
		Friends: friends,
		Books:   books,
		Notes:   notes,
		Media:   media,
	}
}

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// respondError translates an AppError code into an HTTP status.
func respondError(c *gin.Context, err error) {
	code := errors.Code(err)

	var status int
	switch code {
	case errors.ErrCodeValidation:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeAlreadyExists:
		status = http.StatusConflict
	case errors.ErrCodeUnauthorized:
		status = http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		status = http.StatusForbidden
	case errors.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "path", c.FullPath(), "error", err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	message := err.Error()
	if appErr, ok := err.(*errors.AppError); ok {
		message = appErr.Message
	}
	c.JSON(status, gin.H{"error": message})
}
