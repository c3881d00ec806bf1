package handlers

import (
	"net/http"
	"strconv"

	"github.com/binehq/bine-server/internal/middleware"
	"github.com/binehq/bine-server/internal/serializers"
	"github.com/binehq/bine-server/pkg/errors"
	"github.com/gin-gonic/gin"
)

func friendParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.New(errors.ErrCodeValidation, "invalid user id")
	}
	return uint(id), nil
}

// AddFriend handles POST /api/friends/:id
func (h *Handler) AddFriend(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	targetID, err := friendParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	relation, err := h.Friends.AddFriend(userID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": relation.Status})
}

// ConfirmFriend handles POST /api/friends/:id/confirm
func (h *Handler) ConfirmFriend(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	requesterID, err := friendParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Friends.ConfirmFriend(userID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}

// DeclineFriend handles POST /api/friends/:id/decline
func (h *Handler) DeclineFriend(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	requesterID, err := friendParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Friends.DeclineFriend(userID, requesterID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "declined"})
}

// RemoveFriend handles DELETE /api/friends/:id
func (h *Handler) RemoveFriend(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	friendID, err := friendParam(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Friends.RemoveFriend(userID, friendID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

// ListFriends handles GET /api/friends
func (h *Handler) ListFriends(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	friends, err := h.Friends.ConfirmedFriends(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Users(friends))
}

// PendingFriends handles GET /api/friends/pending
func (h *Handler) PendingFriends(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	users, err := h.Friends.PendingFriends(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Users(users))
}

// SearchFriends handles GET /api/friends/search?q=
func (h *Handler) SearchFriends(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	users, err := h.Friends.SearchUsers(userID, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Users(users))
}

// RecommendedFriends handles GET /api/friends/recommended
func (h *Handler) RecommendedFriends(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	users, err := h.Friends.RecommendedFriends(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Users(users))
}
