package handlers

import (
	"net/http"
	"strconv"

	"github.com/binehq/bine-server/internal/middleware"
	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/internal/serializers"
	"github.com/binehq/bine-server/internal/services"
	"github.com/binehq/bine-server/pkg/errors"
	"github.com/gin-gonic/gin"
)

type updateProfileRequest struct {
	Email           *string `json:"email"`
	FullName        *string `json:"fullname"`
	Birthday        *string `json:"birthday"`
	Sex             *string `json:"sex"`
	Tagline         *string `json:"tagline"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirm_password"`
}

// Me handles GET /api/users/me
func (h *Handler) Me(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	user, err := h.Users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.User(user))
}

// UpdateMe handles PATCH /api/users/me
func (h *Handler) UpdateMe(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.New(errors.ErrCodeValidation, err.Error()))
		return
	}

	update := &services.ProfileUpdate{
		Email:           req.Email,
		FullName:        req.FullName,
		Sex:             req.Sex,
		Tagline:         req.Tagline,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}

	if req.Birthday != nil {
		birthday, err := parseDate(*req.Birthday)
		if err != nil {
			respondError(c, errors.New(errors.ErrCodeValidation, "birthday must be YYYY-MM-DD"))
			return
		}
		update.Birthday = &birthday
	}

	user, err := h.Users.UpdateProfile(userID, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.User(user))
}

// GetUser handles GET /api/users/:id. A non-numeric parameter is treated as
// a username lookup.
func (h *Handler) GetUser(c *gin.Context) {
	param := c.Param("id")

	var user *models.User
	if id, err := strconv.ParseUint(param, 10, 32); err == nil {
		user, err = h.Users.GetByID(uint(id))
		if err != nil {
			respondError(c, err)
			return
		}
	} else {
		var lookupErr error
		user, lookupErr = h.Users.GetByUsername(param)
		if lookupErr != nil {
			respondError(c, lookupErr)
			return
		}
	}

	c.JSON(http.StatusOK, serializers.User(user))
}
