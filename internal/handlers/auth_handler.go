package handlers

import (
	"net/http"

	"github.com/binehq/bine-server/internal/serializers"
	"github.com/binehq/bine-server/internal/services"
	"github.com/binehq/bine-server/pkg/errors"
	"github.com/binehq/bine-server/pkg/logger"
	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
	FullName string `json:"fullname" binding:"required"`
	Birthday string `json:"birthday" binding:"required"`
	Sex      string `json:"sex" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.New(errors.ErrCodeValidation, err.Error()))
		return
	}

	birthday, err := parseDate(req.Birthday)
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeValidation, "birthday must be YYYY-MM-DD"))
		return
	}

	user, err := h.Users.Register(&services.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
		Birthday: birthday,
		Sex:      req.Sex,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	_, token, err := h.Users.Authenticate(user.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("New user registered", "user_id", user.ID, "username", user.Username)

	c.JSON(http.StatusCreated, gin.H{
		"user":         serializers.User(user),
		"access_token": token,
	})
}

// Login handles POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.New(errors.ErrCodeValidation, err.Error()))
		return
	}

	user, token, err := h.Users.Authenticate(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         serializers.User(user),
		"access_token": token,
	})
}
