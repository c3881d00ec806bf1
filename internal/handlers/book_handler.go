package handlers

import (
	"net/http"
	"strconv"

	"github.com/binehq/bine-server/internal/middleware"
	"github.com/binehq/bine-server/internal/serializers"
	"github.com/binehq/bine-server/internal/services"
	"github.com/binehq/bine-server/pkg/errors"
	"github.com/gin-gonic/gin"
)

type createBookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	AuthorEtc   string `json:"author_etc"`
	Illustrator string `json:"illustrator"`
	Translator  string `json:"translator"`
	ISBN        string `json:"isbn"`
	ISBN13      string `json:"isbn13" binding:"required"`
	Barcode     string `json:"barcode"`
	Publisher   string `json:"publisher"`
	PubDate     string `json:"pub_date"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

// ListBooks handles GET /api/books?page=&q=&isbn13=
func (h *Handler) ListBooks(c *gin.Context) {
	if isbn := c.Query("isbn13"); isbn != "" {
		book, err := h.Books.GetBookByISBN13(isbn)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, serializers.Book(book))
		return
	}

	if query := c.Query("q"); query != "" {
		books, err := h.Books.SearchBooks(query)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, serializers.Books(books))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	books, err := h.Books.ListBooks(page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Books(books))
}

// GetBook handles GET /api/books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, errors.New(errors.ErrCodeValidation, "invalid book id"))
		return
	}

	book, err := h.Books.GetBook(uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Book(book))
}

// CreateBook handles POST /api/books. Staff only.
func (h *Handler) CreateBook(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	user, err := h.Users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !user.IsStaff {
		respondError(c, errors.New(errors.ErrCodeForbidden, "staff privileges required"))
		return
	}

	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.New(errors.ErrCodeValidation, err.Error()))
		return
	}

	input := &services.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		AuthorEtc:   req.AuthorEtc,
		Illustrator: req.Illustrator,
		Translator:  req.Translator,
		ISBN:        req.ISBN,
		ISBN13:      req.ISBN13,
		Barcode:     req.Barcode,
		Publisher:   req.Publisher,
		Description: req.Description,
		Photo:       req.Photo,
		Link:        req.Link,
		Category:    req.Category,
	}

	if req.PubDate != "" {
		pubDate, err := parseDate(req.PubDate)
		if err != nil {
			respondError(c, errors.New(errors.ErrCodeValidation, "pub_date must be YYYY-MM-DD"))
			return
		}
		input.PubDate = &pubDate
	}

	book, err := h.Books.CreateBook(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializers.Book(book))
}

// RecommendedBooks handles GET /api/books/recommended
func (h *Handler) RecommendedBooks(c *gin.Context) {
	userID, _ := middleware.CurrentUserID(c)

	user, err := h.Users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	books, err := h.Books.RecommendedBooks(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.Books(books))
}
