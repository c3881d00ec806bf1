package services

import (
	"strings"
	"time"

	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/internal/repositories"
	"github.com/binehq/bine-server/pkg/errors"
)

type BookService struct {
	repo     *repositories.BookRepository
	pageSize int
}

func NewBookService(repo *repositories.BookRepository, pageSize int) *BookService {
	return &BookService{
		repo:     repo,
		pageSize: pageSize,
	}
}

// BookInput carries the fields accepted when registering a book.
type BookInput struct {
	Title       string
	Author      string
	AuthorEtc   string
	Illustrator string
	Translator  string
	ISBN        string
	ISBN13      string
	Barcode     string
	Publisher   string
	PubDate     *time.Time
	Description string
	Photo       string
	Link        string
	Category    string
}

// CreateBook registers a book in the catalog. ISBN13 is required and
// globally unique.
func (s *BookService) CreateBook(in *BookInput) (*models.Book, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, errors.New(errors.ErrCodeValidation, "title is required")
	}
	if strings.TrimSpace(in.Author) == "" {
		return nil, errors.New(errors.ErrCodeValidation, "author is required")
	}
	if !models.ValidISBN13(in.ISBN13) {
		return nil, errors.New(errors.ErrCodeValidation, "isbn13 must be 13 digits")
	}

	book := &models.Book{
		Title:       strings.TrimSpace(in.Title),
		Author:      strings.TrimSpace(in.Author),
		AuthorEtc:   in.AuthorEtc,
		Illustrator: in.Illustrator,
		Translator:  in.Translator,
		ISBN:        in.ISBN,
		ISBN13:      in.ISBN13,
		Barcode:     in.Barcode,
		Publisher:   in.Publisher,
		PubDate:     in.PubDate,
		Description: in.Description,
		Photo:       in.Photo,
		Link:        in.Link,
	}

	if in.Category != "" {
		category, err := s.repo.GetCategoryByName(in.Category)
		if err != nil {
			return nil, err
		}
		book.CategoryID = &category.ID
	}

	if err := s.repo.CreateBook(book); err != nil {
		return nil, err
	}

	return book, nil
}

// GetBook retrieves a book by id
func (s *BookService) GetBook(id uint) (*models.Book, error) {
	return s.repo.GetBookByID(id)
}

// GetBookByISBN13 retrieves a book by its 13-digit ISBN, typically from a
// barcode scan.
func (s *BookService) GetBookByISBN13(isbn13 string) (*models.Book, error) {
	if !models.ValidISBN13(isbn13) {
		return nil, errors.New(errors.ErrCodeValidation, "isbn13 must be 13 digits")
	}
	return s.repo.GetBookByISBN13(isbn13)
}

// ListBooks returns one catalog page
func (s *BookService) ListBooks(page int) ([]models.Book, error) {
	return s.repo.ListBooks(page, s.pageSize)
}

// SearchBooks finds books by title or author substring.
func (s *BookService) SearchBooks(query string) ([]models.Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New(errors.ErrCodeValidation, "search query must not be empty")
	}
	return s.repo.SearchBooks(query)
}

// RecommendedBooks returns books in the category matching the user's age
// band, newest publications first.
func (s *BookService) RecommendedBooks(user *models.User) ([]models.Book, error) {
	category := models.AgeBandCategory(user.Age(time.Now()))
	return s.repo.BooksByCategory(category)
}
