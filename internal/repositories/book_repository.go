package repositories

import (
	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/pkg/errors"
	"gorm.io/gorm"
)

type BookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *BookRepository {
	return &BookRepository{db: db}
}

// CreateBook creates a new book
func (r *BookRepository) CreateBook(book *models.Book) error {
	result := r.db.Create(book)
	if result.Error == gorm.ErrDuplicatedKey {
		return errors.New(errors.ErrCodeAlreadyExists, "a book with this isbn13 already exists")
	}
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create book")
	}
	return nil
}

// GetBookByID retrieves a book by ID
func (r *BookRepository) GetBookByID(id uint) (*models.Book, error) {
	var book models.Book
	result := r.db.Preload("Category").First(&book, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "book not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get book")
	}

	return &book, nil
}

// GetBookByISBN13 retrieves a book by its 13-digit ISBN
func (r *BookRepository) GetBookByISBN13(isbn13 string) (*models.Book, error) {
	var book models.Book
	result := r.db.Where("isbn13 = ?", isbn13).First(&book)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "book not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get book")
	}

	return &book, nil
}

// ListBooks returns one page of the catalog, newest publications first.
func (r *BookRepository) ListBooks(page, pageSize int) ([]models.Book, error) {
	if page < 1 {
		page = 1
	}

	var books []models.Book
	err := r.db.
		Order("pub_date DESC NULLS LAST").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&books).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to list books")
	}

	return books, nil
}

// SearchBooks finds books whose title or author contains the query.
func (r *BookRepository) SearchBooks(query string) ([]models.Book, error) {
	var books []models.Book

	err := r.db.
		Where("title LIKE ? OR author LIKE ?", "%"+query+"%", "%"+query+"%").
		Order("pub_date DESC NULLS LAST").
		Find(&books).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to search books")
	}

	return books, nil
}

// BooksByCategory returns books in the named category, newest publications
// first. This backs the age-band recommendation query.
func (r *BookRepository) BooksByCategory(categoryName string) ([]models.Book, error) {
	var books []models.Book

	err := r.db.
		Joins("JOIN book_categories ON book_categories.id = books.category_id").
		Where("book_categories.name = ?", categoryName).
		Order("books.pub_date DESC NULLS LAST").
		Find(&books).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get books by category")
	}

	return books, nil
}

// GetCategoryByName retrieves a category by name
func (r *BookRepository) GetCategoryByName(name string) (*models.BookCategory, error) {
	var category models.BookCategory
	result := r.db.Where("name = ?", name).First(&category)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "category not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get category")
	}

	return &category, nil
}
