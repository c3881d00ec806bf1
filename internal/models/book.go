package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// BookCategory is admin-managed reference data. The age-band categories used
// by the recommendation query are seeded at startup.
type BookCategory struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (BookCategory) TableName() string {
	return "book_categories"
}

type Book struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(128);not null"`
	Author      string `gorm:"type:varchar(128);not null"`
	AuthorEtc   string `gorm:"type:varchar(128)"`
	Illustrator string `gorm:"type:varchar(128)"`
	Translator  string `gorm:"type:varchar(50)"`
	ISBN        string `gorm:"type:varchar(10)"`
	ISBN13      string `gorm:"type:varchar(13);uniqueIndex;not null"`
	Barcode     string `gorm:"type:varchar(16)"`
	Publisher   string `gorm:"type:varchar(128)"`
	PubDate     *time.Time
	Description string        `gorm:"type:text"`
	Photo       string        `gorm:"type:varchar(500)"`
	Link        string        `gorm:"type:varchar(500)"`
	CategoryID  *uint         `gorm:"index"`
	Category    *BookCategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time     `gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime"`
}

// BeforeSave hook for validation
func (b *Book) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(b.Title) == "" {
		return gorm.ErrInvalidData
	}

	if strings.TrimSpace(b.Author) == "" {
		return gorm.ErrInvalidData
	}

	if !ValidISBN13(b.ISBN13) {
		return gorm.ErrInvalidData
	}

	return nil
}

// ValidISBN13 reports whether s is exactly 13 ASCII digits.
func ValidISBN13(s string) bool {
	if len(s) != 13 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (Book) TableName() string {
	return "books"
}

// Age-band category names used by the recommendation query.
const (
	CategoryToddler  = "toddler"
	CategoryChildren = "children"
	CategoryTeen     = "teen"
	CategoryAdult    = "adult"
)

// AgeBandCategory maps an age in years to the category recommended for it.
func AgeBandCategory(age int) string {
	switch {
	case age < 8:
		return CategoryToddler
	case age < 13:
		return CategoryChildren
	case age < 18:
		return CategoryTeen
	default:
		return CategoryAdult
	}
}

func AgeBandCategories() []string {
	return []string{CategoryToddler, CategoryChildren, CategoryTeen, CategoryAdult}
}
