package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(128);not null"`
	FullName     string    `gorm:"type:varchar(80);not null"`
	Birthday     time.Time `gorm:"type:date;not null"`
	Sex          string    `gorm:"type:varchar(1);not null"`
	Tagline      string    `gorm:"type:varchar(128)"`
	Photo        string    `gorm:"type:varchar(500)"`
	IsStaff      bool      `gorm:"default:false;not null"`
	IsActive     bool      `gorm:"default:true;not null"`
	IsSuperuser  bool      `gorm:"default:false;not null"`
	TokenVersion int       `gorm:"default:0;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

const (
	SexMale   = "M"
	SexFemale = "F"
)

// BeforeSave hook for validation
func (u *User) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(u.Username) == "" {
		return gorm.ErrInvalidData
	}

	if strings.TrimSpace(u.Email) == "" || !strings.Contains(u.Email, "@") {
		return gorm.ErrInvalidData
	}

	if strings.TrimSpace(u.FullName) == "" {
		return gorm.ErrInvalidData
	}

	if u.Birthday.IsZero() {
		return gorm.ErrInvalidData
	}

	if u.Sex != SexMale && u.Sex != SexFemale {
		return gorm.ErrInvalidData
	}

	return nil
}

// Age returns the user's age in full years at the given reference time.
func (u *User) Age(now time.Time) int {
	age := now.Year() - u.Birthday.Year()
	if now.YearDay() < u.Birthday.YearDay() {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}
