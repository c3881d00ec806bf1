package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type BookNote struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	User         User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BookID       uint      `gorm:"not null;index"`
	Book         Book      `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	ReadDateFrom time.Time `gorm:"type:date;not null"`
	ReadDateTo   time.Time `gorm:"type:date;not null"`
	Content      string    `gorm:"type:text"`
	Preference   int       `gorm:"default:3;not null"`
	ShareTo      string    `gorm:"type:varchar(1);default:'F';not null"`
	Attach       string    `gorm:"type:varchar(500)"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Likeit  []BookNoteLikeit `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE"`
	Replies []BookNoteReply  `gorm:"foreignKey:NoteID;constraint:OnDelete:CASCADE"`
}

// Share scope constants
const (
	SharePrivate = "P"
	ShareFriends = "F"
	ShareAll     = "A"
)

// Preference rating bounds
const (
	PreferenceMin = 1
	PreferenceMax = 5
)

// FeedLimit caps the number of notes returned by the friend feed query.
const FeedLimit = 10

// BeforeSave hook for validation
func (n *BookNote) BeforeSave(tx *gorm.DB) error {
	if n.ReadDateFrom.IsZero() || n.ReadDateTo.IsZero() {
		return gorm.ErrInvalidData
	}

	if n.ReadDateTo.Before(n.ReadDateFrom) {
		return gorm.ErrInvalidData
	}

	if n.Preference < PreferenceMin || n.Preference > PreferenceMax {
		return gorm.ErrInvalidData
	}

	if n.ShareTo != SharePrivate && n.ShareTo != ShareFriends && n.ShareTo != ShareAll {
		return gorm.ErrInvalidData
	}

	return nil
}

func (BookNote) TableName() string {
	return "booknotes"
}

// BookNoteLikeit records one user liking one note. The composite unique
// index makes duplicate likes a constraint violation rather than a new row.
type BookNoteLikeit struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_likeit_pair,unique"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	NoteID    uint      `gorm:"not null;index:idx_likeit_pair,unique"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (BookNoteLikeit) TableName() string {
	return "booknote_likeit"
}

// ReplyMaxLength bounds reply content.
const ReplyMaxLength = 258

type BookNoteReply struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	NoteID    uint      `gorm:"not null;index"`
	Content   string    `gorm:"type:varchar(258);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// BeforeSave hook for validation
func (r *BookNoteReply) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(r.Content) == "" {
		return gorm.ErrInvalidData
	}

	if len(r.Content) > ReplyMaxLength {
		return gorm.ErrInvalidData
	}

	return nil
}

func (BookNoteReply) TableName() string {
	return "booknote_replies"
}
