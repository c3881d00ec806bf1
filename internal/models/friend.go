package models

import (
	"time"
)

// FriendRelation is one direction of a friendship. A confirmed friendship is
// stored as two rows, one per direction, written inside a single transaction.
type FriendRelation struct {
	ID         uint      `gorm:"primaryKey"`
	FromUserID uint      `gorm:"not null;index:idx_friend_pair,unique"`
	FromUser   User      `gorm:"foreignKey:FromUserID;constraint:OnDelete:CASCADE"`
	ToUserID   uint      `gorm:"not null;index:idx_friend_pair,unique"`
	ToUser     User      `gorm:"foreignKey:ToUserID;constraint:OnDelete:CASCADE"`
	Status     string    `gorm:"type:varchar(10);default:'pending';not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// Friend relation status constants
const (
	FriendStatusPending   = "pending"
	FriendStatusConfirmed = "confirmed"
	FriendStatusDeclined  = "declined"
)

func (FriendRelation) TableName() string {
	return "friend_relations"
}
