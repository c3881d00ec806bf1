package repositories

import (
	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) *FriendRepository {
	return &FriendRepository{db: db}
}

// CreateRequest creates the directed pending relation from→to. Repeating a
// request is a no-op returning the existing row.
func (r *FriendRepository) CreateRequest(fromID, toID uint) (*models.FriendRelation, error) {
	var existing models.FriendRelation
	result := r.db.Where("from_user_id = ? AND to_user_id = ?", fromID, toID).First(&existing)

	if result.Error == nil {
		return &existing, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to check existing relation")
	}

	relation := &models.FriendRelation{
		FromUserID: fromID,
		ToUserID:   toID,
		Status:     models.FriendStatusPending,
	}

	err := r.db.Create(relation).Error
	if err == gorm.ErrDuplicatedKey {
		// Lost a race with an identical request; fetch the winner's row.
		if ferr := r.db.Where("from_user_id = ? AND to_user_id = ?", fromID, toID).First(relation).Error; ferr == nil {
			return relation, nil
		}
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create friend request")
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to create friend request")
	}

	return relation, nil
}

// Confirm marks the pending relation requester→user as confirmed and writes
// the inverse confirmed relation in the same transaction. This replaces the
// recursive symmetric-add pattern with a single atomic unit.
func (r *FriendRepository) Confirm(userID, requesterID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.FriendRelation{}).
			Where("from_user_id = ? AND to_user_id = ? AND status = ?",
				requesterID, userID, models.FriendStatusPending).
			Update("status", models.FriendStatusConfirmed)

		if result.Error != nil {
			return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to confirm friend request")
		}
		if result.RowsAffected == 0 {
			return errors.New(errors.ErrCodeNotFound, "friend request not found or already processed")
		}

		inverse := &models.FriendRelation{
			FromUserID: userID,
			ToUserID:   requesterID,
			Status:     models.FriendStatusConfirmed,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "from_user_id"}, {Name: "to_user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"status": models.FriendStatusConfirmed}),
		}).Create(inverse).Error
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternalError, "failed to write inverse relation")
		}

		return nil
	})
}

// Decline marks the pending relation requester→user as declined.
func (r *FriendRepository) Decline(userID, requesterID uint) error {
	result := r.db.Model(&models.FriendRelation{}).
		Where("from_user_id = ? AND to_user_id = ? AND status = ?",
			requesterID, userID, models.FriendStatusPending).
		Update("status", models.FriendStatusDeclined)

	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to decline friend request")
	}
	if result.RowsAffected == 0 {
		return errors.New(errors.ErrCodeNotFound, "friend request not found or already processed")
	}

	return nil
}

// Remove deletes both directed relations between two users in one
// transaction.
func (r *FriendRepository) Remove(aID, bID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where(
			"(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			aID, bID, bID, aID,
		).Delete(&models.FriendRelation{})

		if result.Error != nil {
			return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to remove friend")
		}
		if result.RowsAffected == 0 {
			return errors.New(errors.ErrCodeNotFound, "friend relation not found")
		}

		return nil
	})
}

// ConfirmedFriends retrieves the users the given user is confirmed friends
// with.
func (r *FriendRepository) ConfirmedFriends(userID uint) ([]models.User, error) {
	var friends []models.User

	err := r.db.Table("users").
		Select("users.*").
		Joins("JOIN friend_relations ON friend_relations.to_user_id = users.id").
		Where("friend_relations.from_user_id = ? AND friend_relations.status = ?",
			userID, models.FriendStatusConfirmed).
		Order("users.username").
		Find(&friends).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get friends")
	}

	return friends, nil
}

// PendingRequests retrieves incoming friend requests awaiting the user's
// decision, with the requester preloaded.
func (r *FriendRepository) PendingRequests(userID uint) ([]models.FriendRelation, error) {
	var requests []models.FriendRelation

	err := r.db.Where("to_user_id = ? AND status = ?", userID, models.FriendStatusPending).
		Preload("FromUser").
		Order("created_at DESC").
		Find(&requests).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get pending requests")
	}

	return requests, nil
}

// AreFriends checks whether the directed confirmed relation a→b exists.
// Confirmed relations are always written in pairs, so one direction decides.
func (r *FriendRepository) AreFriends(aID, bID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.FriendRelation{}).
		Where("from_user_id = ? AND to_user_id = ? AND status = ?",
			aID, bID, models.FriendStatusConfirmed).
		Count(&count)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to check friendship")
	}

	return count > 0, nil
}

// ConfirmedFriendIDs returns the ids of the user's confirmed friends.
func (r *FriendRepository) ConfirmedFriendIDs(userID uint) ([]uint, error) {
	var ids []uint

	err := r.db.Model(&models.FriendRelation{}).
		Where("from_user_id = ? AND status = ?", userID, models.FriendStatusConfirmed).
		Pluck("to_user_id", &ids).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get friend ids")
	}

	return ids, nil
}
