package repositories

import (
	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(user *models.User) error {
	result := r.db.Create(user)
	if result.Error == gorm.ErrDuplicatedKey {
		return errors.New(errors.ErrCodeAlreadyExists, "username or email already taken")
	}
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to create user")
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, id)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get user")
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (r *UserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	result := r.db.Where("username = ?", username).First(&user)

	if result.Error == gorm.ErrRecordNotFound {
		return nil, errors.New(errors.ErrCodeNotFound, "user not found")
	}
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to get user")
	}

	return &user, nil
}

// UpdateUser persists changes to a user record
func (r *UserRepository) UpdateUser(user *models.User) error {
	result := r.db.Save(user)
	if result.Error == gorm.ErrDuplicatedKey {
		return errors.New(errors.ErrCodeAlreadyExists, "username or email already taken")
	}
	if result.Error != nil {
		return errors.Wrap(result.Error, errors.ErrCodeInternalError, "failed to update user")
	}
	return nil
}

// SearchUsers finds active users whose username or fullname contains the
// query, excluding the searching user and anyone already related to them.
func (r *UserRepository) SearchUsers(userID uint, query string) ([]models.User, error) {
	var users []models.User

	err := r.db.
		Where("(username LIKE ? OR full_name LIKE ?)", "%"+query+"%", "%"+query+"%").
		Where("id != ?", userID).
		Where("is_active = ?", true).
		Where("id NOT IN (?)",
			r.db.Model(&models.FriendRelation{}).
				Select("to_user_id").
				Where("from_user_id = ?", userID),
		).
		Order("username").
		Find(&users).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to search users")
	}

	return users, nil
}

// RecommendedUsers returns all active users except the given user and those
// already related to them. No ranking is applied.
func (r *UserRepository) RecommendedUsers(userID uint) ([]models.User, error) {
	var users []models.User

	err := r.db.
		Where("id != ?", userID).
		Where("is_active = ?", true).
		Where("id NOT IN (?)",
			r.db.Model(&models.FriendRelation{}).
				Select("to_user_id").
				Where("from_user_id = ?", userID),
		).
		Order("username").
		Find(&users).Error

	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to get recommended users")
	}

	return users, nil
}
