package services

import (
	"strings"

	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/internal/repositories"
	"github.com/binehq/bine-server/pkg/errors"
)

type FriendService struct {
	repo     *repositories.FriendRepository
	userRepo *repositories.UserRepository
}

func NewFriendService(repo *repositories.FriendRepository, userRepo *repositories.UserRepository) *FriendService {
	return &FriendService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// AddFriend sends a friend request from one user to another. Requesting
// yourself is rejected; repeating a request is idempotent.
func (s *FriendService) AddFriend(fromID, toID uint) (*models.FriendRelation, error) {
	if fromID == toID {
		return nil, errors.New(errors.ErrCodeValidation, "cannot befriend yourself")
	}

	if _, err := s.userRepo.GetUserByID(toID); err != nil {
		return nil, err
	}

	return s.repo.CreateRequest(fromID, toID)
}

// ConfirmFriend accepts a pending request from requesterID, establishing the
// friendship in both directions atomically.
func (s *FriendService) ConfirmFriend(userID, requesterID uint) error {
	return s.repo.Confirm(userID, requesterID)
}

// DeclineFriend rejects a pending request from requesterID.
func (s *FriendService) DeclineFriend(userID, requesterID uint) error {
	return s.repo.Decline(userID, requesterID)
}

// RemoveFriend tears down the relation between two users in both directions.
func (s *FriendService) RemoveFriend(userID, friendID uint) error {
	if userID == friendID {
		return errors.New(errors.ErrCodeValidation, "cannot unfriend yourself")
	}
	return s.repo.Remove(userID, friendID)
}

// ConfirmedFriends lists the user's confirmed friends.
func (s *FriendService) ConfirmedFriends(userID uint) ([]models.User, error) {
	return s.repo.ConfirmedFriends(userID)
}

// PendingFriends lists users whose friend requests await the user's
// decision.
func (s *FriendService) PendingFriends(userID uint) ([]models.User, error) {
	requests, err := s.repo.PendingRequests(userID)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(requests))
	for _, req := range requests {
		users = append(users, req.FromUser)
	}
	return users, nil
}

// SearchUsers finds users matching the query, excluding the searcher and
// anyone already related to them.
func (s *FriendService) SearchUsers(userID uint, query string) ([]models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New(errors.ErrCodeValidation, "search query must not be empty")
	}
	return s.userRepo.SearchUsers(userID, query)
}

// RecommendedFriends returns everyone the user is not yet related to. No
// ranking is applied.
func (s *FriendService) RecommendedFriends(userID uint) ([]models.User, error) {
	return s.userRepo.RecommendedUsers(userID)
}
