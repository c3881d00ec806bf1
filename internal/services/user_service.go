package services

import (
	"strings"
	"time"

	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/internal/repositories"
	"github.com/binehq/bine-server/internal/security"
	"github.com/binehq/bine-server/pkg/errors"
)

type UserService struct {
	repo      *repositories.UserRepository
	jwtSecret string
}

func NewUserService(repo *repositories.UserRepository, jwtSecret string) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

// RegisterInput carries the required signup fields.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	FullName string
	Birthday time.Time
	Sex      string
}

// ProfileUpdate carries a partial profile edit. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Email           *string
	FullName        *string
	Birthday        *time.Time
	Sex             *string
	Tagline         *string
	Password        string
	ConfirmPassword string
}

func validateRegisterInput(in *RegisterInput) error {
	if strings.TrimSpace(in.Username) == "" {
		return errors.New(errors.ErrCodeValidation, "username is required")
	}
	if len(in.Password) < security.PasswordMinLength {
		return errors.New(errors.ErrCodeValidation, "password must be at least 8 characters")
	}
	if strings.TrimSpace(in.Email) == "" || !strings.Contains(in.Email, "@") {
		return errors.New(errors.ErrCodeValidation, "a valid email is required")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return errors.New(errors.ErrCodeValidation, "fullname is required")
	}
	if in.Birthday.IsZero() {
		return errors.New(errors.ErrCodeValidation, "birthday is required")
	}
	if in.Sex != models.SexMale && in.Sex != models.SexFemale {
		return errors.New(errors.ErrCodeValidation, "sex must be M or F")
	}
	return nil
}

// Register creates a new active user with a hashed credential.
func (s *UserService) Register(in *RegisterInput) (*models.User, error) {
	return s.register(in, false)
}

// RegisterSuperuser creates a user with staff and superuser privileges.
func (s *UserService) RegisterSuperuser(in *RegisterInput) (*models.User, error) {
	return s.register(in, true)
}

func (s *UserService) register(in *RegisterInput, super bool) (*models.User, error) {
	if err := validateRegisterInput(in); err != nil {
		return nil, err
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternalError, "failed to hash password")
	}

	user := &models.User{
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(in.FullName),
		Birthday:     in.Birthday,
		Sex:          in.Sex,
		IsActive:     true,
		IsStaff:      super,
		IsSuperuser:  super,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies credentials and issues a bearer token.
func (s *UserService) Authenticate(username, password string) (*models.User, string, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Code(err) == errors.ErrCodeNotFound {
			return nil, "", errors.New(errors.ErrCodeUnauthorized, "invalid credentials")
		}
		return nil, "", err
	}

	if !user.IsActive {
		return nil, "", errors.New(errors.ErrCodeUnauthorized, "account is disabled")
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		return nil, "", errors.New(errors.ErrCodeUnauthorized, "invalid credentials")
	}

	token, err := security.GenerateJWT(user.ID, user.TokenVersion, s.jwtSecret)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeInternalError, "failed to issue token")
	}

	return user, token, nil
}

// UpdateProfile applies a partial profile edit. A password change requires a
// matching confirmation; a mismatch silently skips the password fields while
// the rest of the update still applies. A successful password change bumps
// the token version, invalidating previously issued tokens.
func (s *UserService) UpdateProfile(userID uint, update *ProfileUpdate) (*models.User, error) {
	user, err := s.repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, errors.New(errors.ErrCodeValidation, "a valid email is required")
		}
		user.Email = email
	}
	if update.FullName != nil {
		if strings.TrimSpace(*update.FullName) == "" {
			return nil, errors.New(errors.ErrCodeValidation, "fullname must not be empty")
		}
		user.FullName = strings.TrimSpace(*update.FullName)
	}
	if update.Birthday != nil {
		if update.Birthday.IsZero() {
			return nil, errors.New(errors.ErrCodeValidation, "birthday must be a valid date")
		}
		user.Birthday = *update.Birthday
	}
	if update.Sex != nil {
		if *update.Sex != models.SexMale && *update.Sex != models.SexFemale {
			return nil, errors.New(errors.ErrCodeValidation, "sex must be M or F")
		}
		user.Sex = *update.Sex
	}
	if update.Tagline != nil {
		user.Tagline = *update.Tagline
	}

	if err := applyPasswordChange(user, update.Password, update.ConfirmPassword); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

// applyPasswordChange re-hashes the credential when password and
// confirmation are both present and equal, bumping the token version. A
// mismatched confirmation silently skips the password fields rather than
// failing the whole update; the rest of the profile edit still applies.
func applyPasswordChange(user *models.User, password, confirm string) error {
	if password == "" || password != confirm {
		return nil
	}

	if len(password) < security.PasswordMinLength {
		return errors.New(errors.ErrCodeValidation, "password must be at least 8 characters")
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternalError, "failed to hash password")
	}

	user.PasswordHash = hash
	user.TokenVersion++
	return nil
}

// GetByID retrieves a user by id
func (s *UserService) GetByID(id uint) (*models.User, error) {
	return s.repo.GetUserByID(id)
}

// GetByUsername retrieves a user by username
func (s *UserService) GetByUsername(username string) (*models.User, error) {
	return s.repo.GetUserByUsername(username)
}
