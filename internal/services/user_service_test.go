package services

import (
	"testing"
	"time"

	"github.com/binehq/bine-server/internal/models"
	"github.com/binehq/bine-server/pkg/errors"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func validInput() *RegisterInput {
	return &RegisterInput{
		Username: "booklover",
		Password: "correcthorse",
		Email:    "booklover@example.com",
		FullName: "Book Lover",
		Birthday: date("1990-01-01"),
		Sex:      models.SexFemale,
	}
}

func TestValidateRegisterInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr bool
	}{
		{
			name:    "Valid input",
			mutate:  func(in *RegisterInput) {},
			wantErr: false,
		},
		{
			name:    "Missing username",
			mutate:  func(in *RegisterInput) { in.Username = "  " },
			wantErr: true,
		},
		{
			name:    "Short password",
			mutate:  func(in *RegisterInput) { in.Password = "short" },
			wantErr: true,
		},
		{
			name:    "Missing email",
			mutate:  func(in *RegisterInput) { in.Email = "" },
			wantErr: true,
		},
		{
			name:    "Invalid email",
			mutate:  func(in *RegisterInput) { in.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "Missing fullname",
			mutate:  func(in *RegisterInput) { in.FullName = "" },
			wantErr: true,
		},
		{
			name:    "Missing birthday",
			mutate:  func(in *RegisterInput) { in.Birthday = time.Time{} },
			wantErr: true,
		},
		{
			name:    "Invalid sex",
			mutate:  func(in *RegisterInput) { in.Sex = "X" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			err := validateRegisterInput(in)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRegisterInput() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && errors.Code(err) != errors.ErrCodeValidation {
				t.Errorf("error code = %q, want %q", errors.Code(err), errors.ErrCodeValidation)
			}
		})
	}
}

func TestApplyPasswordChange(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		confirm     string
		wantChanged bool
		wantErr     bool
	}{
		{
			name:        "Matching confirmation changes password",
			password:    "newpassword1",
			confirm:     "newpassword1",
			wantChanged: true,
			wantErr:     false,
		},
		{
			// The mismatch is deliberately a silent no-op, not an error.
			name:        "Mismatched confirmation is silently ignored",
			password:    "newpassword1",
			confirm:     "different",
			wantChanged: false,
			wantErr:     false,
		},
		{
			name:        "Empty password is ignored",
			password:    "",
			confirm:     "",
			wantChanged: false,
			wantErr:     false,
		},
		{
			name:        "Matching but too short",
			password:    "short",
			confirm:     "short",
			wantChanged: false,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{
				PasswordHash: "original-hash",
				TokenVersion: 1,
			}

			err := applyPasswordChange(user, tt.password, tt.confirm)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyPasswordChange() error = %v, wantErr %v", err, tt.wantErr)
			}

			changed := user.PasswordHash != "original-hash"
			if changed != tt.wantChanged {
				t.Errorf("password changed = %v, want %v", changed, tt.wantChanged)
			}

			if tt.wantChanged {
				if user.PasswordHash == tt.password {
					t.Error("password stored as plaintext")
				}
				if user.TokenVersion != 2 {
					t.Errorf("TokenVersion = %d, want 2 after password change", user.TokenVersion)
				}
			} else if user.TokenVersion != 1 {
				t.Errorf("TokenVersion = %d, want 1 when password unchanged", user.TokenVersion)
			}
		})
	}
}
