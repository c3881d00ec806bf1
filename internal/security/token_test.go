package security

import (
	"testing"
)

const testSecret = "test_secret_key_minimum_32_chars"

func TestGenerateJWT(t *testing.T) {
	tests := []struct {
		name         string
		userID       uint
		tokenVersion int
	}{
		{
			name:         "First session",
			userID:       1,
			tokenVersion: 0,
		},
		{
			name:         "After password change",
			userID:       2,
			tokenVersion: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateJWT(tt.userID, tt.tokenVersion, testSecret)
			if err != nil {
				t.Fatalf("GenerateJWT() error = %v", err)
			}

			if token == "" {
				t.Error("GenerateJWT() returned empty token")
			}

			// Validate the token
			claims, err := ValidateJWT(token, testSecret)
			if err != nil {
				t.Fatalf("ValidateJWT() error = %v", err)
			}

			if claims.UserID != tt.userID {
				t.Errorf("UserID = %d, want %d", claims.UserID, tt.userID)
			}

			if claims.TokenVersion != tt.tokenVersion {
				t.Errorf("TokenVersion = %d, want %d", claims.TokenVersion, tt.tokenVersion)
			}
		})
	}
}

func TestValidateJWT_InvalidToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "Empty token",
			token: "",
		},
		{
			name:  "Garbage token",
			token: "not.a.token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateJWT(tt.token, testSecret); err == nil {
				t.Error("ValidateJWT() expected error, got nil")
			}
		})
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(1, 0, testSecret)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(token, "another_secret_key_with_32_chars"); err == nil {
		t.Error("ValidateJWT() expected error with wrong secret, got nil")
	}
}
