package security

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordMinLength is the minimum accepted plaintext password length.
const PasswordMinLength = 8

// HashPassword returns the bcrypt hash of a plaintext password. The stored
// credential never equals the plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
