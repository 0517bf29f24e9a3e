package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost used for admin password hashes
const BcryptCost = 12

// HashPassword hashes a password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a bcrypt hash with a plain password
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// Credentials is the configured admin account. Exactly one of Password or
// PasswordHash is expected; PasswordHash wins when both are set.
type Credentials struct {
	Email        string
	Password     string
	PasswordHash string
}

// Matches reports whether email and password identify the configured admin
func (c Credentials) Matches(email, password string) bool {
	if c.Email == "" || !strings.EqualFold(strings.TrimSpace(email), c.Email) {
		return false
	}
	if c.PasswordHash != "" {
		return CheckPassword(c.PasswordHash, password)
	}
	if c.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c.Password), []byte(password)) == 1
}
