package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost factor used for all stored password hashes.
// bcrypt.DefaultCost is 10 rounds.
const HashCost = bcrypt.DefaultCost

// HashPassword creates a bcrypt hash from the given plaintext password.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword checks if the provided plaintext password matches the stored bcrypt hash.
func VerifyPassword(hashedPassword, providedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
}
