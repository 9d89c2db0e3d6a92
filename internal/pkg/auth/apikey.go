package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 12

// HashAPIKey hashes an API key for storage in configuration
func HashAPIKey(apiKey string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(apiKey), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckAPIKey verifies an API key against its configured hash
func CheckAPIKey(hashedKey, apiKey string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(apiKey))
	return err == nil
}
