package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is fixed at 10 rounds, matching the cost the board has
// always used. Changing it only affects newly stored hashes; bcrypt
// embeds the cost in the hash so verification keeps working.
const BcryptCost = 10

// HashPassword derives a one-way salted hash from a plain text password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword checks a plain text password against a stored hash.
// bcrypt performs the comparison in constant time.
func ComparePassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
