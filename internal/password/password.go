// Package password isolates the hashing algorithm from the rest of the
// auth flow. Hashes are salted, so the same plaintext never hashes to the
// same string twice, but every hash verifies against its plaintext.
package password

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed
// hash is treated as a non-match, never an error.
func Verify(plaintext string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
