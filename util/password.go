package util

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// HashPassword salts and hashes a plaintext password. The hash is the only
// form the password is ever persisted in.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

// CheckPassword compares a login attempt against the stored hash.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
