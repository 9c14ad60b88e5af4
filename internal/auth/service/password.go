package service

import (
	"golang.org/x/crypto/bcrypt"

	authconstant "github.com/Zachary-Blundell/convergence-des-luttes/pkg/constant"
)

// HashPassword hashes an organizer password with bcrypt at the fixed
// application cost.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), authconstant.BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored bcrypt hash.
// A malformed hash counts as a mismatch, never a panic.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
