// Package auth implements the two security-sensitive services: bcrypt
// password hashing and signed session tokens.
package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is a valid bcrypt digest of a random throwaway value. It is
// compared against when a login targets an unknown email so that the
// response timing matches the wrong-password path.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// HashPassword produces a salted one-way digest of password. Repeated
// calls on the same input yield different digests.
func HashPassword(password string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPasswordHash reports whether password matches the stored digest.
// A malformed or corrupted digest fails closed: the result is false,
// never an error surfaced to the caller.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BurnHashCycle performs a bcrypt comparison that is guaranteed to fail.
// Login flows call it when no account exists for the given email, so
// lookups of present and absent accounts cost about the same.
func BurnHashCycle(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
