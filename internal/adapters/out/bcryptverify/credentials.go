// Package bcryptverify implements the credential ports with bcrypt.
// bcrypt's comparison is constant-time over the derived key, so verification
// does not leak how close a guess was.
package bcryptverify

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher derives bcrypt hashes for new credentials.
type Hasher struct {
	cost int
}

// NewHasher creates a hasher at the default bcrypt cost.
func NewHasher() Hasher {
	return Hasher{cost: bcrypt.DefaultCost}
}

// Hash derives an opaque hash from the plaintext secret.
func (h Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verifier checks plaintext secrets against stored bcrypt hashes.
type Verifier struct{}

// NewVerifier creates a verifier.
func NewVerifier() Verifier {
	return Verifier{}
}

// Verify reports whether the password matches the stored hash. Malformed
// hashes verify as false rather than erroring, collapsing every failure mode
// into one rejection.
func (Verifier) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
