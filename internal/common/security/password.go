package security

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for newly hashed passwords.
const BcryptCost = 12

// PasswordHasher abstracts the hashing algorithm so services can be tested
// without paying the adaptive-hash cost.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

type bcryptHasher struct {
	cost int
}

func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: BcryptCost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. bcrypt's comparison is
// constant-time over the derived key.
func (h *bcryptHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
