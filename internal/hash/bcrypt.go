package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskward/taskward-server/internal/model"
)

// Bcrypt implements PasswordHasher over the adaptive bcrypt KDF.
// Each hash carries its own random salt and cost factor, so Verify
// needs no extra parameters.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher with the given cost. A cost of
// zero selects bcrypt.DefaultCost.
func NewBcrypt(cost int) model.PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash produces a salted one-way digest of the password.
func (b *Bcrypt) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether the password matches the stored digest.
// bcrypt's comparison is constant-time over the derived key.
func (b *Bcrypt) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
