package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrBadHash indicates a stored credential that cannot be parsed. This is
// corrupt data, not a wrong password, and callers must treat it as an
// internal fault.
var ErrBadHash = errors.New("stored password hash is malformed")

// Hasher hashes and verifies password credentials using bcrypt. The cost
// factor is fixed at construction; each Hash call uses a fresh random salt,
// and the resulting blob is self-describing (algorithm, cost, salt, digest).
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given bcrypt cost. Costs outside the
// supported range fall back to the bcrypt default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the bcrypt hash of the given password.
func (h *Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored hash. A mismatch is a
// normal false result with a nil error; only an unreadable stored hash
// produces ErrBadHash. The underlying comparison is constant time.
func (h *Hasher) Verify(password, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, ErrBadHash
}
