package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher one-way credential hashing capability. Services take this
// as a constructor parameter so the scheme can be swapped in tests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hashed string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a bcrypt-backed PasswordHasher
func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h *bcryptHasher) Verify(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
