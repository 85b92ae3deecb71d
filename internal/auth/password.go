package auth

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Password checks login attempts against the configured admin secret.
// A bcrypt hash takes precedence over a plain password.
type Password struct {
	plain [sha256.Size]byte
	hash  []byte
	set   bool
}

func NewPassword(plain, hash string) *Password {
	p := &Password{}
	if hash != "" {
		p.hash = []byte(hash)
		return p
	}
	if plain != "" {
		p.plain = sha256.Sum256([]byte(plain))
		p.set = true
	}
	return p
}

func (p *Password) Verify(input string) bool {
	if input == "" {
		return false
	}

	if len(p.hash) > 0 {
		return bcrypt.CompareHashAndPassword(p.hash, []byte(input)) == nil
	}

	if !p.set {
		return false
	}

	sum := sha256.Sum256([]byte(input))
	return subtle.ConstantTimeCompare(sum[:], p.plain[:]) == 1
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
