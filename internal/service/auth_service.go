package service

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks an admin username/password pair. The HTTP
// layer only depends on this capability, so the static check below can
// be swapped for a real identity provider without touching routing.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentialVerifier verifies against a single fixed account.
// The password is bcrypt-hashed at construction so the plaintext never
// sticks around in memory longer than startup.
type StaticCredentialVerifier struct {
	username     string
	passwordHash []byte
}

// NewStaticCredentialVerifier hashes the configured password and
// returns a verifier for the fixed account.
func NewStaticCredentialVerifier(username, password string) (*StaticCredentialVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticCredentialVerifier{username: username, passwordHash: hash}, nil
}

// Verify reports whether the pair matches the configured account.
func (v *StaticCredentialVerifier) Verify(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(v.username), []byte(username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
	return usernameMatch && passwordMatch
}
