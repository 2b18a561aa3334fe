// Package service defines the interfaces of infrastructure services the
// usecase layer relies on.
package service

// PasswordHasher hashes and verifies admin passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash in constant time.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns ErrPasswordStrength with details
	// naming the first unmet rule.
	ValidatePasswordStrength(password string) error
}
