// Package service defines interfaces for stateless domain logic that does
// not belong to a single entity.
package service

// PasswordHasher hashes and verifies password credentials. The concrete
// algorithm lives in the infra layer.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored
	// hash. The comparison is constant-time with respect to the hash.
	Check(password, hash string) bool

	// ValidateStrength reports whether a plaintext password meets the
	// configured minimum requirements.
	ValidateStrength(password string) error
}
