// Package service defines interfaces for stateless domain logic that does not
// belong to any single entity.
package service

// PasswordHasher hashes and verifies account passwords. The concrete
// algorithm (bcrypt in the default implementation) stays out of the domain.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the hash.
	Check(password, hash string) bool
}
