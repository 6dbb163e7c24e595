// Package service declares the domain services the use cases depend on.
package service

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool

	// NeedsRehash reports whether hash was produced with settings other than the current ones.
	// Login upgrades such hashes after a successful check.
	NeedsRehash(hash string) bool
}
