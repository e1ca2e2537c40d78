// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import "errors"

// ErrMalformedDigest is returned when a stored digest cannot be parsed.
var ErrMalformedDigest = errors.New("malformed password digest")

// PasswordHasher defines the interface for password hashing and verification.
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. A mismatch is (false, nil);
	// an unparseable digest is (false, ErrMalformedDigest).
	Verify(password, digest string) (bool, error)
}
