package ports

// PasswordHasher hashes and verifies login credentials. Implementations own
// the hash format; callers treat the result as opaque.
type PasswordHasher interface {
	// Hash derives an opaque credential hash from a plaintext password.
	Hash(plaintext string) (string, error)

	// Verify reports whether the plaintext password matches the hash.
	Verify(plaintext, hash string) bool
}
