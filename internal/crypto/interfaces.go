package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks plaintext candidates against them.
//
// Every call to Hash draws a fresh random salt, so hashing the same password
// twice yields two different strings; use Compare to check equality.
type PasswordHasher interface {
	// Hash returns the encoded hash of password with the salt embedded.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch is reported
	// as ErrPasswordMismatch; a malformed or empty hash is an error as well,
	// so callers can never mistake a missing hash for a match.
	Compare(hash, password string) error
}
