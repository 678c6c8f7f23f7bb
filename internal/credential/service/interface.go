// Package service provides the password codecs and the algorithm registry used
// to encode and verify stored credentials.
//
// Each codec produces a self-describing stored string: the salt and the cost
// parameters used for a derivation are embedded in the output, so verification
// reconstructs the exact derivation from the stored string alone. Changing the
// registry's defaults therefore never breaks previously stored hashes.
package service

import (
	"github.com/allisson/credentials/internal/credential/domain"
)

// PasswordCodec encodes plaintext secrets into stored hashes and verifies
// secrets against them.
//
// Implementations must be safe for concurrent use: every Encode call draws its
// own salt from a cryptographically secure source and every Verify call works
// on its own derivation buffers.
type PasswordCodec interface {
	// Algorithm returns the tag this codec serves.
	Algorithm() domain.Algorithm

	// Encode derives a stored hash from the secret using a fresh random salt.
	// Two calls with the same secret produce different outputs.
	Encode(secret []byte) (string, error)

	// Verify reports whether the secret matches the stored hash. The exact
	// derivation parameters are parsed out of the stored string; the final
	// comparison runs in constant time. A malformed stored hash, including one
	// produced by a different algorithm, yields false rather than an error so
	// a corrupted record surfaces as a failed login, not a service fault.
	Verify(secret []byte, encoded string) bool
}
