package domain

// Algorithm identifies the key-derivation function protecting a stored password.
//
// The set is closed: every persisted record carries exactly one of these tags,
// and the tag is the single authoritative selector for verification. The encoded
// hash is never sniffed to guess the algorithm.
type Algorithm string

const (
	// AlgorithmBcrypt selects bcrypt with cost factor 10.
	//
	// The salt (16 bytes) and cost are embedded in the standard modular-crypt
	// output, so stored hashes remain verifiable if the default cost changes.
	AlgorithmBcrypt Algorithm = "BCRYPT"

	// AlgorithmScrypt selects scrypt with N=16384, r=8, p=1 and a 32-byte
	// derived key over a fresh 16-byte salt.
	AlgorithmScrypt Algorithm = "SCRYPT"

	// AlgorithmPBKDF2 selects PBKDF2-HMAC-SHA256 with 310000 iterations and a
	// 32-byte derived key over a fresh 16-byte salt. An application-wide pepper
	// is concatenated to the password before derivation.
	AlgorithmPBKDF2 Algorithm = "PBKDF2"
)

// Algorithms lists every supported algorithm tag.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmBcrypt, AlgorithmScrypt, AlgorithmPBKDF2}
}

// IsValid reports whether the tag belongs to the closed algorithm set.
func (a Algorithm) IsValid() bool {
	switch a {
	case AlgorithmBcrypt, AlgorithmScrypt, AlgorithmPBKDF2:
		return true
	default:
		return false
	}
}

// ParseAlgorithm converts a stored or user-supplied tag into an Algorithm.
// Matching is case-insensitive to keep CLI input forgiving; the canonical
// uppercase form is what gets persisted.
func ParseAlgorithm(value string) (Algorithm, error) {
	switch Algorithm(normalizeTag(value)) {
	case AlgorithmBcrypt:
		return AlgorithmBcrypt, nil
	case AlgorithmScrypt:
		return AlgorithmScrypt, nil
	case AlgorithmPBKDF2:
		return AlgorithmPBKDF2, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
