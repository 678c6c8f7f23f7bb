package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/allisson/credentials/internal/credential/domain"
	apperrors "github.com/allisson/credentials/internal/errors"
)

// Fixed PBKDF2 parameters for new hashes. Verification always uses the
// iteration count embedded in the stored string.
const (
	pbkdf2Iterations = 310000
	pbkdf2KeyLen     = 32
	pbkdf2SaltLen    = 16

	pbkdf2Prefix = "$pbkdf2-sha256$"
)

// pbkdf2Codec implements PasswordCodec using PBKDF2-HMAC-SHA256 (RFC 8018).
// The application-wide pepper is concatenated to the secret before derivation,
// matching the reference behavior; an attacker holding only the database cannot
// test candidates without it.
// Stored format: $pbkdf2-sha256$i=310000$<b64(salt)>$<b64(dk)>
type pbkdf2Codec struct {
	pepper     []byte
	iterations int
	keyLen     int
	saltLen    int
}

// NewPBKDF2Codec creates the PBKDF2 codec with the fixed parameters and the
// injected pepper. The pepper is configuration, not a source constant.
func NewPBKDF2Codec(pepper []byte) PasswordCodec {
	return &pbkdf2Codec{
		pepper:     append([]byte(nil), pepper...),
		iterations: pbkdf2Iterations,
		keyLen:     pbkdf2KeyLen,
		saltLen:    pbkdf2SaltLen,
	}
}

// Algorithm returns the tag this codec serves.
func (c *pbkdf2Codec) Algorithm() domain.Algorithm {
	return domain.AlgorithmPBKDF2
}

// Encode derives a key from secret||pepper under a fresh salt and emits the
// self-describing stored string.
func (c *pbkdf2Codec) Encode(secret []byte) (string, error) {
	salt := make([]byte, c.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", apperrors.Wrap(err, "failed to generate pbkdf2 salt")
	}

	dk := pbkdf2.Key(c.pepperedSecret(secret), salt, c.iterations, c.keyLen, sha256.New)

	return fmt.Sprintf(
		"%si=%d$%s$%s",
		pbkdf2Prefix,
		c.iterations,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(dk),
	), nil
}

// Verify re-derives the key using the iteration count and salt embedded in the
// stored string and compares in constant time. Any parse failure yields false.
func (c *pbkdf2Codec) Verify(secret []byte, encoded string) bool {
	iterations, salt, dk, ok := parsePBKDF2Hash(encoded)
	if !ok {
		return false
	}

	candidate := pbkdf2.Key(c.pepperedSecret(secret), salt, iterations, len(dk), sha256.New)

	return subtle.ConstantTimeCompare(candidate, dk) == 1
}

// pepperedSecret concatenates the secret and the pepper into a fresh buffer.
func (c *pbkdf2Codec) pepperedSecret(secret []byte) []byte {
	input := make([]byte, 0, len(secret)+len(c.pepper))
	input = append(input, secret...)
	input = append(input, c.pepper...)
	return input
}

// parsePBKDF2Hash splits a stored pbkdf2 string into its parameters.
// Expected layout: ["", "pbkdf2-sha256", "i=..", saltB64, dkB64]
func parsePBKDF2Hash(encoded string) (iterations int, salt, dk []byte, ok bool) {
	if !strings.HasPrefix(encoded, pbkdf2Prefix) {
		return 0, nil, nil, false
	}

	parts := strings.Split(encoded, "$")
	if len(parts) != 5 {
		return 0, nil, nil, false
	}

	value, found := strings.CutPrefix(parts[2], "i=")
	if !found {
		return 0, nil, nil, false
	}
	iterations, err := strconv.Atoi(value)
	if err != nil || iterations < 1 {
		return 0, nil, nil, false
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(salt) == 0 {
		return 0, nil, nil, false
	}
	dk, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(dk) == 0 {
		return 0, nil, nil, false
	}

	return iterations, salt, dk, true
}
