package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/allisson/credentials/internal/credential/domain"
	apperrors "github.com/allisson/credentials/internal/errors"
)

// bcryptCost is the log2 work factor applied to new hashes. Old hashes encoded
// with a different cost keep verifying because the cost travels in the hash.
const bcryptCost = 10

// bcryptCodec implements PasswordCodec using the standard bcrypt construction.
// The library generates the 16-byte salt internally and emits the modular-crypt
// format ($2a$10$...), which already embeds salt and cost.
type bcryptCodec struct {
	cost int
}

// NewBcryptCodec creates the bcrypt codec with the fixed cost factor.
func NewBcryptCodec() PasswordCodec {
	return &bcryptCodec{cost: bcryptCost}
}

// Algorithm returns the tag this codec serves.
func (c *bcryptCodec) Algorithm() domain.Algorithm {
	return domain.AlgorithmBcrypt
}

// Encode hashes the secret with a fresh salt.
func (c *bcryptCodec) Encode(secret []byte) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword(secret, c.cost)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode bcrypt hash")
	}
	return string(encoded), nil
}

// Verify compares the secret against a bcrypt modular-crypt string.
// bcrypt.CompareHashAndPassword is constant-time over the derived output.
func (c *bcryptCodec) Verify(secret []byte, encoded string) bool {
	// Refuse hashes that are not bcrypt's own format so a drifted algorithm
	// tag can never route another codec's output through this one.
	if !strings.HasPrefix(encoded, "$2") {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(encoded), secret) == nil
}
