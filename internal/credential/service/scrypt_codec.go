package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"

	"github.com/allisson/credentials/internal/credential/domain"
	apperrors "github.com/allisson/credentials/internal/errors"
)

// Fixed scrypt parameters for new hashes. ln is log2(N); verification always
// uses the parameters embedded in the stored string, not these.
const (
	scryptLogN    = 14 // N = 16384
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 32
	scryptSaltLen = 16

	scryptPrefix = "$scrypt$"
)

// scryptCodec implements PasswordCodec using the scrypt KDF.
// Stored format: $scrypt$ln=14,r=8,p=1$<b64(salt)>$<b64(dk)>
type scryptCodec struct {
	logN    int
	r       int
	p       int
	keyLen  int
	saltLen int
}

// NewScryptCodec creates the scrypt codec with the fixed cost parameters.
func NewScryptCodec() PasswordCodec {
	return &scryptCodec{
		logN:    scryptLogN,
		r:       scryptR,
		p:       scryptP,
		keyLen:  scryptKeyLen,
		saltLen: scryptSaltLen,
	}
}

// Algorithm returns the tag this codec serves.
func (c *scryptCodec) Algorithm() domain.Algorithm {
	return domain.AlgorithmScrypt
}

// Encode derives a key from the secret under a fresh salt and emits the
// self-describing stored string.
func (c *scryptCodec) Encode(secret []byte) (string, error) {
	salt := make([]byte, c.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", apperrors.Wrap(err, "failed to generate scrypt salt")
	}

	dk, err := scrypt.Key(secret, salt, 1<<c.logN, c.r, c.p, c.keyLen)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to derive scrypt key")
	}

	return fmt.Sprintf(
		"%sln=%d,r=%d,p=%d$%s$%s",
		scryptPrefix,
		c.logN,
		c.r,
		c.p,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(dk),
	), nil
}

// Verify re-derives the key using the parameters embedded in the stored string
// and compares in constant time. Any parse failure yields false.
func (c *scryptCodec) Verify(secret []byte, encoded string) bool {
	logN, r, p, salt, dk, ok := parseScryptHash(encoded)
	if !ok {
		return false
	}

	candidate, err := scrypt.Key(secret, salt, 1<<logN, r, p, len(dk))
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(candidate, dk) == 1
}

// parseScryptHash splits a stored scrypt string into its parameters.
// Expected layout: ["", "scrypt", "ln=..,r=..,p=..", saltB64, dkB64]
func parseScryptHash(encoded string) (logN, r, p int, salt, dk []byte, ok bool) {
	if !strings.HasPrefix(encoded, scryptPrefix) {
		return 0, 0, 0, nil, nil, false
	}

	parts := strings.Split(encoded, "$")
	if len(parts) != 5 {
		return 0, 0, 0, nil, nil, false
	}

	for _, kv := range strings.Split(parts[2], ",") {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			return 0, 0, 0, nil, nil, false
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0, 0, 0, nil, nil, false
		}
		switch key {
		case "ln":
			logN = n
		case "r":
			r = n
		case "p":
			p = n
		default:
			return 0, 0, 0, nil, nil, false
		}
	}

	// N must be a power of two > 1 and small enough not to exhaust memory on a
	// corrupted record; r and p must be positive.
	if logN < 1 || logN > 31 || r < 1 || p < 1 {
		return 0, 0, 0, nil, nil, false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil || len(salt) == 0 {
		return 0, 0, 0, nil, nil, false
	}
	dk, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil || len(dk) == 0 {
		return 0, 0, 0, nil, nil, false
	}

	return logN, r, p, salt, dk, true
}
