package service

import (
	"github.com/allisson/credentials/internal/credential/domain"
)

// Registry maps every algorithm tag in the closed set to its codec.
//
// It is built once at process start and never mutated afterwards, so it is safe
// for unsynchronized concurrent reads.
type Registry struct {
	codecs map[domain.Algorithm]PasswordCodec
}

// NewRegistry builds the registry with one codec per supported algorithm.
// The pepper is injected into the PBKDF2 codec only.
func NewRegistry(pepper []byte) *Registry {
	codecs := make(map[domain.Algorithm]PasswordCodec, 3)
	for _, codec := range []PasswordCodec{
		NewBcryptCodec(),
		NewScryptCodec(),
		NewPBKDF2Codec(pepper),
	} {
		codecs[codec.Algorithm()] = codec
	}
	return &Registry{codecs: codecs}
}

// Resolve returns the codec for the given tag.
// A tag outside the closed set means a corrupted record or a programming
// error; it returns domain.ErrUnsupportedAlgorithm and the caller is expected
// to log it loudly rather than retry.
func (r *Registry) Resolve(algorithm domain.Algorithm) (PasswordCodec, error) {
	codec, ok := r.codecs[algorithm]
	if !ok {
		return nil, domain.ErrUnsupportedAlgorithm
	}
	return codec, nil
}
