package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/credentials/internal/credential/domain"
)

func TestRegistry_Resolve(t *testing.T) {
	registry := NewRegistry(testPepper)

	t.Run("resolves every supported algorithm", func(t *testing.T) {
		for _, algorithm := range domain.Algorithms() {
			codec, err := registry.Resolve(algorithm)
			require.NoError(t, err, algorithm)
			assert.Equal(t, algorithm, codec.Algorithm())
		}
	})

	t.Run("fails for tags outside the closed set", func(t *testing.T) {
		for _, algorithm := range []domain.Algorithm{"", "ARGON2ID", "bcrypt"} {
			codec, err := registry.Resolve(algorithm)
			assert.Nil(t, codec, algorithm)
			assert.ErrorIs(t, err, domain.ErrUnsupportedAlgorithm, algorithm)
		}
	})
}

func TestRegistry_CrossAlgorithmIsolation(t *testing.T) {
	registry := NewRegistry(testPepper)

	secret := []byte("password")
	for _, producer := range domain.Algorithms() {
		producerCodec, err := registry.Resolve(producer)
		require.NoError(t, err)
		encoded, err := producerCodec.Encode(secret)
		require.NoError(t, err)

		for _, consumer := range domain.Algorithms() {
			consumerCodec, err := registry.Resolve(consumer)
			require.NoError(t, err)

			if producer == consumer {
				assert.True(t, consumerCodec.Verify(secret, encoded),
					"hash from %s must verify through its own codec", producer)
				continue
			}
			// A hash produced under one tag must never verify through another
			// codec, even for the correct plaintext.
			assert.False(t, consumerCodec.Verify(secret, encoded),
				"hash from %s must not verify through %s", producer, consumer)
		}
	}
}

func TestRegistry_RoundTripAllAlgorithms(t *testing.T) {
	registry := NewRegistry(testPepper)

	for _, algorithm := range domain.Algorithms() {
		codec, err := registry.Resolve(algorithm)
		require.NoError(t, err)

		encoded, err := codec.Encode([]byte("correct horse battery staple"))
		require.NoError(t, err)

		assert.True(t, codec.Verify([]byte("correct horse battery staple"), encoded), algorithm)
		assert.False(t, codec.Verify([]byte("incorrect horse"), encoded), algorithm)
	}
}
