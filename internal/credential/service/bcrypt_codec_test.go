package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/credentials/internal/credential/domain"
)

func TestBcryptCodec_Algorithm(t *testing.T) {
	codec := NewBcryptCodec()
	assert.Equal(t, domain.AlgorithmBcrypt, codec.Algorithm())
}

func TestBcryptCodec_EncodeVerify(t *testing.T) {
	codec := NewBcryptCodec()

	t.Run("round-trips the secret", func(t *testing.T) {
		encoded, err := codec.Encode([]byte("password"))
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(encoded, "$2a$10$"))
		assert.True(t, codec.Verify([]byte("password"), encoded))
	})

	t.Run("rejects a wrong secret", func(t *testing.T) {
		encoded, err := codec.Encode([]byte("password"))
		require.NoError(t, err)

		assert.False(t, codec.Verify([]byte("wrong"), encoded))
	})

	t.Run("fresh salt per call", func(t *testing.T) {
		first, err := codec.Encode([]byte("password"))
		require.NoError(t, err)
		second, err := codec.Encode([]byte("password"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, codec.Verify([]byte("password"), first))
		assert.True(t, codec.Verify([]byte("password"), second))
	})

	t.Run("rejects secrets over the bcrypt length limit", func(t *testing.T) {
		_, err := codec.Encode([]byte(strings.Repeat("x", 73)))
		assert.Error(t, err)
	})
}

func TestBcryptCodec_Verify_Malformed(t *testing.T) {
	codec := NewBcryptCodec()

	for _, encoded := range []string{
		"",
		"not-a-hash",
		"$2a$10$tooshort",
		"$scrypt$ln=14,r=8,p=1$c2FsdA$ZGs",
		"$pbkdf2-sha256$i=310000$c2FsdA$ZGs",
	} {
		assert.False(t, codec.Verify([]byte("password"), encoded), encoded)
	}
}

func TestBcryptCodec_Verify_Tampered(t *testing.T) {
	codec := NewBcryptCodec()

	encoded, err := codec.Encode([]byte("password"))
	require.NoError(t, err)

	// Flip one character inside the hash payload. The final character encodes
	// partial bits, so tamper the one before it.
	tampered := tamperAt(encoded, len(encoded)-2)
	assert.False(t, codec.Verify([]byte("password"), tampered))
}
