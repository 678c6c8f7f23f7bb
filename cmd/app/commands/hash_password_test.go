package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/credentials/internal/credential/domain"
	"github.com/allisson/credentials/internal/credential/service"
)

func TestRunHashPassword(t *testing.T) {
	registry := service.NewRegistry([]byte("test-pepper"))

	t.Run("bcrypt", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunHashPassword(registry, "BCRYPT", "password", io)
		require.NoError(t, err)

		encoded := strings.TrimSpace(out.String())
		require.True(t, strings.HasPrefix(encoded, "$2"))

		codec, err := registry.Resolve(domain.AlgorithmBcrypt)
		require.NoError(t, err)
		require.True(t, codec.Verify([]byte("password"), encoded))
	})

	t.Run("scrypt with prompted password", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{
			Reader: bytes.NewBufferString("password\n"),
			Writer: &out,
		}

		err := RunHashPassword(registry, "scrypt", "", io)
		require.NoError(t, err)
		require.Contains(t, out.String(), "$scrypt$")
	})

	t.Run("pbkdf2", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunHashPassword(registry, "PBKDF2", "password", io)
		require.NoError(t, err)
		require.Contains(t, out.String(), "$pbkdf2-sha256$")
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunHashPassword(registry, "MD5", "password", io)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown algorithm")
	})
}
