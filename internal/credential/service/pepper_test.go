package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"
)

func TestLoadPepper_PlainValue(t *testing.T) {
	pepper, err := LoadPepper(context.Background(), PepperConfig{
		Value: "StrongPepperUsedAcrossAllPBKDF2Hashes",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("StrongPepperUsedAcrossAllPBKDF2Hashes"), pepper)
}

func TestLoadPepper_EmptyValue(t *testing.T) {
	pepper, err := LoadPepper(context.Background(), PepperConfig{})
	assert.Error(t, err)
	assert.Nil(t, pepper)
}

func TestLoadPepper_KMS(t *testing.T) {
	ctx := context.Background()
	// base64key uses a local 32-byte key, so the round-trip needs no network.
	keyURI := "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	require.NoError(t, err)
	defer keeper.Close() //nolint:errcheck

	ciphertext, err := keeper.Encrypt(ctx, []byte("kms-wrapped-pepper"))
	require.NoError(t, err)

	t.Run("decrypts the wrapped pepper", func(t *testing.T) {
		pepper, err := LoadPepper(ctx, PepperConfig{
			KMSKeyURI:  keyURI,
			Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		})
		require.NoError(t, err)
		assert.Equal(t, []byte("kms-wrapped-pepper"), pepper)
	})

	t.Run("fails on invalid ciphertext encoding", func(t *testing.T) {
		_, err := LoadPepper(ctx, PepperConfig{
			KMSKeyURI:  keyURI,
			Ciphertext: "not-base64!!!",
		})
		assert.Error(t, err)
	})

	t.Run("fails on undecryptable ciphertext", func(t *testing.T) {
		_, err := LoadPepper(ctx, PepperConfig{
			KMSKeyURI:  keyURI,
			Ciphertext: base64.StdEncoding.EncodeToString([]byte("garbage")),
		})
		assert.Error(t, err)
	})

	t.Run("fails on invalid key URI", func(t *testing.T) {
		_, err := LoadPepper(ctx, PepperConfig{
			KMSKeyURI:  "unknownkms://nope",
			Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
		})
		assert.Error(t, err)
	})
}
