package service

import (
	"context"
	"encoding/base64"

	"gocloud.dev/secrets"

	apperrors "github.com/allisson/credentials/internal/errors"

	// Register KMS provider drivers for pepper decryption
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// PepperConfig describes where the PBKDF2 pepper comes from.
//
// When KMSKeyURI is empty the plain Value is used directly. Otherwise
// Ciphertext (base64) is decrypted through a gocloud.dev/secrets keeper opened
// from the URI, which keeps the pepper itself out of the environment.
// Supported URIs: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
type PepperConfig struct {
	Value      string
	KMSKeyURI  string
	Ciphertext string
}

// LoadPepper resolves the effective pepper bytes from the configuration.
func LoadPepper(ctx context.Context, cfg PepperConfig) ([]byte, error) {
	if cfg.KMSKeyURI == "" {
		if cfg.Value == "" {
			return nil, apperrors.New("pepper must not be empty")
		}
		return []byte(cfg.Value), nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(cfg.Ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decode pepper ciphertext")
	}

	keeper, err := secrets.OpenKeeper(ctx, cfg.KMSKeyURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open KMS keeper")
	}
	defer keeper.Close() //nolint:errcheck

	pepper, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt pepper")
	}
	if len(pepper) == 0 {
		return nil, apperrors.New("decrypted pepper must not be empty")
	}

	return pepper, nil
}
