package commands

import (
	"fmt"

	"github.com/allisson/credentials/internal/credential/domain"
	"github.com/allisson/credentials/internal/credential/service"
)

// RunHashPassword encodes a password under the named algorithm and prints the
// self-describing hash. Useful for preparing records outside the provisioning
// flow. Does not touch the database.
func RunHashPassword(
	registry *service.Registry,
	algorithm string,
	password string,
	io IOTuple,
) error {
	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return err
		}
	}

	parsed, err := domain.ParseAlgorithm(algorithm)
	if err != nil {
		return fmt.Errorf("unknown algorithm %q (valid options: BCRYPT, SCRYPT, PBKDF2)", algorithm)
	}

	codec, err := registry.Resolve(parsed)
	if err != nil {
		return err
	}

	encoded, err := codec.Encode([]byte(password))
	if err != nil {
		return fmt.Errorf("failed to encode password: %w", err)
	}

	_, _ = fmt.Fprintln(io.Writer, encoded)
	return nil
}
