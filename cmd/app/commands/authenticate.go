package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	credentialUsecase "github.com/allisson/credentials/internal/credential/usecase"
)

// RunAuthenticate verifies a username/password pair and prints the granted
// authorities. Any failed attempt reports the same generic message regardless
// of cause.
//
// Requirements: Database must be migrated and accessible.
func RunAuthenticate(
	ctx context.Context,
	authenticator credentialUsecase.Authenticator,
	logger *slog.Logger,
	username string,
	password string,
	format string,
	io IOTuple,
) error {
	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return err
		}
	}

	authentication, err := authenticator.Authenticate(ctx, username, password)
	if err != nil {
		return fmt.Errorf("authentication failed")
	}

	if format == "json" {
		outputJSON(map[string]any{
			"username":    authentication.Username,
			"authorities": authentication.Authorities,
		}, io.Writer)
	} else {
		_, _ = fmt.Fprintf(io.Writer, "Authenticated: %s\n", authentication.Username)
		_, _ = fmt.Fprintf(io.Writer, "Authorities:   %s\n", strings.Join(authentication.Authorities, ", "))
	}

	logger.Info("authentication succeeded", slog.String("username", authentication.Username))
	return nil
}
