package commands

import (
	"context"
	"fmt"
	"log/slog"

	credentialUsecase "github.com/allisson/credentials/internal/credential/usecase"
)

// RunCreateUser provisions a new credential record.
// When password is empty the command prompts for it on the IOTuple reader so the
// secret stays out of shell history. Outputs the stored record (without the
// hash) in either text or JSON format.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUseCase credentialUsecase.UserUseCase,
	logger *slog.Logger,
	username string,
	password string,
	algorithm string,
	roles string,
	format string,
	io IOTuple,
) error {
	logger.Info("creating new user", slog.String("username", username))

	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return err
		}
	}

	user, err := userUseCase.CreateUser(ctx, credentialUsecase.CreateUserInput{
		Username:  username,
		Password:  password,
		Algorithm: algorithm,
		Roles:     roles,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if format == "json" {
		outputJSON(map[string]string{
			"username":  user.Username,
			"algorithm": string(user.Algorithm),
			"roles":     user.Roles,
		}, io.Writer)
	} else {
		_, _ = fmt.Fprintf(io.Writer, "User created:\n")
		_, _ = fmt.Fprintf(io.Writer, "  Username:  %s\n", user.Username)
		_, _ = fmt.Fprintf(io.Writer, "  Algorithm: %s\n", user.Algorithm)
		_, _ = fmt.Fprintf(io.Writer, "  Roles:     %s\n", user.Roles)
	}

	logger.Info("user created successfully",
		slog.String("username", user.Username),
		slog.String("algorithm", string(user.Algorithm)),
	)

	return nil
}
