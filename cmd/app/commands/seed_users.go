package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/credentials/internal/credential/domain"
	credentialUsecase "github.com/allisson/credentials/internal/credential/usecase"
)

// seedUsers is the reference dataset: one user per supported algorithm, all
// sharing the same password.
var seedUsers = []credentialUsecase.CreateUserInput{
	{Username: "alice", Password: "password", Algorithm: "BCRYPT", Roles: "USER"},
	{Username: "bob", Password: "password", Algorithm: "SCRYPT", Roles: "USER"},
	{Username: "carol", Password: "password", Algorithm: "PBKDF2", Roles: "ADMIN"},
}

// RunSeedUsers provisions the reference dataset. The command is idempotent:
// users that already exist are skipped.
//
// Requirements: Database must be migrated and accessible.
func RunSeedUsers(
	ctx context.Context,
	userUseCase credentialUsecase.UserUseCase,
	logger *slog.Logger,
) error {
	logger.Info("seeding reference users", slog.Int("count", len(seedUsers)))

	group, ctx := errgroup.WithContext(ctx)

	for _, input := range seedUsers {
		group.Go(func() error {
			_, err := userUseCase.CreateUser(ctx, input)
			if errors.Is(err, domain.ErrUserAlreadyExists) {
				logger.Info("user already exists, skipping", slog.String("username", input.Username))
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to seed user %s: %w", input.Username, err)
			}

			logger.Info("user seeded",
				slog.String("username", input.Username),
				slog.String("algorithm", input.Algorithm),
			)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	logger.Info("seeding completed successfully")
	return nil
}
