// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/allisson/credentials/cmd/app/commands"
	"github.com/allisson/credentials/internal/app"
	"github.com/allisson/credentials/internal/config"
)

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Credential store with per-user password hashing algorithms",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "seed-users",
				Usage: "Provision the reference users (alice, bob, carol)",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer closeContainer(container, logger)

					userUseCase, err := container.UserUseCase(ctx)
					if err != nil {
						return fmt.Errorf("failed to initialize user use case: %w", err)
					}

					return commands.RunSeedUsers(ctx, userUseCase, logger)
				},
			},
			{
				Name:  "create-user",
				Usage: "Provision a new credential record",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
						Usage:    "Username for the new record",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Password (omit to be prompted)",
					},
					&cli.StringFlag{
						Name:    "algorithm",
						Aliases: []string{"alg"},
						Value:   "BCRYPT",
						Usage:   "Hashing algorithm: BCRYPT, SCRYPT or PBKDF2",
					},
					&cli.StringFlag{
						Name:    "roles",
						Aliases: []string{"r"},
						Value:   "USER",
						Usage:   "Comma-separated role names",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer closeContainer(container, logger)

					userUseCase, err := container.UserUseCase(ctx)
					if err != nil {
						return fmt.Errorf("failed to initialize user use case: %w", err)
					}

					return commands.RunCreateUser(
						ctx,
						userUseCase,
						logger,
						cmd.String("username"),
						cmd.String("password"),
						cmd.String("algorithm"),
						cmd.String("roles"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "hash-password",
				Usage: "Encode a password and print the self-describing hash",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "algorithm",
						Aliases: []string{"alg"},
						Value:   "BCRYPT",
						Usage:   "Hashing algorithm: BCRYPT, SCRYPT or PBKDF2",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Password (omit to be prompted)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())

					registry, err := container.Registry(ctx)
					if err != nil {
						return fmt.Errorf("failed to initialize codec registry: %w", err)
					}

					return commands.RunHashPassword(
						registry,
						cmd.String("algorithm"),
						cmd.String("password"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "authenticate",
				Usage: "Verify a username/password pair and print granted authorities",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Required: true,
						Usage:    "Username to authenticate",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Password (omit to be prompted)",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Value:   "text",
						Usage:   "Output format: 'text' or 'json'",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer closeContainer(container, logger)

					authenticator, err := container.Authenticator(ctx)
					if err != nil {
						return fmt.Errorf("failed to initialize authenticator: %w", err)
					}

					return commands.RunAuthenticate(
						ctx,
						authenticator,
						logger,
						cmd.String("username"),
						cmd.String("password"),
						cmd.String("format"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "outbox-relay",
				Usage: "Run the outbox relay worker",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer closeContainer(container, logger)

					relay, err := container.OutboxUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize outbox relay: %w", err)
					}

					ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
					defer cancel()

					return commands.RunOutboxRelay(ctx, relay, logger)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}

// closeContainer shuts the container down and logs any errors.
func closeContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}
