package commands

import (
	"context"
	"errors"
	"log/slog"

	outboxUsecase "github.com/allisson/credentials/internal/outbox/usecase"
)

// RunOutboxRelay starts the outbox relay and blocks until the context is
// cancelled.
//
// Requirements: Database must be migrated and accessible.
func RunOutboxRelay(
	ctx context.Context,
	relay outboxUsecase.UseCase,
	logger *slog.Logger,
) error {
	logger.Info("starting outbox relay worker")

	err := relay.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
