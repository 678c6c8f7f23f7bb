// Package usecase implements the credential business logic: the authentication
// decision procedure and user provisioning.
package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/credentials/internal/credential/domain"
	"github.com/allisson/credentials/internal/credential/service"
	apperrors "github.com/allisson/credentials/internal/errors"
)

// credentialAuthenticator implements Authenticator.
//
// It holds no mutable state: the registry is read-only after construction, so
// authentication attempts may run fully in parallel. Each call is one linear
// pass (lookup, resolve, verify, grant) with no retries; backoff and lockout
// policies belong to callers.
type credentialAuthenticator struct {
	registry *service.Registry
	userRepo UserRepository
	logger   *slog.Logger
}

// NewAuthenticator creates the authenticator over the given registry and store.
func NewAuthenticator(
	registry *service.Registry,
	userRepo UserRepository,
	logger *slog.Logger,
) Authenticator {
	return &credentialAuthenticator{
		registry: registry,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate runs one authentication attempt.
//
// Unknown usernames and failed verifications both return
// domain.ErrAuthenticationFailed so the outcomes are indistinguishable outside
// this package; the distinct causes are only logged. Note that verification
// blocks the calling goroutine for the full KDF cost; latency-sensitive
// callers should dispatch attempts to a worker pool.
func (a *credentialAuthenticator) Authenticate(
	ctx context.Context,
	username, password string,
) (*domain.Authentication, error) {
	user, err := a.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if apperrors.Is(err, domain.ErrUserNotFound) {
			a.logger.Info("authentication failed: unknown user",
				slog.String("username", username),
			)
			return nil, domain.ErrAuthenticationFailed
		}
		return nil, apperrors.Wrap(err, "failed to load credential record")
	}

	codec, err := a.registry.Resolve(user.Algorithm)
	if err != nil {
		// A tag outside the closed set means the record is corrupted. Alert
		// operators but keep the external outcome generic.
		a.logger.Error("credential record references unsupported algorithm",
			slog.String("username", username),
			slog.String("algorithm", string(user.Algorithm)),
		)
		return nil, domain.ErrAuthenticationFailed
	}

	if !codec.Verify([]byte(password), user.PasswordHash) {
		a.logger.Info("authentication failed: password verification failed",
			slog.String("username", username),
			slog.String("algorithm", string(user.Algorithm)),
		)
		return nil, domain.ErrAuthenticationFailed
	}

	return &domain.Authentication{
		Username:    user.Username,
		Authorities: domain.GrantedAuthorities(user.Roles),
	}, nil
}
