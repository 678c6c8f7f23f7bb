package usecase

import (
	"context"
	"time"

	"github.com/allisson/credentials/internal/credential/domain"
	"github.com/allisson/credentials/internal/metrics"
)

// authenticatorWithMetrics decorates Authenticator with metrics instrumentation.
type authenticatorWithMetrics struct {
	next    Authenticator
	metrics metrics.BusinessMetrics
}

// NewAuthenticatorWithMetrics wraps an Authenticator with metrics recording.
func NewAuthenticatorWithMetrics(authenticator Authenticator, m metrics.BusinessMetrics) Authenticator {
	return &authenticatorWithMetrics{
		next:    authenticator,
		metrics: m,
	}
}

// Authenticate records metrics for authentication attempts. The duration
// histogram captures the full KDF cost of each attempt.
func (a *authenticatorWithMetrics) Authenticate(
	ctx context.Context,
	username, password string,
) (*domain.Authentication, error) {
	start := time.Now()
	authentication, err := a.next.Authenticate(ctx, username, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "credential", "authenticate", status)
	a.metrics.RecordDuration(ctx, "credential", "authenticate", time.Since(start), status)

	return authentication, err
}

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// CreateUser records metrics for provisioning operations.
func (u *userUseCaseWithMetrics) CreateUser(
	ctx context.Context,
	input CreateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.CreateUser(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "credential", "user_create", status)
	u.metrics.RecordDuration(ctx, "credential", "user_create", time.Since(start), status)

	return user, err
}

// GetUser records metrics for credential lookups.
func (u *userUseCaseWithMetrics) GetUser(ctx context.Context, username string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetUser(ctx, username)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "credential", "user_get", status)
	u.metrics.RecordDuration(ctx, "credential", "user_get", time.Since(start), status)

	return user, err
}
