package usecase

import (
	"context"

	"github.com/allisson/credentials/internal/credential/domain"
	outboxDomain "github.com/allisson/credentials/internal/outbox/domain"
)

// Authenticator defines the interface for the authentication decision procedure.
type Authenticator interface {
	// Authenticate verifies the submitted password for the username and, on
	// success, returns the granted authorities. Every failure caused by the
	// caller (unknown user, wrong password, corrupted record) surfaces as
	// domain.ErrAuthenticationFailed; infrastructure failures are returned
	// as-is.
	Authenticate(ctx context.Context, username, password string) (*domain.Authentication, error)
}

// UserUseCase defines the interface for credential provisioning operations.
type UserUseCase interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
}

// UserRepository interface defines credential store operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// OutboxEventRepository interface defines outbox event repository operations
type OutboxEventRepository interface {
	Create(ctx context.Context, event *outboxDomain.OutboxEvent) error
}
