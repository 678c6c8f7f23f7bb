package usecase

import (
	"context"
	"encoding/json"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/allisson/credentials/internal/credential/domain"
	"github.com/allisson/credentials/internal/credential/service"
	"github.com/allisson/credentials/internal/database"
	apperrors "github.com/allisson/credentials/internal/errors"
	outboxDomain "github.com/allisson/credentials/internal/outbox/domain"
	appValidation "github.com/allisson/credentials/internal/validation"
)

// CreateUserInput contains the input data for credential provisioning
type CreateUserInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Algorithm string `json:"algorithm"`
	Roles     string `json:"roles"`
}

// userUseCase handles credential provisioning business logic
type userUseCase struct {
	txManager  database.TxManager
	registry   *service.Registry
	userRepo   UserRepository
	outboxRepo OutboxEventRepository
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	txManager database.TxManager,
	registry *service.Registry,
	userRepo UserRepository,
	outboxRepo OutboxEventRepository,
) UserUseCase {
	return &userUseCase{
		txManager:  txManager,
		registry:   registry,
		userRepo:   userRepo,
		outboxRepo: outboxRepo,
	}
}

// validateCreateUserInput validates the provisioning input using jellydator/validation.
// Password strength policies are deliberately not enforced here: the store holds
// whatever secret the operator chose, and the reference dataset uses weak ones.
func (uc *userUseCase) validateCreateUserInput(input CreateUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(1, 255).Error("username must be between 1 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(1, 128).Error("password must be between 1 and 128 characters"),
		),
		validation.Field(&input.Algorithm,
			validation.Required.Error("algorithm is required"),
		),
		validation.Field(&input.Roles,
			validation.Length(0, 255).Error("roles must be at most 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// CreateUser provisions a new credential record and creates a user.created event.
// The password hash is produced by the codec selected by the chosen algorithm,
// so the stored tag and hash can never disagree at creation time.
func (uc *userUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := uc.validateCreateUserInput(input); err != nil {
		return nil, err
	}

	algorithm, err := domain.ParseAlgorithm(input.Algorithm)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "unknown algorithm "+input.Algorithm)
	}

	codec, err := uc.registry.Resolve(algorithm)
	if err != nil {
		return nil, err
	}

	passwordHash, err := codec.Encode([]byte(input.Password))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encode password")
	}

	user := &domain.User{
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: passwordHash,
		Algorithm:    algorithm,
		Roles:        strings.TrimSpace(input.Roles),
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return err
		}

		eventPayload := map[string]any{
			"username":  user.Username,
			"algorithm": user.Algorithm,
			"roles":     user.Roles,
		}
		payloadJSON, err := json.Marshal(eventPayload)
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal event payload")
		}

		outboxEvent := &outboxDomain.OutboxEvent{
			ID:        uuid.Must(uuid.NewV7()),
			EventType: outboxDomain.EventTypeUserCreated,
			Payload:   string(payloadJSON),
			Status:    outboxDomain.OutboxEventStatusPending,
		}

		if err := uc.outboxRepo.Create(ctx, outboxEvent); err != nil {
			return apperrors.Wrap(err, "failed to create outbox event")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a credential record by username
func (uc *userUseCase) GetUser(ctx context.Context, username string) (*domain.User, error) {
	return uc.userRepo.GetByUsername(ctx, username)
}
