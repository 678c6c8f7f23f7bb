package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/credentials/internal/credential/domain"
	credentialUsecase "github.com/allisson/credentials/internal/credential/usecase"
	apperrors "github.com/allisson/credentials/internal/errors"
)

func TestRunCreateUser(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("text output", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}
		input := credentialUsecase.CreateUserInput{
			Username:  "alice",
			Password:  "password",
			Algorithm: "BCRYPT",
			Roles:     "USER",
		}
		mockUseCase.On("CreateUser", ctx, input).Return(&domain.User{
			Username:  "alice",
			Algorithm: domain.AlgorithmBcrypt,
			Roles:     "USER",
		}, nil)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunCreateUser(ctx, mockUseCase, logger, "alice", "password", "BCRYPT", "USER", "text", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), "alice")
		require.Contains(t, out.String(), "BCRYPT")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("prompted password json output", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}
		input := credentialUsecase.CreateUserInput{
			Username:  "carol",
			Password:  "s3cret",
			Algorithm: "PBKDF2",
			Roles:     "ADMIN",
		}
		mockUseCase.On("CreateUser", ctx, input).Return(&domain.User{
			Username:  "carol",
			Algorithm: domain.AlgorithmPBKDF2,
			Roles:     "ADMIN",
		}, nil)

		var out bytes.Buffer
		io := IOTuple{
			Reader: bytes.NewBufferString("s3cret\n"),
			Writer: &out,
		}

		err := RunCreateUser(ctx, mockUseCase, logger, "carol", "", "PBKDF2", "ADMIN", "json", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), `"username"`)
		require.Contains(t, out.String(), "carol")
		// The output must never contain the password or hash
		require.NotContains(t, out.String(), "s3cret")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("use case error", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}
		mockUseCase.On("CreateUser", ctx, mock.Anything).Return(nil, apperrors.ErrInvalidInput)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunCreateUser(ctx, mockUseCase, logger, "alice", "password", "ARGON2", "", "text", io)
		require.Error(t, err)
	})
}
