package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/credentials/internal/credential/domain"
	credentialUsecase "github.com/allisson/credentials/internal/credential/usecase"
)

func TestRunSeedUsers(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("seeds all reference users", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}
		for _, input := range seedUsers {
			mockUseCase.On("CreateUser", mock.Anything, input).Return(&domain.User{
				Username:  input.Username,
				Algorithm: domain.Algorithm(input.Algorithm),
				Roles:     input.Roles,
			}, nil)
		}

		err := RunSeedUsers(ctx, mockUseCase, logger)
		require.NoError(t, err)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("existing users are skipped", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}
		mockUseCase.On("CreateUser", mock.Anything, mock.AnythingOfType("usecase.CreateUserInput")).
			Return(nil, domain.ErrUserAlreadyExists)

		err := RunSeedUsers(ctx, mockUseCase, logger)
		require.NoError(t, err)
	})

	t.Run("infrastructure error propagates", func(t *testing.T) {
		mockUseCase := &MockUserUseCase{}
		mockUseCase.On("CreateUser", mock.Anything, mock.AnythingOfType("usecase.CreateUserInput")).
			Return(nil, errors.New("connection refused"))

		err := RunSeedUsers(ctx, mockUseCase, logger)
		require.Error(t, err)
	})
}

func TestSeedUsersDataset(t *testing.T) {
	require.Len(t, seedUsers, 3)

	byName := map[string]credentialUsecase.CreateUserInput{}
	for _, input := range seedUsers {
		byName[input.Username] = input
	}

	require.Equal(t, "BCRYPT", byName["alice"].Algorithm)
	require.Equal(t, "SCRYPT", byName["bob"].Algorithm)
	require.Equal(t, "PBKDF2", byName["carol"].Algorithm)
	require.Equal(t, "ADMIN", byName["carol"].Roles)
}
