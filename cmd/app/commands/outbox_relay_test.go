package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOutboxUseCase is a mock implementation of outboxUsecase.UseCase
type MockOutboxUseCase struct {
	mock.Mock
}

func (m *MockOutboxUseCase) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOutboxUseCase) ProcessEvents(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestRunOutboxRelay(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("context cancellation is a clean exit", func(t *testing.T) {
		relay := &MockOutboxUseCase{}
		relay.On("Start", ctx).Return(context.Canceled)

		err := RunOutboxRelay(ctx, relay, logger)
		require.NoError(t, err)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		relay := &MockOutboxUseCase{}
		relay.On("Start", ctx).Return(errors.New("connection refused"))

		err := RunOutboxRelay(ctx, relay, logger)
		require.Error(t, err)
	})
}
