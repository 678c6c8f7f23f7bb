package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allisson/credentials/internal/credential/domain"
)

func TestRunAuthenticate(t *testing.T) {
	ctx := context.Background()
	logger := testLogger()

	t.Run("success text output", func(t *testing.T) {
		mockAuthenticator := &MockAuthenticator{}
		mockAuthenticator.On("Authenticate", ctx, "carol", "password").
			Return(&domain.Authentication{
				Username:    "carol",
				Authorities: []string{"ROLE_ADMIN"},
			}, nil)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunAuthenticate(ctx, mockAuthenticator, logger, "carol", "password", "text", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), "carol")
		require.Contains(t, out.String(), "ROLE_ADMIN")
		mockAuthenticator.AssertExpectations(t)
	})

	t.Run("success json output", func(t *testing.T) {
		mockAuthenticator := &MockAuthenticator{}
		mockAuthenticator.On("Authenticate", ctx, "alice", "password").
			Return(&domain.Authentication{
				Username:    "alice",
				Authorities: []string{"ROLE_USER"},
			}, nil)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunAuthenticate(ctx, mockAuthenticator, logger, "alice", "password", "json", io)

		require.NoError(t, err)
		require.Contains(t, out.String(), `"authorities"`)
		require.Contains(t, out.String(), "ROLE_USER")
	})

	t.Run("failure reports generic message", func(t *testing.T) {
		mockAuthenticator := &MockAuthenticator{}
		mockAuthenticator.On("Authenticate", ctx, "alice", "wrong").
			Return(nil, domain.ErrAuthenticationFailed)

		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunAuthenticate(ctx, mockAuthenticator, logger, "alice", "wrong", "text", io)

		require.Error(t, err)
		require.Equal(t, "authentication failed", err.Error())
	})

	t.Run("prompted password", func(t *testing.T) {
		mockAuthenticator := &MockAuthenticator{}
		mockAuthenticator.On("Authenticate", ctx, "bob", "s3cret").
			Return(&domain.Authentication{
				Username:    "bob",
				Authorities: []string{"ROLE_USER"},
			}, nil)

		var out bytes.Buffer
		io := IOTuple{
			Reader: bytes.NewBufferString("s3cret\n"),
			Writer: &out,
		}

		err := RunAuthenticate(ctx, mockAuthenticator, logger, "bob", "", "text", io)

		require.NoError(t, err)
		mockAuthenticator.AssertExpectations(t)
	})
}
