package domain

import (
	"github.com/allisson/credentials/internal/errors"
)

// Domain-specific errors for credential operations.
var (
	// ErrUserNotFound indicates no credential record exists for the username.
	// It never crosses the authenticator boundary; callers only ever see
	// ErrAuthenticationFailed.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a record with the same username already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrAuthenticationFailed is the single failure surfaced for any failed
	// authentication attempt. Unknown usernames, wrong passwords and malformed
	// stored hashes are deliberately indistinguishable through it to prevent
	// username enumeration.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrUnauthorized, "authentication failed")

	// ErrUnsupportedAlgorithm indicates a record references a tag outside the
	// closed algorithm set. This means corrupted data, not a bad login.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInternal, "unsupported password algorithm")

	// ErrUsernameRequired indicates the username field is required.
	ErrUsernameRequired = errors.Wrap(errors.ErrInvalidInput, "username is required")

	// ErrPasswordRequired indicates the password field is required.
	ErrPasswordRequired = errors.Wrap(errors.ErrInvalidInput, "password is required")
)
