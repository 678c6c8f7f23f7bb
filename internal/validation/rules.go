// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/credentials/internal/errors"
)

var (
	// usernameRegex restricts usernames to a portable, case-sensitive identifier set.
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]+$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string contains at least one non-whitespace character
var NotBlank = validation.NewStringRuleWithError(
	func(value string) bool {
		return strings.TrimSpace(value) != ""
	},
	validation.NewError("validation_not_blank", "cannot be blank"),
)

// Username validates that a string is a well-formed username identifier
var Username = validation.NewStringRuleWithError(
	func(value string) bool {
		return usernameRegex.MatchString(value)
	},
	validation.NewError(
		"validation_username",
		"must contain only letters, numbers, dots, underscores and hyphens",
	),
)
