// Package validator wraps the go-playground/validator library to provide
// declarative struct validation with standardized error formatting. Fields
// are validated via `validate:"..."` tags; failures are reported as a
// multi-error chain rooted at ErrValidationFailed.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the sentinel root of every validation error chain,
// allowing callers to detect validation failures with errors.Is even when
// multiple field errors are joined.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is the package-level go-playground instance, configured on load.
var validator *gvalidator.Validate

// errStringFormat describes one failed field, e.g.
// "'WebhookURL': value '' does not meet the requirements for the 'required' validation".
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// formatError converts raw go-playground validation errors into a joined
// error chain rooted at ErrValidationFailed, with one formatted message per
// failing field. Non-validation errors pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks the given struct against its validation tags. It returns
// nil when all fields pass, or an error chain that includes
// ErrValidationFailed plus one message per failing field.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
