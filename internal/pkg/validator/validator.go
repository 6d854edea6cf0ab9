// Package validator wraps the go-playground/validator library with
// thread-safe initialization and standardized error formatting. Structs are
// validated through their `validate` tags, and violations are reported as a
// multi-error chain rooted at ErrValidation.
package validator

import (
	"errors"
	"fmt"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

var (
	// validator is the singleton go-playground validator instance.
	validator *gvalidator.Validate

	// initValidatorOnce ensures the singleton is built only once.
	initValidatorOnce sync.Once
)

// ErrValidation is the first error in the chain whenever validation fails.
// Callers can use errors.Is to detect validation failures without inspecting
// individual field messages.
var ErrValidation = errors.New("validation error")

// errStringFormat is the template for individual field violations.
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init builds the singleton validator with required-struct validation
// enabled. It is safe to call multiple times; only the first call takes
// effect.
func Init() {
	initValidatorOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	})
}

// formatError converts raw validator errors into a readable multi-error
// chain starting with ErrValidation. Non-validation errors pass through
// unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks the given struct against its `validate` tags. It returns
// nil when every rule passes, or an error chain rooted at ErrValidation
// otherwise. Init must be called before the first use.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
