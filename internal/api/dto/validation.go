package dto

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationDetails flattens ozzo field errors into a details map for the
// error response body.
func ValidationDetails(err error) map[string]any {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	details := make(map[string]any, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		details[field] = fieldErr.Error()
	}
	return details
}
