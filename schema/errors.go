package schema

import (
	"strings"

	"go.uber.org/multierr"
)

// FieldError describes one violated constraint, attributed to the most
// specific field path implicated.
type FieldError struct {
	// Path is the dotted field path, e.g. "vpc.s3EndpointId" or
	// "models[1].modelId".
	Path string

	// Message is a human-readable description of the violation.
	Message string
}

func (e *FieldError) Error() string {
	return e.Path + ": " + e.Message
}

// FieldErrors unpacks an error returned by Validate into its ordered list
// of field errors. Non-field errors are ignored; nil input yields nil.
func FieldErrors(err error) []*FieldError {
	var fieldErrs []*FieldError

	for _, single := range multierr.Errors(err) {
		if fieldErr, ok := single.(*FieldError); ok { //nolint:errorlint // aggregated errors are never wrapped
			fieldErrs = append(fieldErrs, fieldErr)
		}
	}

	return fieldErrs
}

// Report renders a validation error as one "path: message" line per
// violation, suitable for direct console or log output.
func Report(err error) string {
	fieldErrs := FieldErrors(err)
	lines := make([]string, 0, len(fieldErrs))

	for _, fieldErr := range fieldErrs {
		lines = append(lines, fieldErr.Error())
	}

	return strings.Join(lines, "\n")
}
