package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates user input failed validation.
	ErrValidation = errors.New("validation error")

	// ErrConfig indicates a schema, answers file, or config file is out of
	// sync with what the command expects.
	ErrConfig = errors.New("configuration error")

	// ErrNotFound indicates a variant, schema, or file was not found.
	ErrNotFound = errors.New("not found")
)

// Exit codes shared by every command.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input or configuration.
	ExitValidationError = 2

	// ExitNotFound indicates a variant, schema, or file was not found.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}
