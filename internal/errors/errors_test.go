//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrConfig)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrConfig, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "configuration error",
		Message:  "option missing from answers",
		Location: "/tmp/project",
		Field:    "project_cli",
		Context:  map[string]string{"Variant": "python", "Answers": "answers.yaml"},
		Hint:     "Pass --set project_cli=yes",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: configuration error")
	assert.Contains(t, output, "Location: /tmp/project")
	assert.Contains(t, output, "Field: project_cli")
	assert.Contains(t, output, "Variant: python")
	assert.Contains(t, output, "option missing from answers")
	assert.Contains(t, output, "Hint: Pass --set project_cli=yes")
	assert.Less(t, strings.Index(output, "Answers:"), strings.Index(output, "Variant:"), "context keys are sorted")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("bad name", "", "project_package", "Use letters")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "project_package", detail.Field)
	assert.Equal(t, "Use letters", detail.Hint)
}

func TestNewConfigError(t *testing.T) {
	specific := fmt.Errorf("%w: missing key", ErrConfig)

	err := NewConfigError("answers incomplete", "schema.yaml", "project_cli", "", specific)
	assert.True(t, errors.Is(err, ErrConfig))
	assert.True(t, errors.Is(err, specific))

	err = NewConfigError("no cause", "", "", "", nil)
	assert.True(t, errors.Is(err, ErrConfig))

	unrelated := errors.New("yaml: line 3: did not find expected key")
	err = NewConfigError("bad file", "config.yaml", "", "", unrelated)
	assert.True(t, errors.Is(err, ErrConfig))
	assert.True(t, errors.Is(err, unrelated))
	assert.Equal(t, ExitValidationError, ExitCodeFromError(err))
}

func TestNewf(t *testing.T) {
	cause := errors.New("yaml: line 3")
	err := Newf(ErrConfig, "parsing answers: %w", cause)

	assert.Equal(t, "parsing answers: yaml: line 3", err.Error())
	assert.ErrorIs(t, err, ErrConfig)
	assert.ErrorIs(t, err, cause)

	detail := NewConfigError(err.Error(), "answers.yaml", "", "", err)
	assert.Equal(t, 1, strings.Count(detail.Error(), ErrConfig.Error()), detail.Error())
	assert.Equal(t, ExitValidationError, ExitCodeFromError(detail))
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error returns success", nil, ExitSuccess},
		{"validation error", ErrValidation, ExitValidationError},
		{"config error", ErrConfig, ExitValidationError},
		{"wrapped config error", fmt.Errorf("pruning: %w", ErrConfig), ExitValidationError},
		{"not found error", ErrNotFound, ExitNotFound},
		{"unknown error", errors.New("boom"), ExitGeneralError},
		{"exit error with custom code", NewExitError(errors.New("custom"), 42), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitError(t *testing.T) {
	original := errors.New("original error")
	exitErr := NewExitError(original, ExitValidationError)

	assert.Equal(t, "original error", exitErr.Error())
	assert.Equal(t, original, errors.Unwrap(exitErr))
	assert.True(t, errors.Is(exitErr, original))

	bare := &ExitError{Code: 3}
	assert.Equal(t, "exit status 3", bare.Error())
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Success", ExitCodeName(ExitSuccess))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Not Found", ExitCodeName(ExitNotFound))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
