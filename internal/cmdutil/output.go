package cmdutil

import (
	"errors"
	"fmt"
	"io"

	oerrors "github.com/skelkit/skel/internal/errors"
	"github.com/skelkit/skel/internal/naming"
	"github.com/skelkit/skel/internal/output"
)

// PrintError writes err to w in its most readable form: the one-line
// diagnostic for an invalid name, the structured block for a DetailError,
// and "Error: <err>" otherwise.
func PrintError(w io.Writer, err error) {
	var nameErr *naming.InvalidNameError
	var detail *oerrors.DetailError

	switch {
	case errors.As(err, &nameErr):
		fmt.Fprintln(w, nameErr.Diagnostic())
	case errors.As(err, &detail):
		fmt.Fprint(w, detail.Error())
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// Fail prints err to w and returns an ExitError carrying the exit code the
// error maps to, marked as printed so main stays quiet.
func Fail(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	PrintError(w, err)
	code := oerrors.ExitCodeFromError(err)
	output.Debug("command failed", "code", code, "reason", oerrors.ExitCodeName(code))
	return &oerrors.ExitError{
		Err:     err,
		Code:    code,
		Printed: true,
	}
}

// ConfigError presents err as a configuration error at location. Errors that
// already carry details are returned unchanged.
func ConfigError(err error, location, hint string) error {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return err
	}
	return oerrors.NewConfigError(err.Error(), location, "", hint, err)
}
