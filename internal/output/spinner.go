package output

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RunWithSpinner executes action while a spinner titled title is shown.
// Without a terminal the action runs directly.
func RunWithSpinner(ctx context.Context, title string, action func() error) error {
	if !IsTTY() {
		return action()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- action()
	}()

	var result error
	spinnerErr := spinner.New().
		Context(ctx).
		Title(title).
		Action(func() {
			select {
			case result = <-errCh:
			case <-ctx.Done():
				result = ctx.Err()
			}
		}).
		Run()
	if spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return result
}
