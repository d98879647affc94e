// Package main is the entry point for the skel CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/skelkit/skel/internal/cmd"
	oerrors "github.com/skelkit/skel/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Only print if the command layer hasn't already printed it
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			stop()
			os.Exit(exitErr.Code)
		}
		// Flag and argument errors from cobra land here.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
