// Package main is the entry point for the gojo CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gojo-cpp/gojo/internal/cmd"
	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			fmt.Fprintln(os.Stderr, output.FormatError(err.Error()))
		}
		code := oerrors.ExitCodeFromError(err)
		output.Debug("exiting", "code", code, "reason", oerrors.ExitCodeName(code))
		stop()
		os.Exit(code)
	}
}
