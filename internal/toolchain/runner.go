// Package toolchain runs the external C++ tools gojo drives.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
)

// Stream selects what a child process is connected to.
type Stream int

const (
	// Inherit connects the stream to the parent's stream.
	Inherit Stream = iota
	// Discard connects the stream to the null device.
	Discard
)

// Invocation describes one external command.
type Invocation struct {
	// Name is the program to run, looked up in PATH unless it contains a separator.
	Name string

	// Args excludes the program name.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Env is overlaid on the parent's environment.
	Env map[string]string

	Stdout Stream
	Stderr Stream
	Stdin  Stream
}

// String renders the command line for logs and error messages.
func (i Invocation) String() string {
	if len(i.Args) == 0 {
		return i.Name
	}
	return i.Name + " " + strings.Join(i.Args, " ")
}

// Runner executes external commands.
type Runner interface {
	// Run blocks until the command exits. A non-zero exit yields a *ToolError.
	Run(ctx context.Context, inv Invocation) error
}

// ToolError reports a tool that ran and exited unsuccessfully.
type ToolError struct {
	Tool     string
	Args     []string
	ExitCode int
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	cmdline := e.Tool
	if len(e.Args) > 0 {
		cmdline += " " + strings.Join(e.Args, " ")
	}
	return fmt.Sprintf("%s failed with exit code %d", cmdline, e.ExitCode)
}

// Unwrap lets errors.Is match ErrToolFailed.
func (e *ToolError) Unwrap() error {
	return oerrors.ErrToolFailed
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout, Stderr and Stdin are used for inherited streams.
	// Nil means the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// NewExecRunner creates an ExecRunner attached to the process's streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Stdin:  os.Stdin,
	}
}

// Run executes inv and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) error {
	cmd := exec.CommandContext(ctx, inv.Name, inv.Args...)
	cmd.Dir = inv.Dir

	if len(inv.Env) > 0 {
		keys := make([]string, 0, len(inv.Env))
		for k := range inv.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		cmd.Env = cmd.Environ()
		for _, k := range keys {
			cmd.Env = append(cmd.Env, k+"="+inv.Env[k])
		}
	}

	if inv.Stdout == Inherit {
		cmd.Stdout = writerOr(r.Stdout, os.Stdout)
	}
	if inv.Stderr == Inherit {
		cmd.Stderr = writerOr(r.Stderr, os.Stderr)
	}
	if inv.Stdin == Inherit {
		if r.Stdin != nil {
			cmd.Stdin = r.Stdin
		} else {
			cmd.Stdin = os.Stdin
		}
	}

	output.Debug("running tool", "cmd", inv.String(), "dir", inv.Dir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return fmt.Errorf("%s: %w", inv.Name, ctxErr)
			}
			return &ToolError{Tool: inv.Name, Args: inv.Args, ExitCode: exitErr.ExitCode()}
		}
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return &oerrors.DetailError{
				Type:    "file not found",
				Message: fmt.Sprintf("%s could not be found", inv.Name),
				Hint:    fmt.Sprintf("install %s or point gojo at it in ~/.gojo/config.yaml", inv.Name),
				Cause:   oerrors.ErrNotFound,
			}
		}
		return fmt.Errorf("running %s: %w", inv.Name, err)
	}

	return nil
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
