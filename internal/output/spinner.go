package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title   string
	enabled bool
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// WithEnabled turns the spinner off, for example in quiet mode.
func WithEnabled(enabled bool) SpinnerOption {
	return func(c *spinnerConfig) {
		c.enabled = enabled
	}
}

// RunWithSpinner executes action while showing a spinner on a terminal.
// Off a terminal, or when disabled, action runs directly. The returned error
// is the action's error.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title:   "Working...",
		enabled: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.enabled || !IsTTY() {
		return action()
	}

	done := make(chan struct{})
	var actionErr error
	go func() {
		defer close(done)
		actionErr = action()
	}()

	spinnerErr := spinner.New().
		Title(cfg.title).
		Context(ctx).
		Action(func() { <-done }).
		Run()

	// The action owns the subprocess; always wait for it so output is not interleaved.
	<-done

	if actionErr != nil {
		return actionErr
	}
	if spinnerErr != nil && ctx.Err() == nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return ctx.Err()
}
