package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gojo-cpp/gojo/internal/cmdtypes"
	"github.com/gojo-cpp/gojo/internal/cmdutil"
	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
	"github.com/gojo-cpp/gojo/internal/project"
	"github.com/gojo-cpp/gojo/internal/sources"
	"github.com/gojo-cpp/gojo/internal/toolchain"
)

// analyzer is one step of gojo check.
type analyzer struct {
	name    string
	enabled func(*project.Config) bool
	run     func(ctx context.Context, files []string) error
}

// NewCheckCmd creates the check command.
func NewCheckCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return subcommand("check [options]", "Run the enabled static analyzers", func(c *cobra.Command, raw []string) error {
		if cmdutil.HelpRequested(raw) {
			return printCommandHelp("check")
		}

		f, err := cmdutil.ParseFlags("check", raw, "--quiet", "-q")
		if err != nil {
			return err
		}

		pcfg, err := cmdutil.LoadProject(cfg.WorkDir)
		if err != nil {
			return err
		}
		if err := cmdutil.EnsureBuildDir(pcfg); err != nil {
			return err
		}

		return runCheck(c.Context(), cfg, pcfg, pcfg.Quiet || f.Has("--quiet", "-q"))
	})
}

func runCheck(ctx context.Context, cfg *cmdtypes.GlobalConfig, pcfg *project.Config, quiet bool) error {
	status := cmdutil.Status{Quiet: quiet}
	tools := cfg.Tools()

	files, err := sources.CollectAll([]string{
		filepath.Join(pcfg.ProjectRoot, "src"),
		filepath.Join(pcfg.ProjectRoot, "test"),
	}, string(pcfg.SrcExt), string(pcfg.HdrExt))
	if err != nil {
		return err
	}

	analyzers := []analyzer{
		{
			name:    "cpplint",
			enabled: func(p *project.Config) bool { return p.Cpplint },
			run: func(ctx context.Context, files []string) error {
				return cfg.Runner.Run(ctx, toolchain.Invocation{
					Name:  tools.Cpplint,
					Args:  toolchain.CpplintArgs(pcfg.CpplintArgs, files),
					Dir:   pcfg.ProjectRoot,
					Stdin: toolchain.Discard,
				})
			},
		},
		{
			name:    "cppcheck",
			enabled: func(p *project.Config) bool { return p.Cppcheck },
			run: func(ctx context.Context, files []string) error {
				return cfg.Runner.Run(ctx, toolchain.Invocation{
					Name:  tools.Cppcheck,
					Args:  toolchain.CppcheckArgs(string(pcfg.Std), pcfg.CppcheckArgs, files),
					Dir:   pcfg.ProjectRoot,
					Stdin: toolchain.Discard,
				})
			},
		},
		{
			name:    "clang-tidy",
			enabled: func(p *project.Config) bool { return p.ClangTidy },
			run: func(ctx context.Context, _ []string) error {
				return runBuild(ctx, cfg, pcfg, buildOptions{
					mode:        toolchain.Release,
					tests:       true,
					staticCheck: true,
					quiet:       quiet,
					quietBuild:  true,
				})
			},
		},
	}

	status.Println(output.StyleAction.Render("Running checks..."))
	start := time.Now()

	var (
		results  []output.StepResult
		failures []error
		failed   []string
	)
	for _, a := range analyzers {
		if !a.enabled(pcfg) {
			output.Debug("analyzer disabled", "name", a.name)
			continue
		}
		if a.name != "clang-tidy" && len(files) == 0 {
			output.Warn("no source files found, skipping", "analyzer", a.name)
			continue
		}

		status.Step("Running " + a.name + "...")
		status.Println("")
		elapsed, err := cmdutil.Timed(func() error { return a.run(ctx, files) })
		status.Println("")

		results = append(results, output.StepResult{Name: a.name, Passed: err == nil, Elapsed: elapsed})
		if err != nil {
			if ctx.Err() != nil {
				return err
			}
			status.Done(a.name+" failed", false, elapsed)
			output.Error(a.name+" failed", "error", err)
			failures = append(failures, err)
			failed = append(failed, a.name)
			continue
		}
		status.Done(a.name+" passed", true, elapsed)
	}

	if len(results) > 0 {
		status.Println("")
		status.Println(output.RenderStepTable(results))
	}

	total := time.Since(start)
	if len(failures) > 0 {
		status.Done("Checks failed", false, total)
		// The summary table already reported each failure unless quiet.
		return &oerrors.ExitError{
			Err: &oerrors.DetailError{
				Type:    "checks failed",
				Message: strings.Join(failed, ", ") + " reported problems",
				Cause:   errors.Join(failures...),
			},
			Code:    oerrors.ExitToolFailure,
			Printed: !quiet,
		}
	}

	status.Done("All checks passed", true, total)
	return nil
}
