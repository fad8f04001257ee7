package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gojo-cpp/gojo/internal/cmdtypes"
	"github.com/gojo-cpp/gojo/internal/cmdutil"
	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
	"github.com/gojo-cpp/gojo/internal/project"
	"github.com/gojo-cpp/gojo/internal/toolchain"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return subcommand("build [options]", "Build the project with CMake", func(c *cobra.Command, raw []string) error {
		if cmdutil.HelpRequested(raw) {
			return printCommandHelp("build")
		}

		f, err := cmdutil.ParseFlags("build", raw,
			"--release", "-r", "--tests", "-t", "--clean", "-c", "--quiet", "-q")
		if err != nil {
			return err
		}

		pcfg, err := cmdutil.LoadProject(cfg.WorkDir)
		if err != nil {
			return err
		}

		mode := toolchain.Debug
		if f.Has("--release", "-r") {
			mode = toolchain.Release
		}

		if err := requireDescriptor(pcfg); err != nil {
			return err
		}

		if f.Has("--clean", "-c") {
			if err := cmdutil.CleanBuildDir(pcfg.BuildDir); err != nil {
				return err
			}
		}

		return runBuild(c.Context(), cfg, pcfg, buildOptions{
			mode:  mode,
			tests: f.Has("--tests", "-t"),
			quiet: pcfg.Quiet || f.Has("--quiet", "-q"),
		})
	})
}

type buildOptions struct {
	mode        toolchain.BuildMode
	tests       bool
	staticCheck bool
	quiet       bool

	// quietBuild discards the build step's stdout even when not quiet.
	quietBuild bool
}

// runBuild configures and builds the project in pcfg.BuildDir.
func runBuild(ctx context.Context, cfg *cmdtypes.GlobalConfig, pcfg *project.Config, opts buildOptions) error {
	status := cmdutil.Status{Quiet: opts.quiet}
	tools := cfg.Tools()

	if err := requireDescriptor(pcfg); err != nil {
		return err
	}

	if err := cmdutil.EnsureBuildDir(pcfg); err != nil {
		return err
	}

	status.Step("Initializing CMake in " + pcfg.BuildDir)
	configure := toolchain.Invocation{
		Name:   tools.CMake,
		Args:   toolchain.ConfigureArgs(opts.mode, opts.tests, opts.staticCheck, pcfg.ProjectRoot, pcfg.BuildDir),
		Dir:    pcfg.ProjectRoot,
		Stdout: toolchain.Discard,
		Stdin:  toolchain.Discard,
	}
	err := output.RunWithSpinner(ctx, func() error {
		return cfg.Runner.Run(ctx, configure)
	}, output.WithTitle("Configuring CMake..."), output.WithEnabled(!opts.quiet))
	if err != nil {
		return err
	}

	status.Println(output.FormatCompiling(pcfg.Name, string(opts.mode)) + "\n")
	build := toolchain.Invocation{
		Name:  tools.CMake,
		Args:  toolchain.BuildArgs(pcfg.BuildDir, cfg.Jobs()),
		Dir:   pcfg.ProjectRoot,
		Stdin: toolchain.Discard,
	}
	if opts.quiet || opts.quietBuild {
		build.Stdout = toolchain.Discard
	}

	elapsed, err := cmdutil.Timed(func() error {
		return cfg.Runner.Run(ctx, build)
	})
	if err != nil {
		status.Done("Build failed", false, elapsed)
		return err
	}

	status.Println("")
	status.Done("Build successful", true, elapsed)
	return nil
}

// requireDescriptor fails with a not-found error when the project has no
// root CMakeLists.txt.
func requireDescriptor(pcfg *project.Config) error {
	descriptor := filepath.Join(pcfg.ProjectRoot, "CMakeLists.txt")
	if _, err := os.Stat(descriptor); err != nil {
		return oerrors.NewNotFoundError("no CMakeLists.txt found at the project root",
			descriptor, "run 'gojo init <name>' to create a project")
	}
	return nil
}
