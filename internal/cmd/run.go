package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gojo-cpp/gojo/internal/cmdtypes"
	"github.com/gojo-cpp/gojo/internal/cmdutil"
	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/toolchain"
)

// NewRunCmd creates the run command.
func NewRunCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return subcommand("run [exe] [args...]", "Run the compiled executable", func(c *cobra.Command, raw []string) error {
		if len(raw) > 0 && raw[0] == cmdutil.HelpFlag {
			return printCommandHelp("run")
		}

		pcfg, err := cmdutil.LoadProject(cfg.WorkDir)
		if err != nil {
			return err
		}
		if err := cmdutil.RequireBuildDir(pcfg); err != nil {
			return err
		}

		if len(raw) > 0 && !strings.HasPrefix(raw[0], "-") {
			return cfg.Runner.Run(c.Context(), toolchain.Invocation{
				Name: raw[0],
				Args: raw[1:],
				Dir:  cfg.WorkDir,
			})
		}

		inv := toolchain.Invocation{Dir: pcfg.ProjectRoot}

		exe := entryPoint(pcfg.BuildDir, pcfg.Name)
		if exe == "" {
			return oerrors.NewNotFoundError("no executable target found",
				filepath.Join(pcfg.BuildDir, pcfg.Name), "run 'gojo build' first")
		}
		inv.Name = exe
		inv.Args = raw
		return cfg.Runner.Run(c.Context(), inv)
	})
}

// entryPoint returns the path of the built executable, or "" if it is missing.
func entryPoint(buildDir, name string) string {
	if name == "" {
		return ""
	}
	exe := filepath.Join(buildDir, name)
	if runtime.GOOS == "windows" {
		exe += ".exe"
	}
	info, err := os.Stat(exe)
	if err != nil || info.IsDir() {
		return ""
	}
	return exe
}
