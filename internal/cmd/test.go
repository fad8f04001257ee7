package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gojo-cpp/gojo/internal/cmdtypes"
	"github.com/gojo-cpp/gojo/internal/cmdutil"
	"github.com/gojo-cpp/gojo/internal/toolchain"
)

// NewTestCmd creates the test command.
func NewTestCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return subcommand("test", "Run the unit tests", func(c *cobra.Command, raw []string) error {
		if cmdutil.HelpRequested(raw) {
			return printCommandHelp("test")
		}
		if _, err := cmdutil.ParseFlags("test", raw); err != nil {
			return err
		}

		pcfg, err := cmdutil.LoadProject(cfg.WorkDir)
		if err != nil {
			return err
		}
		if err := cmdutil.EnsureBuildDir(pcfg); err != nil {
			return err
		}

		err = cfg.Runner.Run(c.Context(), toolchain.Invocation{
			Name:  cfg.Tools().CTest,
			Args:  toolchain.CTestArgs(),
			Dir:   pcfg.BuildDir,
			Env:   map[string]string{"GTEST_COLOR": "1"},
			Stdin: toolchain.Discard,
		})
		if err != nil {
			return err
		}

		cmdutil.Status{Quiet: pcfg.Quiet}.Println("")
		return nil
	})
}
