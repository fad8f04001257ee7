package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gojo-cpp/gojo/internal/cmdtypes"
	"github.com/gojo-cpp/gojo/internal/cmdutil"
	"github.com/gojo-cpp/gojo/internal/output"
)

// NewCleanCmd creates the clean command.
func NewCleanCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return subcommand("clean", "Remove build files", func(_ *cobra.Command, raw []string) error {
		if cmdutil.HelpRequested(raw) {
			return printCommandHelp("clean")
		}
		if _, err := cmdutil.ParseFlags("clean", raw); err != nil {
			return err
		}

		pcfg, err := cmdutil.LoadProject(cfg.WorkDir)
		if err != nil {
			return err
		}

		if err := cmdutil.CleanBuildDir(pcfg.BuildDir); err != nil {
			return err
		}

		cmdutil.Status{Quiet: pcfg.Quiet}.Println(output.FormatCheckmark("Cleaned " + pcfg.BuildDir))
		return nil
	})
}
