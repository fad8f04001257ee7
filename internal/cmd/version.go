package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gojo-cpp/gojo/internal/cmdtypes"
	"github.com/gojo-cpp/gojo/internal/cmdutil"
	"github.com/gojo-cpp/gojo/internal/output"
	"github.com/gojo-cpp/gojo/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return subcommand("version", "Show version information", func(c *cobra.Command, raw []string) error {
		if cmdutil.HelpRequested(raw) {
			return printCommandHelp("version")
		}
		if _, err := cmdutil.ParseFlags("version", raw); err != nil {
			return err
		}

		t := cfg.Tools()
		var tools []version.ToolInfo
		for _, name := range []string{t.CMake, t.CTest, t.ClangFormat, t.Cppcheck, t.Cpplint, t.Git} {
			tools = append(tools, version.DetectTool(c.Context(), name))
		}

		output.Println(version.FullVersionString(version.Get(), tools))
		return nil
	})
}
