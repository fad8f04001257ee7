package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gojo-cpp/gojo/internal/cmdtypes"
	"github.com/gojo-cpp/gojo/internal/cmdutil"
	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
	"github.com/gojo-cpp/gojo/internal/project"
	"github.com/gojo-cpp/gojo/internal/sources"
	"github.com/gojo-cpp/gojo/internal/toolchain"
)

// clangFormatFile is the style file used by fmt --file.
const clangFormatFile = ".clang-format"

// NewFmtCmd creates the fmt command.
func NewFmtCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return subcommand("fmt [options]", "Format sources with clang-format", func(c *cobra.Command, raw []string) error {
		if cmdutil.HelpRequested(raw) {
			return printCommandHelp("fmt")
		}

		f, err := cmdutil.ParseFlags("fmt", raw, "--style", "--file", "--in-place", "-i", "--dry-run")
		if err != nil {
			return err
		}

		pcfg, err := cmdutil.LoadProject(cfg.WorkDir)
		if err != nil {
			return err
		}

		style := project.DefaultFmtStyle
		if pcfg.FmtStyle != "" {
			style = pcfg.FmtStyle
		}

		if v, ok, err := cmdutil.StringFlag("fmt", f, "--style"); err != nil {
			return err
		} else if ok {
			if style, err = project.ParseFmtStyle("fmt", v); err != nil {
				return err
			}
		}

		if f.Has("--file") {
			styleFile := filepath.Join(pcfg.ProjectRoot, clangFormatFile)
			if _, err := os.Stat(styleFile); err != nil {
				return oerrors.NewNotFoundError("no .clang-format file found", styleFile, "see 'gojo help fmt'")
			}
			style = project.StyleFile
		}

		pcfg.FmtStyle = style
		if err := project.Write(pcfg); err != nil {
			return err
		}

		files, err := sources.CollectAll([]string{
			filepath.Join(pcfg.ProjectRoot, "src"),
			filepath.Join(pcfg.ProjectRoot, "test"),
		}, string(pcfg.SrcExt), string(pcfg.HdrExt))
		if err != nil {
			return err
		}
		if len(files) == 0 {
			output.Warn("no source files found", "root", pcfg.ProjectRoot)
			return nil
		}

		dryRun := f.Has("--dry-run")
		output.Debug("formatting", "style", style, "files", len(files), "dry_run", dryRun)

		return cfg.Runner.Run(c.Context(), toolchain.Invocation{
			Name:  cfg.Tools().ClangFormat,
			Args:  toolchain.ClangFormatArgs(string(style), !dryRun, dryRun, pcfg.FmtArgs, files),
			Dir:   pcfg.ProjectRoot,
			Stdin: toolchain.Discard,
		})
	})
}
