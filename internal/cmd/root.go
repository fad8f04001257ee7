// Package cmd provides the gojo command tree.
//
// Subcommands disable cobra's flag parsing and check their raw arguments with
// internal/args, so every command reports unknown flags the same way.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gojo-cpp/gojo/internal/cmdtypes"
	"github.com/gojo-cpp/gojo/internal/config"
	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
	"github.com/gojo-cpp/gojo/internal/toolchain"
)

// NewRootCmd creates the root command for the gojo CLI.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithConfig(&cmdtypes.GlobalConfig{})
}

// NewRootCmdWithConfig creates the root command around cfg. Fields left
// unset are filled in before any subcommand runs.
func NewRootCmdWithConfig(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gojo",
		Short:         "A modern build system for C++",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return oerrors.NewUsageError("", fmt.Sprintf("command not recognized: %s", args[0]))
			}
			return nil
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initializeGlobals(cfg)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			output.Println(output.StyleAction.Render(banner) + "\n")
			output.Println(renderHelp())
			return nil
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return oerrors.NewUsageError("", err.Error())
	})
	rootCmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if _, ok := commandHelp[c.Name()]; ok {
			_ = printCommandHelp(c.Name())
			return
		}
		output.Println(renderHelp())
	})

	rootCmd.AddCommand(NewInitCmd(cfg))
	rootCmd.AddCommand(NewBuildCmd(cfg))
	rootCmd.AddCommand(NewRunCmd(cfg))
	rootCmd.AddCommand(NewTestCmd(cfg))
	rootCmd.AddCommand(NewCleanCmd(cfg))
	rootCmd.AddCommand(NewFmtCmd(cfg))
	rootCmd.AddCommand(NewCheckCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))
	rootCmd.SetHelpCommand(NewHelpCmd())

	return rootCmd
}

// initializeGlobals loads tool settings, sets up logging and fills in the
// runner and working directory.
func initializeGlobals(cfg *cmdtypes.GlobalConfig) error {
	if cfg.Settings == nil {
		settings, err := config.NewLoader().Load("")
		if err != nil {
			return err
		}
		cfg.Settings = settings
	}

	output.SetupLogging(output.LogConfig{
		Verbose:    cfg.Settings.Log.Verbose,
		Timestamps: cfg.Settings.Log.Timestamps,
	})

	if cfg.Runner == nil {
		cfg.Runner = toolchain.NewExecRunner()
	}

	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.WorkDir = wd
	}

	output.Debug("initializing CLI",
		"workdir", cfg.WorkDir,
		"jobs", cfg.Jobs(),
		"cmake", cfg.Settings.Tools.CMake,
	)
	return nil
}

// subcommand builds a cobra command that hands its raw arguments to run.
func subcommand(name, short string, run func(c *cobra.Command, raw []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                name,
		Short:              short,
		DisableFlagParsing: true,
		RunE:               run,
	}
}
