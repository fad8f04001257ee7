package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gojo-cpp/gojo/internal/cmdtypes"
	"github.com/gojo-cpp/gojo/internal/cmdutil"
	"github.com/gojo-cpp/gojo/internal/config"
	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
	"github.com/gojo-cpp/gojo/internal/project"
)

// NewConfigCmd creates the config command.
func NewConfigCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return subcommand("config [options]", "Print the effective project config", func(_ *cobra.Command, raw []string) error {
		if cmdutil.HelpRequested(raw) {
			return printCommandHelp("config")
		}

		f, err := cmdutil.ParseFlags("config", raw, "--output", "-o", "--settings")
		if err != nil {
			return err
		}

		format := output.FormatText
		if v, ok, err := cmdutil.StringFlag("config", f, "--output", "-o"); err != nil {
			return err
		} else if ok {
			parsed, valid := output.ParseOutputFormat(v)
			if !valid {
				return oerrors.NewUsageError("config", fmt.Sprintf("unrecognized value %q for --output flag (valid: %s)",
					v, strings.Join(output.ValidFormats(), ", ")))
			}
			format = parsed
		}

		if f.Has("--settings") {
			return printSettings(cfg.Settings, format)
		}

		pcfg, err := cmdutil.LoadProject(cfg.WorkDir)
		if err != nil {
			return err
		}
		return printProjectConfig(pcfg, format)
	})
}

func printProjectConfig(pcfg *project.Config, format output.OutputFormat) error {
	if format == output.FormatText {
		output.Print(output.RenderSettingsTable(pcfg.Fields()) + "\n")
		return nil
	}
	return printStructured(pcfg, format)
}

func printSettings(s *config.Settings, format output.OutputFormat) error {
	if format != output.FormatText {
		return printStructured(s, format)
	}

	timestamps := "default"
	if s.Log.Timestamps != nil {
		timestamps = strconv.FormatBool(*s.Log.Timestamps)
	}
	rows := [][2]string{
		{"tools.cmake", s.Tools.CMake},
		{"tools.ctest", s.Tools.CTest},
		{"tools.clang_format", s.Tools.ClangFormat},
		{"tools.cppcheck", s.Tools.Cppcheck},
		{"tools.cpplint", s.Tools.Cpplint},
		{"tools.git", s.Tools.Git},
		{"jobs", strconv.Itoa(s.BuildJobs())},
		{"cmake_version", s.CMakeVersion},
		{"log.verbose", strconv.FormatBool(s.Log.Verbose)},
		{"log.timestamps", timestamps},
	}
	output.Print(output.RenderSettingsTable(rows) + "\n")
	return nil
}

func printStructured(v any, format output.OutputFormat) error {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		output.Println(string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		output.Print(string(data))
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	return nil
}
