package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gojo-cpp/gojo/internal/cmdtypes"
	"github.com/gojo-cpp/gojo/internal/cmdutil"
	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
	"github.com/gojo-cpp/gojo/internal/project"
	"github.com/gojo-cpp/gojo/internal/templates"
	"github.com/gojo-cpp/gojo/internal/toolchain"
)

// initOptions are the parsed and validated init flags.
type initOptions struct {
	name        string
	std         project.Std
	srcExt      project.SrcExt
	hdrExt      project.HdrExt
	buildDir    string
	compiler    string
	description string
	tests       bool
	git         bool
	quiet       bool
}

// NewInitCmd creates the init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return subcommand("init <name> [options]", "Create a new gojo project", func(c *cobra.Command, raw []string) error {
		if len(raw) > 0 && raw[0] == cmdutil.HelpFlag {
			return printCommandHelp("init")
		}
		opts, err := parseInitOptions(raw)
		if err != nil {
			return err
		}
		return runInit(c, cfg, opts)
	})
}

func parseInitOptions(raw []string) (*initOptions, error) {
	if len(raw) == 0 || strings.HasPrefix(raw[0], "-") {
		return nil, oerrors.NewUsageError("init", "gojo init <name> [options]")
	}

	opts := &initOptions{
		name:     raw[0],
		std:      project.DefaultStd,
		srcExt:   project.DefaultSrcExt(),
		hdrExt:   project.DefaultHdrExt(),
		buildDir: project.DefaultBuildDir,
		tests:    true,
		git:      true,
	}

	if err := templates.ValidateProjectName(opts.name); err != nil {
		return nil, oerrors.NewUsageError("init", err.Error())
	}

	f, err := cmdutil.ParseFlags("init", raw[1:],
		"--std", "--src-extension", "-s", "--hdr-extension", "-h", "--build-dir", "-b",
		"--compiler", "--description", "--no-test", "--no-git", "--quiet", "-q")
	if err != nil {
		return nil, err
	}

	if v, ok, err := cmdutil.StringFlag("init", f, "--std"); err != nil {
		return nil, err
	} else if ok {
		if opts.std, err = project.ParseStd("init", v); err != nil {
			return nil, err
		}
	}

	if v, ok, err := cmdutil.StringFlag("init", f, "--src-extension", "-s"); err != nil {
		return nil, err
	} else if ok {
		if opts.srcExt, err = project.ParseSrcExt("init", v); err != nil {
			return nil, err
		}
	}

	if v, ok, err := cmdutil.StringFlag("init", f, "--hdr-extension", "-h"); err != nil {
		return nil, err
	} else if ok {
		if opts.hdrExt, err = project.ParseHdrExt("init", v); err != nil {
			return nil, err
		}
	}

	if v, ok, err := cmdutil.StringFlag("init", f, "--build-dir", "-b"); err != nil {
		return nil, err
	} else if ok {
		clean := filepath.Clean(v)
		if filepath.IsAbs(v) || clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return nil, oerrors.NewUsageError("init", fmt.Sprintf("--build-dir must name a directory inside the project, got %q", v))
		}
		opts.buildDir = clean
	}

	if v, ok, err := cmdutil.StringFlag("init", f, "--compiler"); err != nil {
		return nil, err
	} else if ok {
		if err := templates.ValidateCompiler(v); err != nil {
			return nil, oerrors.NewUsageError("init", err.Error())
		}
		opts.compiler = v
	}

	if v, ok, err := cmdutil.StringFlag("init", f, "--description"); err != nil {
		return nil, err
	} else if ok {
		if strings.ContainsAny(v, "\"\r\n") {
			return nil, oerrors.NewUsageError("init", "--description must be a single line without quotes")
		}
		opts.description = v
	}

	opts.tests = !f.Has("--no-test")
	opts.git = !f.Has("--no-git")
	opts.quiet = f.Has("--quiet", "-q")

	return opts, nil
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, opts *initOptions) error {
	root := filepath.Join(cfg.WorkDir, opts.name)
	buildDir := filepath.Join(root, opts.buildDir)
	status := cmdutil.Status{Quiet: opts.quiet}

	if _, err := os.Stat(root); err == nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("directory already exists: %s", opts.name),
			root, "choose a different name or remove the existing directory")
	}

	if err := os.Mkdir(root, 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}

	buildRel, err := filepath.Rel(root, buildDir)
	if err != nil {
		return fmt.Errorf("resolving build directory: %w", err)
	}

	data := templates.Data{
		Name:         opts.name,
		SrcExt:       string(opts.srcExt),
		HdrExt:       string(opts.hdrExt),
		Std:          string(opts.std),
		CMakeVersion: cfg.CMakeVersion(),
		Compiler:     opts.compiler,
		Description:  opts.description,
		BuildDirName: filepath.ToSlash(buildRel),
	}

	created, err := templates.Scaffold(root, data, opts.tests)
	if err != nil {
		return fmt.Errorf("writing project files: %w", err)
	}

	if opts.git {
		inv := toolchain.Invocation{
			Name:  cfg.Tools().Git,
			Args:  toolchain.GitInitArgs(),
			Dir:   root,
			Stdin: toolchain.Discard,
		}
		if opts.quiet {
			inv.Stdout = toolchain.Discard
		}
		status.Step("Initializing Git repository...")
		if err := cfg.Runner.Run(c.Context(), inv); err != nil {
			return err
		}
	}

	pcfg := project.Default(root)
	pcfg.BuildDir = buildDir
	pcfg.Name = opts.name
	pcfg.Std = opts.std
	pcfg.SrcExt = opts.srcExt
	pcfg.HdrExt = opts.hdrExt
	pcfg.ClangTidy = true
	pcfg.Cppcheck = true
	pcfg.Quiet = opts.quiet
	if err := project.Write(pcfg); err != nil {
		return err
	}

	files := map[string]string{
		filepath.ToSlash(buildRel) + "/": "Build output",
		project.FileName:                 "Project config",
	}
	for _, f := range created {
		files[f.Path] = f.Description
	}

	status.Println("")
	status.Println(output.StyleSuccess.Render("Created gojo project:") + " " + output.StyleNoun.Render(opts.name))
	status.Println(output.RenderFileTree(opts.name, files))
	status.Println(output.StyleAction.Render("root:") + "   " + root)
	status.Println(output.StyleAction.Render("config:") + " " + project.Path(root))

	return nil
}
