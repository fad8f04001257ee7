package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
)

const banner = `"Throughout Heaven and Earth, I alone am the honored one"`

// commandSummary is one row of the top-level help.
type commandSummary struct {
	usage string
	short string
}

var commandSummaries = []commandSummary{
	{"init <NAME> [OPTIONS]", "create a new gojo project in the current directory"},
	{"build [OPTIONS]", "build the project with CMake"},
	{"run [<PATH>] [ARGS...]", "run the compiled executable"},
	{"test", "run the unit tests with CTest"},
	{"clean", "remove build files and the CMake cache"},
	{"fmt [OPTIONS]", "format sources with clang-format"},
	{"check [OPTIONS]", "run the enabled static analyzers"},
	{"config [OPTIONS]", "print the effective project config"},
	{"version", "print version information"},
	{"help [<COMMAND>]", "print help"},
}

// commandHelp holds the per-command help pages.
var commandHelp = map[string]string{
	"init": `Usage: gojo init <NAME> [OPTIONS]

Create directory NAME with a CMake project skeleton, a git repository and a
.gojo config file.

Options:
  --std <STD>                    C++ standard: 11, 14, 17, 20, 23 (default 20)
  -s, --src-extension <EXT>      source suffix: cc, cpp, cxx, c++
  -h, --hdr-extension <EXT>      header suffix: h, hpp, hxx, h++
  -b, --build-dir <DIR>          build directory relative to the project (default build)
  --compiler <CXX>               set CMAKE_CXX_COMPILER: g++ or clang++
  --description <TEXT>           project description for CMake and the README
  --no-test                      do not create the test/ directory
  --no-git                       do not run git init
  -q, --quiet                    suppress status output`,

	"build": `Usage: gojo build [OPTIONS]

Configure the project with CMake and build it.

Options:
  -r, --release                  build in Release mode (default Debug)
  -t, --tests                    build the unit tests
  -c, --clean                    clean the build directory first
  -q, --quiet                    suppress status and compiler output`,

	"run": `Usage: gojo run [<PATH>] [ARGS...]

Run PATH with ARGS from the current directory. Without PATH, run the
project's executable from the build directory and pass it all ARGS.`,

	"test": `Usage: gojo test

Run ctest -V in the build directory. Build with 'gojo build --tests' first.`,

	"clean": `Usage: gojo clean

Remove and recreate the build directory. Fetched dependencies in _deps/ are kept.`,

	"fmt": `Usage: gojo fmt [OPTIONS]

Format every source and header under src/ and test/ with clang-format. The
chosen style is saved to .gojo and reused by later runs.

Options:
  --style <STYLE>                llvm, google, chromium, mozilla, webkit, microsoft, gnu
  --file                         use the .clang-format file at the project root
  -i, --in-place                 edit files in place (default)
  --dry-run                      report formatting problems without editing`,

	"check": `Usage: gojo check [OPTIONS]

Run the analyzers enabled in .gojo in order: cpplint, cppcheck, clang-tidy.
clang-tidy runs as part of a Release build with STATIC_CHECK=ON.

Options:
  -q, --quiet                    suppress status output`,

	"config": `Usage: gojo config [OPTIONS]

Print the effective project config, or the tool settings.

Options:
  -o, --output <FORMAT>          text, yaml or json (default text)
  --settings                     print tool settings from ~/.gojo/config.yaml instead`,

	"version": `Usage: gojo version

Print the gojo version and the versions of the external tools it finds.`,

	"help": `Usage: gojo help [<COMMAND>]

Print general help, or the help page of COMMAND.`,
}

// renderHelp returns the top-level help text.
func renderHelp() string {
	var b strings.Builder

	b.WriteString(output.StyleSuccess.Render("gojo:"))
	b.WriteString(" a modern build system for C++\n\n")
	b.WriteString(output.StyleSuccess.Render("Usage:"))
	b.WriteString(" ")
	b.WriteString(output.StyleNoun.Render("gojo <COMMAND> [OPTIONS]"))
	b.WriteString("\n\n")
	b.WriteString(output.StyleSuccess.Render("Commands:"))
	b.WriteString("\n")
	for _, c := range commandSummaries {
		fmt.Fprintf(&b, "    %s%s%s\n",
			output.StyleNoun.Render(c.usage),
			strings.Repeat(" ", 28-len(c.usage)),
			c.short)
	}
	b.WriteString("\nSee '")
	b.WriteString(output.StyleNoun.Render("gojo help <COMMAND>"))
	b.WriteString("' for more information on a specific command")
	return b.String()
}

// printCommandHelp prints the help page for name.
func printCommandHelp(name string) error {
	text, ok := commandHelp[name]
	if !ok {
		return oerrors.NewUsageError("", fmt.Sprintf("command not recognized: %s", name))
	}
	output.Println(text)
	return nil
}

// NewHelpCmd creates the help command.
func NewHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "help [command]",
		Short:              "Print help",
		DisableFlagParsing: true,
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				output.Println(renderHelp())
				return nil
			}
			return printCommandHelp(args[0])
		},
	}
}
