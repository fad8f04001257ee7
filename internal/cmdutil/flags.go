// Package cmdutil provides helpers shared by the gojo subcommands: raw flag
// checking, project loading and status output.
package cmdutil

import (
	"fmt"

	"github.com/gojo-cpp/gojo/internal/args"
	oerrors "github.com/gojo-cpp/gojo/internal/errors"
)

// HelpFlag is accepted by every subcommand.
const HelpFlag = "--help"

// HelpRequested reports whether any raw token asks for help.
func HelpRequested(raw []string) bool {
	for _, tok := range raw {
		if tok == HelpFlag {
			return true
		}
	}
	return false
}

// ParseFlags tokenizes raw and rejects the first flag not in accepted.
func ParseFlags(command string, raw []string, accepted ...string) (args.Flags, error) {
	f := args.Parse(raw)
	if bad, ok := f.Unknown(append(accepted, HelpFlag)...); ok {
		return f, oerrors.NewUsageError(command, fmt.Sprintf("invalid option '%s'", bad))
	}
	return f, nil
}

// StringFlag returns the value of a value-taking flag. names[0] is used in
// the error when the flag is present without a value.
func StringFlag(command string, f args.Flags, names ...string) (string, bool, error) {
	v, ok := f.Get(names...)
	if !ok {
		return "", false, nil
	}
	if !v.Set || v.Val == "" {
		return "", true, oerrors.NewUsageError(command, fmt.Sprintf("missing value for %s flag", names[0]))
	}
	return v.Val, true, nil
}
