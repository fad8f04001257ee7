package templates

import (
	"fmt"
	"unicode"
)

// ValidateProjectName checks that name can be used as a directory name and a
// CMake target name.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}

	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return fmt.Errorf("invalid project name %q: contains invalid character %q", name, r)
		}
	}

	if !unicode.IsLetter(rune(name[0])) && name[0] != '_' {
		return fmt.Errorf("invalid project name %q: must start with a letter or underscore", name)
	}

	return nil
}

// ValidCompilers returns the accepted --compiler values.
func ValidCompilers() []string {
	return []string{"g++", "clang++"}
}

// ValidateCompiler checks a --compiler value.
func ValidateCompiler(compiler string) error {
	for _, c := range ValidCompilers() {
		if c == compiler {
			return nil
		}
	}
	return fmt.Errorf("compiler option must be %q or %q", "g++", "clang++")
}
