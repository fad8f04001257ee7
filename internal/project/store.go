package project

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	oerrors "github.com/gojo-cpp/gojo/internal/errors"
	"github.com/gojo-cpp/gojo/internal/output"
)

var (
	// ErrNoConfig is returned by Read when the sidecar is absent or unreadable.
	// Callers fall back to Default.
	ErrNoConfig = errors.New("no gojo config file found")

	// ErrMalformed is returned by Read when the sidecar is shorter than the schema.
	ErrMalformed = errors.New("malformed gojo config file")
)

// fieldCount is the number of lines in the sidecar format.
const fieldCount = 14

// Keys returns the sidecar keys in on-disk order.
func Keys() []string {
	return []string{
		"project_root",
		"build_dir",
		"name",
		"std",
		"src",
		"hdr",
		"fmt_style",
		"fmt_args",
		"clang-tidy",
		"cpplint",
		"cpplint_args",
		"cppcheck",
		"cppcheck_args",
		"quiet",
	}
}

// values returns the serialised field values in on-disk order.
func (c *Config) values() []string {
	return []string{
		c.ProjectRoot,
		c.BuildDir,
		c.Name,
		string(c.Std),
		string(c.SrcExt),
		string(c.HdrExt),
		string(c.FmtStyle),
		c.FmtArgs,
		strconv.FormatBool(c.ClangTidy),
		strconv.FormatBool(c.Cpplint),
		c.CpplintArgs,
		strconv.FormatBool(c.Cppcheck),
		c.CppcheckArgs,
		strconv.FormatBool(c.Quiet),
	}
}

// Fields returns key/value pairs in on-disk order.
func (c *Config) Fields() [][2]string {
	keys := Keys()
	vals := c.values()
	out := make([][2]string, len(keys))
	for i := range keys {
		out[i] = [2]string{keys[i], vals[i]}
	}
	return out
}

// Marshal renders the sidecar text. Values containing a line break or
// surrounding whitespace cannot be represented and are rejected.
func Marshal(c *Config) ([]byte, error) {
	keys := Keys()
	var b strings.Builder
	for i, v := range c.values() {
		if strings.ContainsAny(v, "\r\n") {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("value for %s contains a line break", keys[i]),
				"", "config values must fit on one line")
		}
		if strings.TrimSpace(v) != v {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("value for %s has leading or trailing whitespace", keys[i]),
				"", "values are trimmed when read back")
		}
		b.WriteString(keys[i])
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

// Unmarshal parses sidecar text. Fields are positional; each line is split on
// its first colon so values may themselves contain colons.
func Unmarshal(data []byte) (*Config, error) {
	lines := strings.Split(string(data), "\n")
	if len(lines) < fieldCount {
		return nil, fmt.Errorf("%w: expected %d lines, found %d", ErrMalformed, fieldCount, len(lines))
	}

	vals := make([]string, fieldCount)
	for i := 0; i < fieldCount; i++ {
		_, v, ok := strings.Cut(lines[i], ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d has no ':' separator", ErrMalformed, i+1)
		}
		vals[i] = strings.TrimSpace(v)
	}

	return &Config{
		ProjectRoot:  vals[0],
		BuildDir:     vals[1],
		Name:         vals[2],
		Std:          Std(vals[3]),
		SrcExt:       SrcExt(vals[4]),
		HdrExt:       HdrExt(vals[5]),
		FmtStyle:     FmtStyle(vals[6]),
		FmtArgs:      vals[7],
		ClangTidy:    vals[8] == "true",
		Cpplint:      vals[9] == "true",
		CpplintArgs:  vals[10],
		Cppcheck:     vals[11] == "true",
		CppcheckArgs: vals[12],
		Quiet:        vals[13] == "true",
	}, nil
}

// Write serialises c to <c.ProjectRoot>/.gojo, replacing any existing file.
func Write(c *Config) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	path := Path(c.ProjectRoot)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	output.Debug("wrote project config", "path", path)
	return nil
}

// Read loads <dir>/.gojo. A missing or unreadable file yields ErrNoConfig.
func Read(dir string) (*Config, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		output.Debug("project config unavailable", "path", path, "error", err)
		return nil, ErrNoConfig
	}

	cfg, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return cfg, nil
}

// Load reads the sidecar in dir, falling back to Default(dir) when there is none.
// A malformed sidecar is still an error.
func Load(dir string) (*Config, error) {
	cfg, err := Read(dir)
	if errors.Is(err, ErrNoConfig) {
		output.Warn("no gojo config file found, using defaults", "dir", dir)
		return Default(dir), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
