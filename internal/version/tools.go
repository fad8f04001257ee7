package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// toolVersionRegex matches version output like "cmake version 3.28.3".
var toolVersionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9.]+)?`)

// ToolInfo describes one external tool found on the machine.
type ToolInfo struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Found   bool   `json:"found" yaml:"found"`
}

// String returns a one-line summary.
func (t ToolInfo) String() string {
	if !t.Found {
		return fmt.Sprintf("  %-14s not found", t.Name+":")
	}
	v := t.Version
	if v == "" {
		v = "unknown version"
	}
	return fmt.Sprintf("  %-14s %s (%s)", t.Name+":", v, t.Path)
}

// DetectTool looks name up in PATH and asks it for its version.
func DetectTool(ctx context.Context, name string) ToolInfo {
	path, err := exec.LookPath(name)
	if err != nil {
		return ToolInfo{Name: name}
	}

	info := ToolInfo{Name: name, Path: path, Found: true}

	cmd := exec.CommandContext(ctx, path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return info
	}

	info.Version = extractVersion(out.String())
	return info
}

// extractVersion returns the first version number on the first line that
// has one.
func extractVersion(output string) string {
	for _, line := range strings.Split(output, "\n") {
		if match := toolVersionRegex.FindString(line); match != "" {
			return match
		}
	}
	return ""
}

// FullVersionString returns gojo's version followed by the detected tools.
func FullVersionString(info Info, tools []ToolInfo) string {
	var b strings.Builder
	b.WriteString(info.String())
	if len(tools) > 0 {
		b.WriteString("\n\nTools:")
		for _, t := range tools {
			b.WriteString("\n")
			b.WriteString(t.String())
		}
	}
	return b.String()
}
