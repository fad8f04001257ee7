package templates

import (
	"bytes"
	"fmt"
)

// Render returns the text for one generated file. It has no side effects and
// returns byte-identical output for identical data.
func Render(kind Kind, data Data) (string, error) {
	tmpl := parsed.Lookup(string(kind) + ".tmpl")
	if tmpl == nil {
		return "", fmt.Errorf("unknown template: %s", kind)
	}

	if data.CMakeVersion == "" {
		data.CMakeVersion = DefaultCMakeVersion
	}
	if data.BuildDirName == "" {
		data.BuildDirName = "build"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", kind, err)
	}
	return buf.String(), nil
}
