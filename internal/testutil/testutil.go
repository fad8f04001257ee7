// Package testutil provides filesystem helpers for gojo tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file with the given content in the specified directory.
// name may use forward slashes; missing parents are created.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteFiles creates each path under root with a one-line comment as content.
func WriteFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		WriteFile(t, root, p, "// "+p+"\n")
	}
}

// RelPaths returns files relative to root, with forward slashes.
func RelPaths(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		if err != nil {
			t.Fatalf("failed to relativize %s: %v", f, err)
		}
		out = append(out, filepath.ToSlash(r))
	}
	return out
}
