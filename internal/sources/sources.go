// Package sources finds the C++ translation units and headers of a project.
package sources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gojo-cpp/gojo/internal/output"
)

// Collect walks root recursively, visiting directory entries in lexical
// order, and returns the files whose name ends in "."+srcExt or "."+hdrExt.
// A symlink is included when it resolves to a regular file. Symlinked
// directories are never descended. Any unreadable directory fails the whole
// call.
func Collect(root, srcExt, hdrExt string) ([]string, error) {
	suffixes := []string{"." + srcExt, "." + hdrExt}

	var files []string
	if err := collect(root, suffixes, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func collect(dir string, suffixes []string, files *[]string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := collect(path, suffixes, files); err != nil {
				return err
			}
			continue
		}

		if !hasSuffix(entry.Name(), suffixes) {
			continue
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				output.Debug("skipping unresolvable symlink", "path", path, "error", err)
				continue
			}
			if !info.Mode().IsRegular() {
				continue
			}
		} else if !entry.Type().IsRegular() {
			continue
		}

		*files = append(*files, path)
	}
	return nil
}

func hasSuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// CollectAll runs Collect over each root in turn and concatenates the
// results. Roots that do not exist are skipped.
func CollectAll(roots []string, srcExt, hdrExt string) ([]string, error) {
	var all []string
	for _, root := range roots {
		if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
			output.Debug("skipping missing source root", "path", root)
			continue
		}

		files, err := Collect(root, srcExt, hdrExt)
		if err != nil {
			return nil, err
		}
		all = append(all, files...)
	}
	return all, nil
}
