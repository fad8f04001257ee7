package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gojo-cpp/gojo/internal/output"
)

// Scaffold renders every file from Layout into root and returns the created
// files in write order. Test files are skipped unless withTests is set.
// Nothing is rolled back when a write fails part way.
func Scaffold(root string, data Data, withTests bool) ([]File, error) {
	var created []File

	for _, f := range Layout(data) {
		if f.Test && !withTests {
			continue
		}

		content, err := Render(f.Kind, data)
		if err != nil {
			return created, err
		}

		target := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return created, fmt.Errorf("creating directory for %s: %w", f.Path, err)
		}
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return created, fmt.Errorf("writing %s: %w", f.Path, err)
		}

		output.Debug("wrote file", "path", f.Path)
		created = append(created, f)
	}

	return created, nil
}
