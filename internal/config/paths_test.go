package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	assert.NoError(t, err, "should get home directory")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no tilde",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path without tilde",
			input:    "relative/path",
			expected: "relative/path",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "tilde with slash",
			input:    "~/.gojo/config.yaml",
			expected: filepath.Join(homeDir, ".gojo", "config.yaml"),
		},
		{
			name:     "tilde with path",
			input:    "~/Documents/file.txt",
			expected: filepath.Join(homeDir, "Documents", "file.txt"),
		},
		{
			name:     "tilde username pattern (not expanded)",
			input:    "~username/file",
			expected: "~username/file",
		},
		{
			name:     "tilde in middle (not expanded)",
			input:    "/path/~/file",
			expected: "/path/~/file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	paths, err := DefaultPaths()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".gojo"), paths.HomeDir)
	assert.Equal(t, filepath.Join(homeDir, ".gojo", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile(t *testing.T) {
	t.Setenv("GOJO_CONFIG", "/etc/gojo.yaml")
	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/etc/gojo.yaml", path)

	t.Setenv("GOJO_CONFIG", "")
	paths, err := DefaultPaths()
	require.NoError(t, err)
	path, err = GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, paths.ConfigFile, path)
}
