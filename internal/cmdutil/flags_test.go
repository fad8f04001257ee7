package cmdutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gojo-cpp/gojo/internal/args"
	oerrors "github.com/gojo-cpp/gojo/internal/errors"
)

func TestHelpRequested(t *testing.T) {
	assert.True(t, HelpRequested([]string{"--help"}))
	assert.True(t, HelpRequested([]string{"demo", "--std", "17", "--help"}))
	assert.False(t, HelpRequested([]string{"-h", "hpp"}))
	assert.False(t, HelpRequested(nil))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		raw     []string
		wantErr string
	}{
		{"empty", nil, ""},
		{"accepted", []string{"--release", "x"}, ""},
		{"help always accepted", []string{"--help"}, ""},
		{"unknown flag", []string{"--bogus"}, "invalid option '--bogus'"},
		{"first offender reported", []string{"--zzz", "1", "--aaa", "2"}, "invalid option '--zzz'"},
		{"stray positional", []string{"stray"}, "invalid option 'stray'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlags("build", tt.raw, "--release", "-r")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "gojo help build")
			assert.Equal(t, oerrors.ExitUsageError, oerrors.ExitCodeFromError(err))
		})
	}
}

func TestStringFlag(t *testing.T) {
	f := args.Parse([]string{"-s", "cpp", "--std"})

	v, ok, err := StringFlag("init", f, "--src-extension", "-s")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cpp", v)

	_, ok, err = StringFlag("init", f, "--hdr-extension", "-h")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = StringFlag("init", f, "--std")
	assert.True(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing value for --std flag")
	assert.ErrorIs(t, err, oerrors.ErrUsage)
}
