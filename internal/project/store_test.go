package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/gojo-cpp/gojo/internal/errors"
)

func sampleConfig(root string) *Config {
	return &Config{
		ProjectRoot:  root,
		BuildDir:     filepath.Join(root, "out"),
		Name:         "demo",
		Std:          Std17,
		SrcExt:       SrcCPP,
		HdrExt:       HdrHPP,
		FmtStyle:     StyleLLVM,
		FmtArgs:      "--verbose",
		ClangTidy:    true,
		Cpplint:      true,
		CpplintArgs:  "--filter=-legal/copyright",
		Cppcheck:     false,
		CppcheckArgs: "--inline-suppr",
		Quiet:        true,
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	root := t.TempDir()
	want := sampleConfig(root)

	require.NoError(t, Write(want))
	got, err := Read(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMarshal_FixedOrder(t *testing.T) {
	data, err := Marshal(sampleConfig("/p"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, fieldCount)
	for i, key := range Keys() {
		assert.True(t, strings.HasPrefix(lines[i], key+": "), "line %d = %q", i+1, lines[i])
	}
	assert.Equal(t, "clang-tidy: true", lines[8])
	assert.Equal(t, "cppcheck: false", lines[11])
	assert.Equal(t, "quiet: true", lines[13])
}

func TestMarshal_RejectsLineBreaks(t *testing.T) {
	cfg := sampleConfig("/p")
	cfg.FmtArgs = "a\nb"

	_, err := Marshal(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestMarshal_RejectsSurroundingWhitespace(t *testing.T) {
	for _, v := range []string{" --sort-includes", "--sort-includes ", "\t-v"} {
		cfg := sampleConfig("/p")
		cfg.FmtArgs = v

		_, err := Marshal(cfg)
		require.Error(t, err, "value %q", v)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
		assert.Contains(t, err.Error(), "fmt_args")
	}

	cfg := sampleConfig("/p")
	cfg.FmtArgs = "--sort-includes  --verbose"
	_, err := Marshal(cfg)
	require.NoError(t, err, "inner whitespace is kept")
}

func TestUnmarshal_ColonsInValuesSurvive(t *testing.T) {
	cfg := sampleConfig(`C:\work\demo`)
	cfg.CppcheckArgs = "--suppress=*:third_party/*"

	data, err := Marshal(cfg)
	require.NoError(t, err)
	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestUnmarshal_AcceptsFileWithoutTrailingNewline(t *testing.T) {
	data, err := Marshal(sampleConfig("/p"))
	require.NoError(t, err)

	got, err := Unmarshal([]byte(strings.TrimSuffix(string(data), "\n")))
	require.NoError(t, err)
	assert.Equal(t, "demo", got.Name)
}

func TestUnmarshal_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"too few lines", "project_root: /p\nbuild_dir: /p/build\n"},
		{"empty", ""},
		{"missing separator", strings.Repeat("key value\n", fieldCount)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(t.TempDir())
	assert.ErrorIs(t, err, ErrNoConfig)
}

func TestLoad_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(dir), cfg)
	assert.Equal(t, filepath.Join(dir, "build"), cfg.BuildDir)
	assert.Equal(t, StyleGoogle, cfg.FmtStyle)
	assert.False(t, cfg.ClangTidy || cfg.Cppcheck || cfg.Cpplint)
}

func TestLoad_MalformedIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("name: x\n"), 0o644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestWrite_UnwritableRoot(t *testing.T) {
	cfg := sampleConfig(filepath.Join(t.TempDir(), "missing", "dir"))
	assert.Error(t, Write(cfg))
}
