// Package project persists per-project settings in the .gojo sidecar file.
package project

import (
	"path/filepath"
	"runtime"
)

const (
	// FileName is the sidecar file written at the project root.
	FileName = ".gojo"

	// DefaultBuildDir is the build directory relative to the project root.
	DefaultBuildDir = "build"

	// DefaultName is used when no sidecar is available.
	DefaultName = "project"
)

// Config is the persisted per-project record.
type Config struct {
	// ProjectRoot is set once by init and trusted afterwards.
	ProjectRoot string `json:"projectRoot" yaml:"project_root"`

	// BuildDir is the absolute build output directory.
	BuildDir string `json:"buildDir" yaml:"build_dir"`

	// Name is the project name and the executable run by `gojo run`.
	Name string `json:"name" yaml:"name"`

	Std    Std    `json:"std" yaml:"std"`
	SrcExt SrcExt `json:"src" yaml:"src"`
	HdrExt HdrExt `json:"hdr" yaml:"hdr"`

	FmtStyle FmtStyle `json:"fmtStyle" yaml:"fmt_style"`
	// FmtArgs are passed through to clang-format unvalidated.
	FmtArgs string `json:"fmtArgs" yaml:"fmt_args"`

	ClangTidy    bool   `json:"clangTidy" yaml:"clang-tidy"`
	Cpplint      bool   `json:"cpplint" yaml:"cpplint"`
	CpplintArgs  string `json:"cpplintArgs" yaml:"cpplint_args"`
	Cppcheck     bool   `json:"cppcheck" yaml:"cppcheck"`
	CppcheckArgs string `json:"cppcheckArgs" yaml:"cppcheck_args"`

	Quiet bool `json:"quiet" yaml:"quiet"`
}

// Default returns the configuration used when dir has no readable sidecar.
func Default(dir string) *Config {
	return &Config{
		ProjectRoot: dir,
		BuildDir:    filepath.Join(dir, DefaultBuildDir),
		Name:        DefaultName,
		Std:         DefaultStd,
		SrcExt:      DefaultSrcExt(),
		HdrExt:      DefaultHdrExt(),
		FmtStyle:    DefaultFmtStyle,
	}
}

// Path returns the sidecar location for a project root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// DefaultSrcExt returns the platform's preferred source suffix.
func DefaultSrcExt() SrcExt {
	if runtime.GOOS == "windows" {
		return SrcCPP
	}
	return SrcCC
}

// DefaultHdrExt returns the platform's preferred header suffix.
func DefaultHdrExt() HdrExt {
	if runtime.GOOS == "windows" {
		return HdrHPP
	}
	return HdrH
}
