package project

import (
	"fmt"
	"strings"

	oerrors "github.com/gojo-cpp/gojo/internal/errors"
)

// Std is a C++ language standard token.
type Std string

// Supported standards.
const (
	Std11 Std = "11"
	Std14 Std = "14"
	Std17 Std = "17"
	Std20 Std = "20"
	Std23 Std = "23"

	DefaultStd = Std20
)

// SrcExt is a C++ source file suffix without the dot.
type SrcExt string

// Supported source suffixes.
const (
	SrcCC   SrcExt = "cc"
	SrcCPP  SrcExt = "cpp"
	SrcCXX  SrcExt = "cxx"
	SrcCPlu SrcExt = "c++"
)

// HdrExt is a C++ header file suffix without the dot.
type HdrExt string

// Supported header suffixes.
const (
	HdrH    HdrExt = "h"
	HdrHPP  HdrExt = "hpp"
	HdrHXX  HdrExt = "hxx"
	HdrHPlu HdrExt = "h++"
)

// FmtStyle is a clang-format style name.
type FmtStyle string

// Supported styles. StyleFile reads .clang-format from the project root.
const (
	StyleLLVM      FmtStyle = "llvm"
	StyleGoogle    FmtStyle = "google"
	StyleChromium  FmtStyle = "chromium"
	StyleMozilla   FmtStyle = "mozilla"
	StyleWebKit    FmtStyle = "webkit"
	StyleMicrosoft FmtStyle = "microsoft"
	StyleGNU       FmtStyle = "gnu"
	StyleFile      FmtStyle = "file"

	DefaultFmtStyle = StyleGoogle
)

// ValidStds returns every accepted --std value.
func ValidStds() []string {
	return []string{string(Std11), string(Std14), string(Std17), string(Std20), string(Std23)}
}

// ValidSrcExts returns every accepted source suffix.
func ValidSrcExts() []string {
	return []string{string(SrcCC), string(SrcCPP), string(SrcCXX), string(SrcCPlu)}
}

// ValidHdrExts returns every accepted header suffix.
func ValidHdrExts() []string {
	return []string{string(HdrH), string(HdrHPP), string(HdrHXX), string(HdrHPlu)}
}

// ValidFmtStyles returns the named styles accepted by `fmt --style`.
// StyleFile is selected through --file and is not listed.
func ValidFmtStyles() []string {
	return []string{
		string(StyleLLVM),
		string(StyleGoogle),
		string(StyleChromium),
		string(StyleMozilla),
		string(StyleWebKit),
		string(StyleMicrosoft),
		string(StyleGNU),
	}
}

// ParseStd validates a --std value.
func ParseStd(command, s string) (Std, error) {
	if err := oneOf(command, "--std", s, ValidStds()); err != nil {
		return "", err
	}
	return Std(s), nil
}

// ParseSrcExt validates a --src-extension value.
func ParseSrcExt(command, s string) (SrcExt, error) {
	if err := oneOf(command, "--src-extension", s, ValidSrcExts()); err != nil {
		return "", err
	}
	return SrcExt(s), nil
}

// ParseHdrExt validates a --hdr-extension value.
func ParseHdrExt(command, s string) (HdrExt, error) {
	if err := oneOf(command, "--hdr-extension", s, ValidHdrExts()); err != nil {
		return "", err
	}
	return HdrExt(s), nil
}

// ParseFmtStyle validates a --style value.
func ParseFmtStyle(command, s string) (FmtStyle, error) {
	for _, v := range ValidFmtStyles() {
		if v == s {
			return FmtStyle(s), nil
		}
	}
	return "", oerrors.NewUsageError(command, fmt.Sprintf("style not found: %s (valid: %s)",
		s, strings.Join(ValidFmtStyles(), ", ")))
}

func oneOf(command, flag, s string, valid []string) error {
	for _, v := range valid {
		if v == s {
			return nil
		}
	}
	return oerrors.NewUsageError(command, fmt.Sprintf("unrecognized value %q for %s flag (valid: %s)",
		s, flag, strings.Join(valid, ", ")))
}
