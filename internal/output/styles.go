package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan marks identifiable nouns: project names, build modes, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorMagenta marks progress headers ("Compiling", "Running cppcheck...").
	ColorMagenta = lipgloss.Color("13")

	// ColorGreen marks success lines.
	ColorGreen = lipgloss.Color("10")

	// ColorRed marks failures and the error prefix.
	ColorRed = lipgloss.Color("9")

	// ColorDimGray is used for elapsed times and other chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)

	// StyleStep styles progress headers.
	StyleStep = lipgloss.NewStyle().Foreground(ColorMagenta)

	// StyleAction styles bold action verbs.
	StyleAction = lipgloss.NewStyle().Foreground(ColorMagenta).Bold(true)

	// StyleSuccess styles completion lines.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)

	// StyleFailure styles failed steps and the error prefix.
	StyleFailure = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleBold styles headings such as the file tree root.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// FormatElapsed renders a duration the way status lines show it: "(3s)".
// Sub-second durations keep millisecond precision.
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("(%dms)", d.Milliseconds())
	}
	return fmt.Sprintf("(%ds)", int(d.Seconds()))
}

// FormatSuccess renders "<msg> (Ns)" in the success style.
func FormatSuccess(msg string, elapsed time.Duration) string {
	return StyleSuccess.Render(msg) + " " + StyleDim.Render(FormatElapsed(elapsed))
}

// FormatFailure renders "<msg> (Ns)" in the failure style.
func FormatFailure(msg string, elapsed time.Duration) string {
	return StyleFailure.Render(msg) + " " + StyleDim.Render(FormatElapsed(elapsed))
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreen).Render("✔")
	return check + " " + msg
}

// FormatCompiling renders "Compiling <name> in <mode> mode".
func FormatCompiling(name, mode string) string {
	return StyleAction.Render("Compiling") + " " + name + " " +
		StyleAction.Render("in") + " " + StyleNoun.Render(mode) + " " +
		StyleAction.Render("mode")
}

// FormatError renders the error prefix used by main for fatal errors.
func FormatError(msg string) string {
	return StyleFailure.Render("error:") + " " + msg
}
