package cmdutil

import (
	"time"

	"github.com/gojo-cpp/gojo/internal/output"
)

// Status prints status lines unless quiet.
type Status struct {
	Quiet bool
}

// Println prints one line.
func (s Status) Println(line string) {
	if s.Quiet {
		return
	}
	output.Println(line)
}

// Step prints a progress header such as "Running cppcheck...".
func (s Status) Step(msg string) {
	s.Println(output.StyleStep.Render(msg))
}

// Done prints "<msg> (Ns)" in the success or failure style.
func (s Status) Done(msg string, ok bool, elapsed time.Duration) {
	if ok {
		s.Println(output.FormatSuccess(msg, elapsed))
		return
	}
	s.Println(output.FormatFailure(msg, elapsed))
}

// Timed runs fn and returns its error together with the elapsed time.
func Timed(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}
