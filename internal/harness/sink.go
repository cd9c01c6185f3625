package harness

import "fmt"

// Sink is an append-only, ordered buffer of output lines.
//
// Lessons write to a Sink instead of the console so their output can be
// captured and asserted. A Sink belongs to exactly one lesson invocation.
type Sink struct {
	lines []string
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{lines: []string{}}
}

// Write appends a line. It never fails.
func (s *Sink) Write(line string) {
	s.lines = append(s.lines, line)
}

// Writef formats according to a format specifier and appends the result.
func (s *Sink) Writef(format string, args ...any) {
	s.Write(fmt.Sprintf(format, args...))
}

// Print appends the default formatting of v, like fmt.Sprint.
func (s *Sink) Print(v any) {
	s.Write(fmt.Sprint(v))
}

// Len returns the number of lines written so far.
func (s *Sink) Len() int {
	return len(s.lines)
}

// Snapshot returns a copy of the lines written so far.
// Later writes never affect a snapshot already taken.
func (s *Sink) Snapshot() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}
