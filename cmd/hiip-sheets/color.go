package main

import (
	"fmt"
	"io"
)

// ANSI palette for diagnostics, matching the surrounding pipeline CLI
const (
	ansiReset    = "\x1b[0m"
	ansiBlack    = "\x1b[30m"
	ansiWhite    = "\x1b[37m"
	ansiBgYellow = "\x1b[43m"
	ansiBgRed    = "\x1b[41m"
)

// colorSink writes diagnostics to w, warnings on a yellow background
// and errors on a red one. Colors can be switched off for logs and
// non-terminal output. Implements domain.WarningSink.
type colorSink struct {
	w     io.Writer
	color bool
}

func newColorSink(w io.Writer, color bool) *colorSink {
	return &colorSink{w: w, color: color}
}

// Warnf reports a non-fatal diagnostic; the run proceeds
func (s *colorSink) Warnf(format string, args ...interface{}) {
	s.emit(ansiBgYellow+ansiBlack, format, args...)
}

// Errf reports a fatal diagnostic. Exit policy stays with the caller.
func (s *colorSink) Errf(format string, args ...interface{}) {
	s.emit(ansiBgRed+ansiWhite, format, args...)
}

func (s *colorSink) emit(prefix, format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	if s.color {
		fmt.Fprintf(s.w, "%s%s%s\n", prefix, line, ansiReset)
		return
	}
	fmt.Fprintln(s.w, line)
}
