// Package logx is the CLI's small structured logger: plain timestamped
// lines, coloured when the output stream is a terminal, with count/duration
// values rendered in human-readable form.
package logx

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

const (
	colorReset = "\x1b[0m"
	colorDim   = "\x1b[2m"
	colorCyan  = "\x1b[36m"
	colorRed   = "\x1b[31m"
)

// Logger writes timestamped lines to an output stream, colouring the level
// prefix when the stream is attached to a terminal.
type Logger struct {
	out      io.Writer
	colorize bool
}

// New returns a Logger writing to w. Colour is enabled only when w is an
// *os.File attached to a terminal.
func New(w io.Writer) *Logger {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Logger{out: w, colorize: colorize}
}

// Default returns a Logger writing to stderr.
func Default() *Logger {
	return New(os.Stderr)
}

func (l *Logger) line(color, level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format("15:04:05")
	if l.colorize {
		fmt.Fprintf(l.out, "%s%s%s %s[%s]%s %s\n", colorDim, ts, colorReset, color, level, colorReset, msg)
		return
	}
	fmt.Fprintf(l.out, "%s [%s] %s\n", ts, level, msg)
}

// Info logs a plain progress line.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(colorCyan, "info", format, args...)
}

// Error logs a failure.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(colorRed, "error", format, args...)
}

// Duration renders d the way a generation-timing log line should: "1.2s",
// "340ms", and so on.
func Duration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

// Count renders n with thousands separators, for population/row counts in
// log lines.
func Count(n int) string {
	return humanize.Comma(int64(n))
}
