// Package log provides the context-aware diagnostic logger for bosk.
//
// The logger writes to stderr and is carried in the context so commands
// and the lifecycle controller never touch global logging state. Primary
// data output (paths, listings) goes through internal/output instead.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/boskcli/bosk/internal/ui"
)

type ctxKey struct{}

// Logger writes leveled diagnostic output.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a logger. verbose echoes external commands and debug
// key-value lines; quiet suppresses everything except warnings.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard, quiet: true}
}

// Infof writes a progress line unless quiet.
func (l *Logger) Infof(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Successf writes a styled success line unless quiet.
func (l *Logger) Successf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, "%s %s\n", ui.SuccessMark(), fmt.Sprintf(format, args...))
}

// Warnf writes a styled warning line. Warnings show even in quiet mode
// since they signal degraded behavior the user should know about.
func (l *Logger) Warnf(format string, args ...any) {
	fmt.Fprintf(l.out, "%s %s\n", ui.WarnMark(), fmt.Sprintf(format, args...))
}

// Debug writes a key-value debug line when verbose is enabled.
func (l *Logger) Debug(msg string, kv ...any) {
	if !l.verbose {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// Command logs an external command execution when verbose is enabled.
func (l *Logger) Command(name string, args ...string) {
	if !l.verbose {
		return
	}
	fmt.Fprintf(l.out, "$ %s %s\n", name, strings.Join(args, " "))
}

// Verbose reports whether verbose mode is enabled.
func (l *Logger) Verbose() bool { return l.verbose }

// Quiet reports whether quiet mode is enabled.
func (l *Logger) Quiet() bool { return l.quiet }

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer { return l.out }
