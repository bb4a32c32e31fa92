// Package logging defines the pluggable log sink the config store reports
// through. The store never logs to a process-wide global: a Sink is injected
// at construction so tests can substitute a capturing implementation.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Severity classifies a log message.
type Severity int

// Severities in increasing order of concern. Output is plain program output
// routed through the sink so callers can redirect it alongside diagnostics.
const (
	Output Severity = iota
	Info
	Warn
	Error
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case Output:
		return "output"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Sink receives every recoverable parse warning and I/O failure the store
// encounters. Implementations must not panic; the store assumes Put always
// returns.
type Sink interface {
	Put(sev Severity, msg string)
}

// writerSink prints one "[severity] message" line per Put.
type writerSink struct {
	w io.Writer
}

// Writer returns a Sink that writes plain lines to w.
func Writer(w io.Writer) Sink {
	return writerSink{w: w}
}

// Stdout returns the default Sink: plain lines on standard output for all
// severities.
func Stdout() Sink {
	return Writer(os.Stdout)
}

func (s writerSink) Put(sev Severity, msg string) {
	fmt.Fprintf(s.w, "[%s] %s\n", sev, msg)
}

// slogSink adapts a *slog.Logger to the Sink interface.
type slogSink struct {
	l *slog.Logger
}

// Slog returns a Sink backed by l. A nil l uses slog.Default().
// Output and Info map to Info level, Warn to Warn, Error to Error.
func Slog(l *slog.Logger) Sink {
	if l == nil {
		l = slog.Default()
	}
	return slogSink{l: l}
}

func (s slogSink) Put(sev Severity, msg string) {
	switch sev {
	case Warn:
		s.l.Warn(msg)
	case Error:
		s.l.Error(msg)
	default:
		s.l.Info(msg)
	}
}

// Entry is one recorded message in a Capture sink.
type Entry struct {
	Sev Severity
	Msg string
}

// Capture records every message for later inspection. It is meant for tests.
// The zero value is ready to use.
type Capture struct {
	Entries []Entry
}

func (c *Capture) Put(sev Severity, msg string) {
	c.Entries = append(c.Entries, Entry{Sev: sev, Msg: msg})
}

// Messages returns the recorded messages with the given severity, in order.
func (c *Capture) Messages(sev Severity) []string {
	var out []string
	for _, e := range c.Entries {
		if e.Sev == sev {
			out = append(out, e.Msg)
		}
	}
	return out
}
