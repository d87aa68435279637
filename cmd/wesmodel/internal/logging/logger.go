// Package logging provides the CLI's slog handler.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
)

// Logger wraps slog.Logger with CLI friendly constructors.
type Logger struct {
	*slog.Logger
}

// simpleHandler formats records as "[LEVEL] message key=value, key=value".
type simpleHandler struct {
	level  slog.Leveler
	attrs  []slog.Attr
	group  string
	mu     *sync.Mutex
	output io.Writer
}

func (h *simpleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *simpleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	switch {
	case r.Level >= slog.LevelError:
		b.WriteString("[ERROR] ")
	case r.Level >= slog.LevelWarn:
		b.WriteString("[WARN] ")
	case r.Level >= slog.LevelInfo:
		b.WriteString("[INFO] ")
	default:
		b.WriteString("[DEBUG] ")
	}

	b.WriteString(r.Message)

	first := true
	writeAttr := func(a slog.Attr) {
		if a.Equal(slog.Attr{}) {
			return
		}
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(a.Key)
		b.WriteString("=")
		b.WriteString(a.Value.Resolve().String())
	}

	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		if !a.Equal(slog.Attr{}) {
			writeAttr(h.qualify(a))
		}
		return true
	})

	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.output, b.String())
	return err
}

func (h *simpleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = slices.Clip(h.attrs)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, h.qualify(a))
	}
	return &clone
}

// qualify prefixes the attribute key with the open group.
func (h *simpleHandler) qualify(a slog.Attr) slog.Attr {
	if h.group != "" {
		a.Key = h.group + "." + a.Key
	}
	return a
}

func (h *simpleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

// NewLogger creates a new logger with the specified level and output.
func NewLogger(level slog.Leveler, output io.Writer) *Logger {
	if output == nil {
		output = os.Stderr
	}

	handler := &simpleHandler{
		level:  level,
		mu:     &sync.Mutex{},
		output: output,
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewDefault creates a logger with WARN level, the CLI's normal verbosity.
func NewDefault(output io.Writer) *Logger {
	return NewLogger(slog.LevelWarn, output)
}

// NewQuiet creates a logger with ERROR level.
func NewQuiet(output io.Writer) *Logger {
	return NewLogger(slog.LevelError, output)
}

// NewVerbose creates a logger with DEBUG level.
func NewVerbose(output io.Writer) *Logger {
	return NewLogger(slog.LevelDebug, output)
}

// ForFlags picks the logger matching the --verbose and --quiet flags.
// Verbose wins when both are set.
func ForFlags(verbose, quiet bool, output io.Writer) *Logger {
	switch {
	case verbose:
		return NewVerbose(output)
	case quiet:
		return NewQuiet(output)
	default:
		return NewDefault(output)
	}
}
