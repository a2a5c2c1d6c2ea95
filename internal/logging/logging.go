// Package logging builds the slog logger used by the dsakit commands: a terse
// console handler plus an optional rotating file that records everything.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the console verbosity and the log file.
type Options struct {
	// Debug enables debug records on the console.
	Debug bool
	// File, when set, receives every record including debug ones.
	File string
}

// Logger is a slog.Logger that owns its log file.
type Logger struct {
	*slog.Logger
	file io.Closer
}

// New returns a logger writing to console and, if opts.File is set, to a
// lumberjack-rotated file.
func New(console io.Writer, opts Options) (*Logger, error) {
	handlers := []slog.Handler{&consoleHandler{w: console, debug: opts.Debug}}

	l := &Logger{}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotator := newRotator(opts.File)
		l.file = rotator
		handlers = append(handlers, slog.NewTextHandler(rotator, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
				}
				return a
			},
		}))
	}
	l.Logger = slog.New(&multiHandler{handlers: handlers})

	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: slog.New(&multiHandler{})}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// newRotator sizes the rotation from DSAKIT_LOG_MAX_* variables.
func newRotator(path string) *lumberjack.Logger {
	r := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30,
	}
	if v, err := strconv.Atoi(os.Getenv("DSAKIT_LOG_MAX_SIZE")); err == nil && v > 0 {
		r.MaxSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("DSAKIT_LOG_MAX_BACKUPS")); err == nil && v >= 0 {
		r.MaxBackups = v
	}
	if v, err := strconv.Atoi(os.Getenv("DSAKIT_LOG_MAX_AGE")); err == nil && v > 0 {
		r.MaxAge = v
	}

	return r
}

// consoleHandler prints "message key=value ..." without time or level, except
// for a "warning: " or "error: " prefix.
type consoleHandler struct {
	w     io.Writer
	debug bool
	attrs []slog.Attr
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level > slog.LevelDebug || h.debug
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	switch {
	case r.Level >= slog.LevelError:
		b.WriteString("error: ")
	case r.Level >= slog.LevelWarn:
		b.WriteString("warning: ")
	}
	b.WriteString(r.Message)
	write := func(a slog.Attr) bool {
		if !a.Equal(slog.Attr{}) {
			fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Resolve())
		}
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	b.WriteByte('\n')

	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{w: h.w, debug: h.debug, attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)}
}

// WithGroup is a no-op; the console output is flat.
func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans records out to every enabled handler.
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		out[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: out}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		out[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: out}
}
