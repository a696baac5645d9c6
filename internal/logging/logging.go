// Package logging wires log/slog with fields carried on the context.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

type keyType int

const key = keyType(0)

// logCtx holds the fields added to every record logged with the context.
type logCtx struct {
	RequestID string
	Operation string
	Platform  string
	Username  string
	Owner     string
	Repo      string
	Method    string
	Path      string
	Status    int
	Duration  string
}

// ContextHandler wraps a slog.Handler and adds the context fields and the
// caller's source position to each record.
type ContextHandler struct {
	next slog.Handler
}

func NewContextHandler(next slog.Handler) *ContextHandler {
	return &ContextHandler{next: next}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, rec slog.Record) error {
	if c, ok := ctx.Value(key).(logCtx); ok {
		addString(&rec, "request_id", c.RequestID)
		addString(&rec, "operation", c.Operation)
		addString(&rec, "platform", c.Platform)
		addString(&rec, "username", c.Username)
		addString(&rec, "owner", c.Owner)
		addString(&rec, "repo", c.Repo)
		addString(&rec, "method", c.Method)
		addString(&rec, "path", c.Path)
		if c.Status != 0 {
			rec.Add("status", c.Status)
		}
		addString(&rec, "duration", c.Duration)
	}

	if rec.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{rec.PC})
		f, _ := fs.Next()
		rec.Add("source", fmt.Sprintf("%s:%d", filepath.Base(f.File), f.Line))
	}

	return h.next.Handle(ctx, rec)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{next: h.next.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{next: h.next.WithGroup(name)}
}

func addString(rec *slog.Record, name, value string) {
	if value != "" {
		rec.Add(name, value)
	}
}

// ParseLevel maps a config level name to a slog.Level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a JSON logger writing to output, which is "stdout", "stderr",
// "discard" or a file path. The returned closer releases the file, if any.
func New(level, output string) (*slog.Logger, io.Closer, error) {
	w, closer, err := openOutput(output)
	if err != nil {
		return nil, nil, err
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(NewContextHandler(handler)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch output {
	case "", "stdout":
		return os.Stdout, nopCloser{}, nil
	case "stderr":
		return os.Stderr, nopCloser{}, nil
	case "discard":
		return io.Discard, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}
