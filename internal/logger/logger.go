package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// SlogConfig описывает параметры логгера
type SlogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json" или "text"
	// File — путь к файловому журналу. Пишется только вне debug-режима,
	// уровень INFO и выше, с указанием файла и строки источника.
	File  string
	Debug bool
}

// NewSlog создаёт и настраивает slog.Logger.
// Возвращаемая функция закрывает файловый журнал, если он был открыт.
func NewSlog(cfg SlogConfig) (*slog.Logger, func() error, error) {
	return newSlog(cfg, os.Stdout)
}

func newSlog(cfg SlogConfig, stdout io.Writer) (*slog.Logger, func() error, error) {
	lvl := parseLevel(cfg.Level)

	var console slog.Handler
	if cfg.Format == "text" {
		console = slog.NewTextHandler(stdout, &slog.HandlerOptions{Level: lvl})
	} else {
		console = slog.NewJSONHandler(stdout, &slog.HandlerOptions{
			Level: lvl,
			// timestamp в человекочитаемом виде
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey && len(groups) == 0 {
					a.Value = slog.StringValue(a.Value.Time().Format(time.RFC3339))
				}
				return a
			},
		})
	}

	if cfg.Debug || cfg.File == "" {
		return slog.New(console), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
	}
	file := NewFileHandler(f)

	return slog.New(fanout{console, file}), f.Close, nil
}

// NewFileHandler возвращает обработчик файлового журнала:
// INFO и выше, текстовый формат, с файлом и строкой источника
func NewFileHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	})
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout рассылает запись во все обработчики, принимающие её уровень
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, lvl slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, lvl) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
