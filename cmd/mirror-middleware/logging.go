package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/casamatriz/mirror-middleware/internal/config"
)

var levelNames = map[string]slog.Level{
	"":        slog.LevelInfo,
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// levelFromEnv reads MIRROR_LOG_LEVEL, then LOG_LEVEL. Unknown values log a
// warning and fall back to info.
func levelFromEnv() slog.Level {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	if err := v.BindEnv("log_level"); err != nil {
		return slog.LevelInfo
	}

	name := v.GetString("log_level")
	if name == "" {
		name = os.Getenv("LOG_LEVEL")
	}

	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		slog.Warn("Unknown log level, using info", "value", name)
		return slog.LevelInfo
	}
	return level
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(spanHandler{slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})})
}

// spanHandler stamps records logged under a recording span with its ids
type spanHandler struct {
	slog.Handler
}

func (h spanHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(slog.String("trace_id", sc.TraceID().String()), slog.String("span_id", sc.SpanID().String()))
	}
	return h.Handler.Handle(ctx, r)
}

func (h spanHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return spanHandler{h.Handler.WithAttrs(attrs)}
}

func (h spanHandler) WithGroup(name string) slog.Handler {
	return spanHandler{h.Handler.WithGroup(name)}
}
