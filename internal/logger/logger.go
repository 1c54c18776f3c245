package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/sparta-village/internal/uuid"
)

type ctxKey string

const sessionIDKey ctxKey = "sessionID"

// AttrKeySessionID tags every line logged during one play session
const AttrKeySessionID = "session_id"

// New builds a logger writing to w
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	log := slog.New(handler)
	if cfg.ServiceName != "" {
		log = log.With(slog.String("service", cfg.ServiceName))
	}
	return log
}

// Init builds a logger and installs it as the slog default
func Init(cfg Config, w io.Writer) *slog.Logger {
	log := New(cfg, w)
	slog.SetDefault(log)
	return log
}

// NewSession returns a context carrying a fresh session id from gen
func NewSession(ctx context.Context, gen uuid.Generator) (context.Context, string) {
	id := gen.New()
	return WithSessionID(ctx, id), id
}

// WithSessionID returns a new context containing the session ID
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// SessionIDFromContext extracts the session ID from the context, if present
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// FromContext returns the default logger with the session_id attribute when
// present
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := SessionIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeySessionID, id)
	}
	return slog.Default()
}
