package errors

import (
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes structured records through
// zerolog. The zero value logs to stderr.
type LogHandler struct {
	// Logger receives the records. A zero Logger falls back to stderr.
	Logger *zerolog.Logger
	// Verbose attaches stack traces to records.
	Verbose bool
}

var stderrLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return &stderrLogger
}

// HandleError logs a HostError.
func (h *LogHandler) HandleError(err *HostError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Err(err.Err)
	if err.Component != "" {
		ev = ev.Str("component_id", err.Component)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("domhost error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("domhost panic")
}
