package errors

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LogHandler is an ErrorHandler that writes structured log lines.
type LogHandler struct {
	// Verbose enables stack traces in the output.
	Verbose bool

	logger zerolog.Logger
}

// NewLogHandler returns a LogHandler writing to w, or stderr when w is nil.
func NewLogHandler(w io.Writer, verbose bool) *LogHandler {
	if w == nil {
		w = os.Stderr
	}
	return &LogHandler{
		Verbose: verbose,
		logger:  zerolog.New(w).With().Timestamp().Str("component", "neoui").Logger(),
	}
}

// HandleError logs a NeoError.
func (h *LogHandler) HandleError(err *NeoError) {
	if err == nil {
		return
	}
	ev := h.logger.Error().
		Str("op", err.Op).
		Str("kind", err.Kind.String()).
		Err(err.Err)
	if err.Path != "" {
		ev = ev.Str("path", err.Path)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("neoui error")
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger.Error().Interface("value", err.Value)
	if err.Op != "" {
		ev = ev.Str("op", err.Op)
	}
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("neoui panic")
}
