package errors

import "go.uber.org/zap"

// ZapHandler is an ErrorHandler that forwards errors to a zap logger.
// Useful when the host application already routes its logs through zap.
type ZapHandler struct {
	Logger *zap.Logger
}

// NewZapHandler wraps a zap logger in an ErrorHandler.
// A nil logger falls back to zap.NewNop.
func NewZapHandler(logger *zap.Logger) *ZapHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapHandler{Logger: logger}
}

// HandleStructural logs a StructuralError at error level.
func (h *ZapHandler) HandleStructural(err *StructuralError) {
	if err == nil {
		return
	}
	h.Logger.Error("structural invariant violated",
		zap.String("op", err.Op),
		zap.String("message", err.Message),
		zap.String("widget", err.Widget),
		zap.Time("timestamp", err.Timestamp),
	)
}

// HandleGuardViolation logs a GuardViolationError at error level.
func (h *ZapHandler) HandleGuardViolation(err *GuardViolationError) {
	if err == nil {
		return
	}
	h.Logger.Error("mutation guard violation",
		zap.String("op", err.Op),
		zap.String("message", err.Message),
		zap.String("node", err.Node),
		zap.Time("timestamp", err.Timestamp),
	)
}

// HandlePanic logs a PanicError at error level.
func (h *ZapHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.Logger.Error("recovered panic",
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
		zap.Time("timestamp", err.Timestamp),
	)
}
