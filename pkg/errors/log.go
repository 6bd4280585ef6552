package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
}

// HandleStructural logs a StructuralError to stderr.
func (h *LogHandler) HandleStructural(err *StructuralError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[lattice structural] %s: %s\n", err.Op, err.Message)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandleGuardViolation logs a GuardViolationError to stderr.
func (h *LogHandler) HandleGuardViolation(err *GuardViolationError) {
	if err == nil {
		return
	}
	if err.Node != "" {
		fmt.Fprintf(os.Stderr, "[lattice guard] %s node=%s: %s\n", err.Op, err.Node, err.Message)
	} else {
		fmt.Fprintf(os.Stderr, "[lattice guard] %s: %s\n", err.Op, err.Message)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// HandlePanic logs a PanicError to stderr.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[lattice panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[lattice panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", err.StackTrace)
	}
}
