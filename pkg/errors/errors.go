// Package errors provides structured error handling for the lattice widget
// framework.
//
// The framework has exactly two error tiers, and both are fatal: structural
// assertions (a violated widget-tree invariant, always a programming bug in
// caller code) and mutation guard violations (raw document mutation where a
// widget API was required). Detected violations are reported to the global
// handler and then surfaced to the caller as a panic carrying the structured
// error value. There is no logged-and-continue path.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindStructural indicates a violated widget-tree invariant.
	KindStructural
	// KindGuard indicates a document mutation rejected by the mutation guard.
	KindGuard
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindGuard:
		return "guard"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// StructuralError represents a violated widget-tree invariant.
type StructuralError struct {
	// Op is the operation that detected the violation (e.g. "widget.Show").
	Op string
	// Message describes the violated invariant.
	Message string
	// Widget identifies the widget involved, when known.
	Widget string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
	// Timestamp is when the violation was detected.
	Timestamp time.Time
}

func (e *StructuralError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [structural] widget=%s: %s", e.Op, e.Widget, e.Message)
	}
	return fmt.Sprintf("%s [structural]: %s", e.Op, e.Message)
}

// GuardViolationError represents a raw document mutation that would corrupt
// the widget tree.
type GuardViolationError struct {
	// Op is the rejected primitive (e.g. "dom.RemoveChild").
	Op string
	// Message describes why the mutation was rejected.
	Message string
	// Node describes the offending node (tag and classes), when known.
	Node string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
	// Timestamp is when the violation was detected.
	Timestamp time.Time
}

func (e *GuardViolationError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("%s [guard] node=%s: %s", e.Op, e.Node, e.Message)
	}
	return fmt.Sprintf("%s [guard]: %s", e.Op, e.Message)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the framework before they are
// surfaced to the caller.
type ErrorHandler interface {
	// HandleStructural is called when a tree invariant is violated.
	HandleStructural(err *StructuralError)
	// HandleGuardViolation is called when the mutation guard rejects an operation.
	HandleGuardViolation(err *GuardViolationError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
