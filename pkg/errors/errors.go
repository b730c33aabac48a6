// Package errors provides structured error handling for the interact library.
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
	// KindResolution indicates that a parameter could not be bound to any
	// abbreviation.
	KindResolution
	// KindContract indicates that the resolved argument set cannot legally
	// call the target function.
	KindContract
	// KindAbbreviation indicates an abbreviation that matches no control
	// shape or violates a numeric constraint.
	KindAbbreviation
	// KindInvocation indicates an error returned by the target function
	// during a triggered call.
	KindInvocation
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindResolution:
		return "resolution"
	case KindContract:
		return "contract"
	case KindAbbreviation:
		return "abbreviation"
	case KindInvocation:
		return "invocation"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// InteractError represents a structured error in the interact library.
type InteractError struct {
	// Op is the operation that failed (e.g., "interact.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Param is the owning parameter name, if applicable.
	Param string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *InteractError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s [%s] param=%s: %v", e.Op, e.Kind, e.Param, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *InteractError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "interact.invoke").
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

// ErrorHandler receives errors reported by the interact library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *InteractError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
