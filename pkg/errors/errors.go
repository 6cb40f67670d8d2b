// Package errors provides structured error handling for the store bindings.
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
	// KindInvariant indicates a configuration invariant violation, such as a
	// connected widget that cannot reach a store. Always fatal.
	KindInvariant
	// KindShape indicates a selector or merge function returned a malformed
	// value. Reported as a warning in debug mode only.
	KindShape
	// KindSelector indicates a selector panicked while recomputing derived
	// props outside of a build.
	KindSelector
	// KindConfig indicates a configuration loading failure.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvariant:
		return "invariant"
	case KindShape:
		return "shape"
	case KindSelector:
		return "selector"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// BindingError represents a structured error raised by the binding layer.
type BindingError struct {
	// Op is the operation that failed (e.g., "redux.Connect").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Component is the display name of the component involved, if any.
	Component string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BindingError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "redux.handleChange").
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

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// BuildError represents a failure during widget build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the element type (StatelessElement, StatefulElement, etc.).
	Element string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

// Unwrap returns Err, or the recovered value when it is an error.
func (e *BuildError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}

// Warning is a non-fatal diagnostic. Warnings are only produced in debug mode.
type Warning struct {
	// Op is the operation that produced the warning.
	Op string
	// Kind categorizes the warning.
	Kind ErrorKind
	// Message is the human-readable diagnostic.
	Message string
	// Timestamp is when the warning was raised.
	Timestamp time.Time
}

func (w *Warning) String() string {
	if w.Op != "" {
		return fmt.Sprintf("%s: %s", w.Op, w.Message)
	}
	return w.Message
}

// ErrorHandler receives errors reported by the binding layer.
type ErrorHandler interface {
	// HandleError is called when a structured error is reported.
	HandleError(err *BindingError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
	// HandleWarning is called for development-mode diagnostics.
	HandleWarning(w *Warning)
}
