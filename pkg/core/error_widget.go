package core

import (
	"sync"

	"github.com/go-drift/redux/pkg/errors"
)

// ErrorWidgetBuilder creates a fallback widget when a widget build fails.
// The builder receives the build error and should return a widget to display
// in place of the failed widget.
type ErrorWidgetBuilder func(err *errors.BuildError) Widget

var (
	errorWidgetBuilder ErrorWidgetBuilder = DefaultErrorWidgetBuilder
	errorBuilderMu     sync.RWMutex
)

// SetErrorWidgetBuilder configures the global error widget builder.
// Pass nil to restore the default builder.
func SetErrorWidgetBuilder(builder ErrorWidgetBuilder) {
	errorBuilderMu.Lock()
	defer errorBuilderMu.Unlock()
	if builder == nil {
		errorWidgetBuilder = DefaultErrorWidgetBuilder
	} else {
		errorWidgetBuilder = builder
	}
}

// GetErrorWidgetBuilder returns the current error widget builder.
func GetErrorWidgetBuilder() ErrorWidgetBuilder {
	errorBuilderMu.RLock()
	defer errorBuilderMu.RUnlock()
	return errorWidgetBuilder
}

// DefaultErrorWidgetBuilder returns nil, which makes the failed element
// render nothing after the error has been reported.
func DefaultErrorWidgetBuilder(err *errors.BuildError) Widget {
	return nil
}

// ErrorBoundaryCapture is implemented by error boundary elements to capture
// build errors from descendant widgets.
type ErrorBoundaryCapture interface {
	// CaptureError captures a build error from a descendant widget.
	// Returns true if the error was captured and handled.
	CaptureError(err *errors.BuildError) bool
}

// ErrorBoundary catches build failures in its subtree. After a failure the
// subtree is replaced by Fallback (or nothing) until Reset is called on the
// boundary element.
type ErrorBoundary struct {
	Child    Widget
	Fallback func(err *errors.BuildError) Widget
	OnError  func(err *errors.BuildError)
}

func (b ErrorBoundary) CreateElement() Element {
	element := &ErrorBoundaryElement{}
	element.widget = b
	element.setSelf(element)
	return element
}

func (b ErrorBoundary) Key() any { return nil }

// ErrorBoundaryElement hosts an [ErrorBoundary].
type ErrorBoundaryElement struct {
	elementBase
	child Element
	err   *errors.BuildError
}

// Err returns the captured error, or nil.
func (e *ErrorBoundaryElement) Err() *errors.BuildError {
	return e.err
}

// Reset clears the captured error and rebuilds the original child.
func (e *ErrorBoundaryElement) Reset() {
	e.err = nil
	e.MarkNeedsBuild()
}

func (e *ErrorBoundaryElement) CaptureError(err *errors.BuildError) bool {
	e.err = err
	if onError := e.widget.(ErrorBoundary).OnError; onError != nil {
		onError(err)
	}
	e.MarkNeedsBuild()
	return true
}

func (e *ErrorBoundaryElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *ErrorBoundaryElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *ErrorBoundaryElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *ErrorBoundaryElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	boundary := e.widget.(ErrorBoundary)
	next := boundary.Child
	if e.err != nil {
		next = nil
		if boundary.Fallback != nil {
			next = boundary.Fallback(e.err)
		}
		if e.child != nil {
			// never reuse the failed subtree
			e.child.Unmount()
			e.child = nil
		}
	}
	e.child = updateChild(e.child, next, e, e.buildOwner)
}

func (e *ErrorBoundaryElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}
