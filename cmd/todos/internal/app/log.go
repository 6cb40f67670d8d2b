package app

import (
	"github.com/golang/glog"

	"github.com/go-drift/redux/pkg/errors"
)

// glogHandler routes binding diagnostics to glog, which writes to files and
// leaves the terminal to the UI.
type glogHandler struct{}

var _ errors.ErrorHandler = glogHandler{}

func (glogHandler) HandleError(err *errors.BindingError) {
	glog.Errorf("todos: %v", err)
	if glog.V(1) && err.StackTrace != "" {
		glog.Infof("todos: stack trace:\n%s", err.StackTrace)
	}
}

func (glogHandler) HandlePanic(err *errors.PanicError) {
	glog.Errorf("todos: %v", err)
	if glog.V(1) && err.StackTrace != "" {
		glog.Infof("todos: stack trace:\n%s", err.StackTrace)
	}
}

func (glogHandler) HandleBuildError(err *errors.BuildError) {
	glog.Errorf("todos: %v", err)
	if glog.V(1) && err.StackTrace != "" {
		glog.Infof("todos: stack trace:\n%s", err.StackTrace)
	}
}

func (glogHandler) HandleWarning(w *errors.Warning) {
	glog.Warningf("todos: [%s] %s", w.Kind, w)
}
