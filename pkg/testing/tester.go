package testing

import (
	"fmt"
	"sync"
	"testing"

	"github.com/go-drift/redux/pkg/core"
	"github.com/go-drift/redux/pkg/errors"
	"github.com/go-drift/redux/pkg/widgets"
)

// DefaultSettleFrames bounds PumpAndSettle.
const DefaultSettleFrames = 100

// ErrSettleTimeout is returned when PumpAndSettle exceeds its frame budget.
var ErrSettleTimeout = fmt.Errorf("PumpAndSettle timed out: framework did not settle")

// WidgetTester drives a widget tree without a host loop. It owns the build
// owner, records everything reported to the error handler while it is
// installed, and flushes builds on Pump.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	dispatches []func()
	recorder   *Recorder
	prev       errors.ErrorHandler
}

// NewWidgetTester creates a tester and installs its Recorder as the error
// handler. Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	t := &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		recorder:   &Recorder{},
		prev:       errors.DefaultHandler,
	}
	errors.SetHandler(t.recorder)
	return t
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the previous error handler.
func (t *WidgetTester) Cleanup() {
	t.Unmount()
	errors.SetHandler(t.prev)
}

// BuildOwner returns the owner driving the tree.
func (t *WidgetTester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// Recorder returns the handler capturing reports during the test.
func (t *WidgetTester) Recorder() *Recorder {
	return t.recorder
}

// PumpWidget mounts (or remounts) a widget and runs one frame.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	t.Unmount()
	t.root = core.MountRoot(widget, t.buildOwner)
	return t.Pump()
}

// UpdateWidget hands a new configuration to the existing root, as a parent
// rebuild would, and runs one frame. It mounts the widget if nothing is
// mounted yet.
func (t *WidgetTester) UpdateWidget(widget core.Widget) error {
	if t.root == nil {
		return t.PumpWidget(widget)
	}
	t.root.Update(widget)
	return t.Pump()
}

// Pump runs a single frame: queued dispatches, then the build flush.
func (t *WidgetTester) Pump() error {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}
	t.buildOwner.FlushBuild()
	return nil
}

// PumpAndSettle runs frames until nothing is dirty and no dispatches are
// queued. Returns ErrSettleTimeout after DefaultSettleFrames frames.
func (t *WidgetTester) PumpAndSettle() error {
	for range DefaultSettleFrames {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
	}
	return ErrSettleTimeout
}

func (t *WidgetTester) needsWork() bool {
	return t.buildOwner.NeedsWork() || len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// Unmount tears down the mounted tree, if any.
func (t *WidgetTester) Unmount() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// Lines renders the mounted tree with [widgets.Lines].
func (t *WidgetTester) Lines() []string {
	return widgets.Lines(t.root)
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// Recorder is an errors.ErrorHandler that keeps every report.
type Recorder struct {
	mu          sync.Mutex
	errs        []*errors.BindingError
	panics      []*errors.PanicError
	buildErrors []*errors.BuildError
	warnings    []*errors.Warning
}

func (r *Recorder) HandleError(err *errors.BindingError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *Recorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

func (r *Recorder) HandleBuildError(err *errors.BuildError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.buildErrors = append(r.buildErrors, err)
}

func (r *Recorder) HandleWarning(w *errors.Warning) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, w)
}

// Errors returns the reported binding errors.
func (r *Recorder) Errors() []*errors.BindingError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.BindingError(nil), r.errs...)
}

// Panics returns the reported panics.
func (r *Recorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}

// BuildErrors returns the reported build failures.
func (r *Recorder) BuildErrors() []*errors.BuildError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.BuildError(nil), r.buildErrors...)
}

// Warnings returns the reported warnings.
func (r *Recorder) Warnings() []*errors.Warning {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.Warning(nil), r.warnings...)
}

// WarningsOf returns the warnings of the given kind.
func (r *Recorder) WarningsOf(kind errors.ErrorKind) []*errors.Warning {
	var out []*errors.Warning
	for _, w := range r.Warnings() {
		if w.Kind == kind {
			out = append(out, w)
		}
	}
	return out
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs, r.panics, r.buildErrors, r.warnings = nil, nil, nil, nil
}
