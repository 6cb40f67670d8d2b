package core

import (
	"reflect"
	"testing"

	"github.com/go-drift/redux/pkg/errors"
)

// testStatelessWidget is a simple stateless widget for testing.
type testStatelessWidget struct {
	buildFn func(BuildContext) Widget
}

func (w testStatelessWidget) CreateElement() Element {
	return NewStatelessElement(w, nil)
}

func (w testStatelessWidget) Key() any {
	return nil
}

func (w testStatelessWidget) Build(ctx BuildContext) Widget {
	if w.buildFn != nil {
		return w.buildFn(ctx)
	}
	return nil
}

// testStatefulWidget is a simple stateful widget for testing.
type testStatefulWidget struct {
	createStateFn func() State
}

func (w testStatefulWidget) CreateElement() Element {
	return NewStatefulElement(w, nil)
}

func (w testStatefulWidget) Key() any {
	return nil
}

func (w testStatefulWidget) CreateState() State {
	if w.createStateFn != nil {
		return w.createStateFn()
	}
	return &testState{}
}

type testState struct {
	StateBase
	buildFn func(BuildContext) Widget
}

func (s *testState) Build(ctx BuildContext) Widget {
	if s.buildFn != nil {
		return s.buildFn(ctx)
	}
	return nil
}

// gatedState counts builds and lets the test decide ShouldRebuild.
type gatedState struct {
	StateBase
	builds  int
	allow   bool
	mounted int
	child   Widget
}

func (s *gatedState) Build(ctx BuildContext) Widget {
	s.builds++
	return s.child
}

func (s *gatedState) ShouldRebuild() bool { return s.allow }

func (s *gatedState) DidMount() { s.mounted++ }

// testErrorHandler captures build errors for testing.
type testErrorHandler struct {
	errors.LogHandler
	buildErrors []*errors.BuildError
}

func (h *testErrorHandler) HandleBuildError(err *errors.BuildError) {
	h.buildErrors = append(h.buildErrors, err)
}

func installHandler(t *testing.T) *testErrorHandler {
	t.Helper()
	handler := &testErrorHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return handler
}

func TestStatelessElement_BuildPanic_ReportsError(t *testing.T) {
	handler := installHandler(t)

	widget := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			panic("test panic in stateless build")
		},
	}

	owner := NewBuildOwner()
	element := NewStatelessElement(widget, owner)
	element.Mount(nil, nil)

	if len(handler.buildErrors) != 1 {
		t.Fatalf("expected 1 build error, got %d", len(handler.buildErrors))
	}

	err := handler.buildErrors[0]
	if err.Recovered != "test panic in stateless build" {
		t.Errorf("expected panic value 'test panic in stateless build', got %v", err.Recovered)
	}
	if err.Widget == "" {
		t.Error("expected Widget type to be set")
	}
	if err.StackTrace == "" {
		t.Error("expected StackTrace to be captured")
	}
}

func TestStatefulElement_BuildPanic_ReportsError(t *testing.T) {
	handler := installHandler(t)

	widget := testStatefulWidget{
		createStateFn: func() State {
			return &testState{
				buildFn: func(ctx BuildContext) Widget {
					panic("test panic in stateful build")
				},
			}
		},
	}

	element := NewStatefulElement(widget, NewBuildOwner())
	element.Mount(nil, nil)

	if len(handler.buildErrors) != 1 {
		t.Fatalf("expected 1 build error, got %d", len(handler.buildErrors))
	}
	if handler.buildErrors[0].Recovered != "test panic in stateful build" {
		t.Errorf("unexpected panic value %v", handler.buildErrors[0].Recovered)
	}
}

func TestSafeBuild_ReturnsErrorPlaceholder_WhenNoBuilder(t *testing.T) {
	installHandler(t)

	widget := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			panic("test panic")
		},
	}

	element := NewStatelessElement(widget, NewBuildOwner())
	element.Mount(nil, nil)

	if element.child == nil {
		t.Fatal("expected child element to be set")
	}
	if _, ok := element.child.Widget().(errorPlaceholder); !ok {
		t.Errorf("expected errorPlaceholder widget, got %T", element.child.Widget())
	}
}

func TestSafeBuild_UsesCustomBuilder(t *testing.T) {
	var capturedErr *errors.BuildError
	SetErrorWidgetBuilder(func(err *errors.BuildError) Widget {
		capturedErr = err
		return testStatelessWidget{}
	})
	defer SetErrorWidgetBuilder(nil)
	installHandler(t)

	widget := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			panic("custom builder test")
		},
	}

	element := NewStatelessElement(widget, NewBuildOwner())
	element.Mount(nil, nil)

	if capturedErr == nil {
		t.Fatal("expected custom builder to be called")
	}
	if capturedErr.Recovered != "custom builder test" {
		t.Errorf("expected panic value 'custom builder test', got %v", capturedErr.Recovered)
	}
}

func TestSetErrorWidgetBuilder_NilRestoresDefault(t *testing.T) {
	SetErrorWidgetBuilder(func(err *errors.BuildError) Widget {
		return testStatelessWidget{}
	})
	SetErrorWidgetBuilder(nil)

	builder := GetErrorWidgetBuilder()
	if builder == nil {
		t.Fatal("expected non-nil builder after SetErrorWidgetBuilder(nil)")
	}
	if result := builder(&errors.BuildError{Widget: "x"}); result != nil {
		t.Errorf("expected default builder to return nil, got %v", result)
	}
}

func TestSetDebugMode(t *testing.T) {
	original := DebugMode
	defer SetDebugMode(original)

	SetDebugMode(false)
	if DebugMode {
		t.Error("expected DebugMode to be false")
	}
	SetDebugMode(true)
	if !DebugMode {
		t.Error("expected DebugMode to be true")
	}
}

func TestStatefulElement_UpdateGate(t *testing.T) {
	state := &gatedState{}
	owner := NewBuildOwner()
	element := MountRoot(testStatefulWidget{createStateFn: func() State { return state }}, owner)

	if state.builds != 1 {
		t.Fatalf("first build must ignore the gate, builds = %d", state.builds)
	}

	element.MarkNeedsBuild()
	owner.FlushBuild()
	if state.builds != 1 {
		t.Errorf("ShouldRebuild=false should skip Build, builds = %d", state.builds)
	}

	state.allow = true
	element.MarkNeedsBuild()
	owner.FlushBuild()
	if state.builds != 2 {
		t.Errorf("ShouldRebuild=true should build, builds = %d", state.builds)
	}
}

func TestStatefulElement_DidMountAfterFirstBuild(t *testing.T) {
	var order []string
	state := &testState{}
	state.buildFn = func(ctx BuildContext) Widget {
		order = append(order, "build")
		return testStatelessWidget{buildFn: func(BuildContext) Widget {
			order = append(order, "child")
			return nil
		}}
	}
	mounter := &mountRecorder{testState: state, order: &order}
	MountRoot(testStatefulWidget{createStateFn: func() State { return mounter }}, NewBuildOwner())

	want := []string{"build", "child", "mount"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

type mountRecorder struct {
	*testState
	order *[]string
}

func (m *mountRecorder) DidMount() { *m.order = append(*m.order, "mount") }

func TestUpdateChild_IdenticalWidgetSkipsSubtree(t *testing.T) {
	childBuilds := 0
	child := &countingWidget{builds: &childBuilds}
	state := &gatedState{allow: true, child: child}
	owner := NewBuildOwner()
	element := MountRoot(testStatefulWidget{createStateFn: func() State { return state }}, owner)

	element.MarkNeedsBuild()
	owner.FlushBuild()
	if state.builds != 2 {
		t.Fatalf("parent builds = %d, want 2", state.builds)
	}
	if childBuilds != 1 {
		t.Errorf("same child pointer should not rebuild, child builds = %d", childBuilds)
	}

	state.child = &countingWidget{builds: &childBuilds}
	element.MarkNeedsBuild()
	owner.FlushBuild()
	if childBuilds != 2 {
		t.Errorf("new child pointer should rebuild, child builds = %d", childBuilds)
	}
}

type countingWidget struct {
	builds *int
}

func (w *countingWidget) CreateElement() Element { return NewStatelessElement(w, nil) }
func (w *countingWidget) Key() any               { return nil }
func (w *countingWidget) Build(ctx BuildContext) Widget {
	*w.builds++
	return nil
}

type testMulti struct {
	MultiChildBase
	children []Widget
}

func (m testMulti) ChildWidgets() []Widget { return m.children }

type keyedLeaf struct {
	StatelessBase
	key any
}

func (k keyedLeaf) Build(ctx BuildContext) Widget { return nil }

func TestMultiChildElement_MatchesByIndex(t *testing.T) {
	owner := NewBuildOwner()
	root := MountRoot(testMulti{children: []Widget{keyedLeaf{}, keyedLeaf{}, keyedLeaf{}}}, owner).(*MultiChildElement)
	first := root.children[0]

	root.Update(testMulti{children: []Widget{keyedLeaf{}}})
	owner.FlushBuild()

	if len(root.children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.children))
	}
	if root.children[0] != first {
		t.Error("child at index 0 should be updated in place")
	}
}

func TestBuildOwner_FlushesShallowestFirst(t *testing.T) {
	var order []int
	owner := NewBuildOwner()
	parentState := &testState{}
	childState := &testState{}
	childState.buildFn = func(ctx BuildContext) Widget {
		order = append(order, 1)
		return nil
	}
	parentState.buildFn = func(ctx BuildContext) Widget {
		order = append(order, 0)
		return testStatefulWidget{createStateFn: func() State { return childState }}
	}
	MountRoot(testStatefulWidget{createStateFn: func() State { return parentState }}, owner)
	order = nil

	childState.SetState(nil)
	parentState.SetState(nil)
	owner.FlushBuild()

	if len(order) < 2 || order[0] != 0 {
		t.Errorf("build order = %v, want parent first", order)
	}
}

func TestStatefulElement_UnmountDisposesState(t *testing.T) {
	state := &testState{}
	element := MountRoot(testStatefulWidget{createStateFn: func() State { return state }}, NewBuildOwner())

	element.Unmount()
	if !state.IsDisposed() {
		t.Error("Unmount should dispose the state")
	}
}

func TestFindAncestor(t *testing.T) {
	var found Element
	leaf := testStatelessWidget{buildFn: func(ctx BuildContext) Widget {
		found = ctx.FindAncestor(func(e Element) bool {
			_, ok := e.(*MultiChildElement)
			return ok
		})
		return nil
	}}
	root := MountRoot(testMulti{children: []Widget{leaf}}, NewBuildOwner())

	if found != root {
		t.Errorf("FindAncestor = %v, want the root", found)
	}
}

func TestErrorBoundary_CapturesAndResets(t *testing.T) {
	installHandler(t)
	fail := true
	var captured *errors.BuildError
	boundary := ErrorBoundary{
		Child: testStatelessWidget{buildFn: func(ctx BuildContext) Widget {
			if fail {
				panic("child failed")
			}
			return nil
		}},
		Fallback: func(err *errors.BuildError) Widget { return keyedLeaf{key: "fallback"} },
		OnError:  func(err *errors.BuildError) { captured = err },
	}
	owner := NewBuildOwner()
	root := MountRoot(boundary, owner).(*ErrorBoundaryElement)
	owner.FlushBuild()

	if captured == nil || root.Err() == nil {
		t.Fatal("boundary should capture the failure")
	}
	if _, ok := root.child.Widget().(keyedLeaf); !ok {
		t.Errorf("boundary child = %T, want the fallback", root.child.Widget())
	}

	fail = false
	root.Reset()
	owner.FlushBuild()
	if root.Err() != nil {
		t.Error("Reset should clear the error")
	}
	if _, ok := root.child.Widget().(testStatelessWidget); !ok {
		t.Errorf("boundary child = %T, want the original child", root.child.Widget())
	}
}
