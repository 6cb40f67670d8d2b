package testing

import (
	"testing"

	"github.com/go-drift/redux/pkg/core"
	"github.com/go-drift/redux/pkg/errors"
	"github.com/go-drift/redux/pkg/testing/internal/testbed"
	"github.com/go-drift/redux/pkg/widgets"
)

func TestPumpWidget_MountsTree(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	if err := tester.PumpWidget(widgets.Text{Content: "hello"}); err != nil {
		t.Fatal(err)
	}
	if tester.RootElement() == nil {
		t.Fatal("expected root element after PumpWidget")
	}
}

func TestPumpWidget_Remount(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(widgets.Text{Content: "first"})
	first := tester.RootElement()

	tester.PumpWidget(widgets.Text{Content: "second"})
	second := tester.RootElement()

	if first == second {
		t.Error("expected new root element after remount")
	}
}

func TestUpdateWidget_KeepsRoot(t *testing.T) {
	tester := NewWidgetTesterWithT(t)

	tester.PumpWidget(testbed.Counter{Initial: 1})
	first := tester.RootElement()
	tester.UpdateWidget(testbed.Counter{Initial: 5})

	if tester.RootElement() != first {
		t.Error("UpdateWidget should reuse the root element")
	}
	if !tester.Find(ByText("1")).Exists() {
		t.Error("state should survive a configuration update")
	}
}

func TestPump_FlushesSetState(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	var increment func()
	tester.PumpWidget(testbed.Counter{Initial: 0, Bind: func(fn func()) { increment = fn }})

	increment()
	if !tester.BuildOwner().NeedsWork() {
		t.Fatal("SetState should schedule a build")
	}
	tester.Pump()

	want := []string{"count", "  1"}
	got := tester.Lines()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestPumpAndSettle_IdleWidget(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Text{Content: "static"})

	if err := tester.PumpAndSettle(); err != nil {
		t.Errorf("expected settle for static widget, got: %v", err)
	}
}

func TestDispatch(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(widgets.Text{Content: "test"})

	called := false
	tester.Dispatch(func() { called = true })

	if called {
		t.Error("dispatch should not run until Pump")
	}

	tester.Pump()

	if !called {
		t.Error("dispatch should have run after Pump")
	}
}

type failing struct {
	core.StatelessBase
}

func (failing) Build(ctx core.BuildContext) core.Widget {
	panic("boom")
}

func TestRecorder_CapturesBuildErrors(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	tester.PumpWidget(failing{})

	buildErrors := tester.Recorder().BuildErrors()
	if len(buildErrors) != 1 {
		t.Fatalf("recorded %d build errors, want 1", len(buildErrors))
	}
	if buildErrors[0].Recovered != "boom" {
		t.Errorf("Recovered = %v, want boom", buildErrors[0].Recovered)
	}
}

func TestRecorder_WarningsOf(t *testing.T) {
	tester := NewWidgetTesterWithT(t)
	errors.Warn("test.op", errors.KindShape, "shape %d", 1)
	errors.Warn("test.op", errors.KindConfig, "config")

	if got := tester.Recorder().WarningsOf(errors.KindShape); len(got) != 1 || got[0].Message != "shape 1" {
		t.Errorf("WarningsOf(KindShape) = %v", got)
	}
	tester.Recorder().Reset()
	if len(tester.Recorder().Warnings()) != 0 {
		t.Error("Reset should drop recorded warnings")
	}
}

func TestCleanup_RestoresHandler(t *testing.T) {
	prev := errors.DefaultHandler
	tester := NewWidgetTester()
	if errors.DefaultHandler == prev {
		t.Fatal("tester should install its recorder")
	}
	tester.Cleanup()
	if errors.DefaultHandler != prev {
		t.Error("Cleanup should restore the previous handler")
	}
}
