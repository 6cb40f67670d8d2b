// Package testing provides a widget testing framework.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMyWidget(t *testing.T) {
//	    tester := reduxtest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(MyWidget{})
//
//	    store.Dispatch(increment)
//	    tester.Pump()
//
//	    if !tester.Find(reduxtest.ByText("1")).Exists() {
//	        t.Error("expected '1' text")
//	    }
//	}
//
// The tester installs a [Recorder] as the error handler for the duration
// of the test, so warnings and build failures can be asserted on.
//
// # Snapshot Testing
//
// Capture and compare the element tree and rendered lines:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_widget.snapshot.yaml")
//
// Update snapshots with:
//
//	REDUX_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import reduxtest "github.com/go-drift/redux/pkg/testing"
package testing
