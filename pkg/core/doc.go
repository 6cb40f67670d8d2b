// Package core provides the widget and element framework that store
// bindings are mounted into.
//
// Widget is an immutable description of part of the UI. Element is the
// instantiation of a Widget at a particular location in the tree and owns
// its lifecycle: Mount, Update (new configuration from the parent),
// RebuildIfNeeded and Unmount.
//
// # Stateful Widgets
//
// For widgets that need mutable state, embed StateBase in your state struct:
//
//	type counterState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) core.Widget {
//	    return widgets.Text{Content: strconv.Itoa(s.count)}
//	}
//
// A state may also implement [UpdateGate] to veto rebuilds and [Mounter]
// to run code once its first build has been mounted.
//
// # Rebuild Scheduling
//
// SetState and MarkNeedsBuild only mark an element dirty. The [BuildOwner]
// collects dirty elements and FlushBuild rebuilds them, shallowest first.
// When a parent returns the very same widget pointer it returned last time,
// the child element is left untouched.
//
// # Ambient Values
//
// InheritedWidget exposes a value to its whole subtree. Descendants either
// depend on it through BuildContext.DependOnInherited (and rebuild when it
// changes) or read it once via FindAncestor.
//
// # Build Failures
//
// A panic inside Build is recovered, reported to the errors package and
// routed to the nearest ErrorBoundary, which swaps its subtree for a
// fallback.
package core
