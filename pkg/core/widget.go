package core

import "reflect"

// Widget is an immutable description of part of the UI.
type Widget interface {
	CreateElement() Element
	Key() any
}

// StatelessWidget builds its child purely from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns a State that survives rebuilds of its parent.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State is the mutable half of a StatefulWidget. Embed [StateBase] to get
// no-op defaults for every method except Build.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	SetState(fn func())
	Dispose()
	DidChangeDependencies()
	DidUpdateWidget(oldWidget StatefulWidget)
}

// UpdateGate is an optional State extension consulted before every rebuild
// after the first one. Returning false keeps the previously built child.
type UpdateGate interface {
	ShouldRebuild() bool
}

// Mounter is an optional State extension called once, after the first
// build of the element has completed and its subtree is mounted.
type Mounter interface {
	DidMount()
}

// InheritedWidget exposes a value to every descendant that looks it up
// through [BuildContext.DependOnInherited].
type InheritedWidget interface {
	Widget
	ChildWidget() Widget
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}

// MultiChildWidget lays out an ordered list of children.
type MultiChildWidget interface {
	Widget
	ChildWidgets() []Widget
}

// BuildContext is the handle a widget receives during Build. It is the
// element that hosts the widget.
type BuildContext interface {
	Widget() Widget
	FindAncestor(predicate func(Element) bool) Element
	DependOnInherited(inheritedType reflect.Type) any
}

// Element is the instantiation of a Widget at a location in the tree.
type Element interface {
	BuildContext
	Mount(parent Element, slot any)
	Update(newWidget Widget)
	Unmount()
	RebuildIfNeeded()
	MarkNeedsBuild()
	Depth() int
	VisitChildren(visitor func(Element) bool)
}

// MountRoot inflates widget and mounts it as the root of a new tree.
func MountRoot(widget Widget, owner *BuildOwner) Element {
	element := inflateWidget(widget, owner)
	if element == nil {
		return nil
	}
	element.Mount(nil, nil)
	return element
}
