package core

import "reflect"

// InheritedElement is the element that hosts an [InheritedWidget] and manages
// the dependency tracking for descendant widgets.
//
// When a descendant calls [BuildContext.DependOnInherited], it registers as a
// dependent of this element. When the InheritedWidget is updated and
// [InheritedWidget.UpdateShouldNotify] returns true, all registered dependents
// are notified and scheduled for rebuild.
//
// Descendants that only need to read the value once, such as a connected
// widget resolving its store, can walk up with [BuildContext.FindAncestor]
// and call [InheritedElement.Value] without registering.
type InheritedElement struct {
	elementBase
	child      Element
	dependents map[Element]struct{}
}

// NewInheritedElement creates an InheritedElement.
func NewInheritedElement(widget InheritedWidget, owner *BuildOwner) *InheritedElement {
	element := &InheritedElement{
		dependents: make(map[Element]struct{}),
	}
	element.widget = widget
	element.buildOwner = owner
	element.setSelf(element)
	return element
}

// Value returns the hosted inherited widget.
func (e *InheritedElement) Value() InheritedWidget {
	inherited, _ := e.widget.(InheritedWidget)
	return inherited
}

func (e *InheritedElement) Mount(parent Element, slot any) {
	e.attach(parent, slot)
	e.dirty = true
	e.RebuildIfNeeded()
}

func (e *InheritedElement) Update(newWidget Widget) {
	oldWidget := e.widget.(InheritedWidget)
	e.widget = newWidget
	newInherited := newWidget.(InheritedWidget)

	if !newInherited.UpdateShouldNotify(oldWidget) {
		e.MarkNeedsBuild()
		return
	}

	for dependent := range e.dependents {
		notifyDependent(dependent)
	}

	e.MarkNeedsBuild()
}

func (e *InheritedElement) Unmount() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
	e.dependents = nil
}

func (e *InheritedElement) RebuildIfNeeded() {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	inherited := e.widget.(InheritedWidget)
	e.child = updateChild(e.child, inherited.ChildWidget(), e, e.buildOwner)
}

func (e *InheritedElement) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

// AddDependent registers an element as depending on this inherited widget.
func (e *InheritedElement) AddDependent(dependent Element) {
	if e.dependents == nil {
		e.dependents = make(map[Element]struct{})
	}
	e.dependents[dependent] = struct{}{}
}

// RemoveDependent unregisters an element as depending on this inherited widget.
func (e *InheritedElement) RemoveDependent(dependent Element) {
	delete(e.dependents, dependent)
}

// notifyDependent triggers DidChangeDependencies on the dependent element.
func notifyDependent(element Element) {
	if m, ok := element.(interface{ isMounted() bool }); ok && !m.isMounted() {
		return
	}
	if stateful, ok := element.(*StatefulElement); ok {
		if stateful.state != nil {
			stateful.state.DidChangeDependencies()
		}
		stateful.MarkNeedsBuild()
		return
	}
	element.MarkNeedsBuild()
}

// findInherited walks up from element to the nearest InheritedElement whose
// widget has the requested type.
func findInherited(element Element, inheritedType reflect.Type) *InheritedElement {
	var current Element
	if base, ok := element.(interface{ parentElement() Element }); ok {
		current = base.parentElement()
	}

	for current != nil {
		if inherited, ok := current.(*InheritedElement); ok {
			widgetType := reflect.TypeOf(inherited.widget)
			if widgetType == inheritedType || (widgetType.Kind() == reflect.Pointer && widgetType.Elem() == inheritedType) {
				return inherited
			}
		}
		if base, ok := current.(interface{ parentElement() Element }); ok {
			current = base.parentElement()
		} else {
			break
		}
	}
	return nil
}

// dependOnInheritedImpl finds the nearest InheritedElement of the requested
// type and registers element as a dependent.
func dependOnInheritedImpl(element Element, inheritedType reflect.Type) any {
	inherited := findInherited(element, inheritedType)
	if inherited == nil {
		return nil
	}
	inherited.AddDependent(element)
	return inherited.widget
}
