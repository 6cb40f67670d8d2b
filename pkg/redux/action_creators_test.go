package redux

import (
	"slices"
	"testing"

	"github.com/go-drift/redux/pkg/props"
	"github.com/go-drift/redux/pkg/store"
)

func TestBindActionCreator(t *testing.T) {
	var dispatched []any
	dispatch := func(action any) any {
		dispatched = append(dispatched, action)
		return "handled"
	}
	add := BindActionCreator(func(args ...any) any {
		return store.Action{Type: "add", Payload: args[0]}
	}, dispatch)

	if got := add("milk"); got != "handled" {
		t.Errorf("bound creator returned %v, want the dispatch result", got)
	}
	want := []any{store.Action{Type: "add", Payload: "milk"}}
	if !slices.Equal(dispatched, want) {
		t.Errorf("dispatched %v, want %v", dispatched, want)
	}
}

func TestBindActionCreators(t *testing.T) {
	count := 0
	dispatch := func(action any) any {
		count++
		return action
	}
	bound := BindActionCreators(ActionCreators{
		"clear":  func(...any) any { return store.Action{Type: "clear"} },
		"toggle": func(args ...any) any { return store.Action{Type: "toggle", Payload: args[0]} },
		"broken": nil,
	}, dispatch)

	if got := bound.Keys(); !slices.Equal(got, []string{"clear", "toggle"}) {
		t.Fatalf("Keys() = %v", got)
	}
	toggle := bound.Get("toggle").(BoundActionCreator)
	if got := toggle(3); got != (store.Action{Type: "toggle", Payload: 3}) {
		t.Errorf("toggle(3) = %v", got)
	}
	if count != 1 {
		t.Errorf("dispatch count = %d, want 1", count)
	}
}

func TestActionCreators_IgnoreOwnProps(t *testing.T) {
	m := ActionCreators{"clear": func(...any) any { return nil }}.mapDispatch()
	if m.DependsOnOwnProps {
		t.Error("action creators should not depend on own props")
	}
	if got := m.Func(func(any) any { return nil }, props.Props{"x": 1}); got.Has("x") {
		t.Error("own props should not leak into bound creators")
	}
}
