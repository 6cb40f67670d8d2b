package todos

import (
	"github.com/go-drift/redux/pkg/redux"
	"github.com/go-drift/redux/pkg/store"
)

// Action types.
const (
	AddTodoType             = "ADD_TODO"
	CompleteTodoType        = "COMPLETE_TODO"
	SetVisibilityFilterType = "SET_VISIBILITY_FILTER"
)

// AddTodo appends a todo with text.
func AddTodo(text string) store.Action {
	return store.Action{Type: AddTodoType, Payload: text}
}

// CompleteTodo toggles the todo with id.
func CompleteTodo(id int) store.Action {
	return store.Action{Type: CompleteTodoType, Payload: id}
}

// SetVisibilityFilter switches the visible subset.
func SetVisibilityFilter(f Filter) store.Action {
	return store.Action{Type: SetVisibilityFilterType, Payload: f}
}

// Creators are the action creators bound into component props.
var Creators = redux.ActionCreators{
	"addTodo": func(args ...any) any {
		text, _ := first(args).(string)
		return AddTodo(text)
	},
	"completeTodo": func(args ...any) any {
		id, _ := first(args).(int)
		return CompleteTodo(id)
	},
	"setVisibilityFilter": func(args ...any) any {
		f, _ := first(args).(Filter)
		return SetVisibilityFilter(f)
	},
}

func first(args []any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// pick returns the subset of Creators named by names.
func pick(names ...string) redux.ActionCreators {
	picked := make(redux.ActionCreators, len(names))
	for _, name := range names {
		picked[name] = Creators[name]
	}
	return picked
}
