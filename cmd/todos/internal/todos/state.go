// Package todos holds the state, actions, reducer and connected components
// of the todo list demo.
package todos

import (
	"slices"
	"strings"

	"github.com/go-drift/redux/pkg/store"
)

// Filter selects which todos are visible.
type Filter string

const (
	ShowAll       Filter = "SHOW_ALL"
	ShowCompleted Filter = "SHOW_COMPLETED"
	ShowActive    Filter = "SHOW_ACTIVE"
)

// Filters lists every filter in display order.
var Filters = []Filter{ShowAll, ShowCompleted, ShowActive}

// Valid reports whether f is a known filter.
func (f Filter) Valid() bool {
	return slices.Contains(Filters, f)
}

// Label is the footer caption of f.
func (f Filter) Label() string {
	switch f {
	case ShowCompleted:
		return "Completed"
	case ShowActive:
		return "Active"
	default:
		return "All"
	}
}

// Next cycles to the following filter.
func (f Filter) Next() Filter {
	i := slices.Index(Filters, f)
	return Filters[(i+1)%len(Filters)]
}

// Todo is one entry of the list. ID is stable across filtering.
type Todo struct {
	ID        int
	Text      string
	Completed bool
}

// State is the whole store state. Reducers never mutate a State; every
// change produces a new *State.
type State struct {
	Todos  []Todo
	Filter Filter
}

// NewState returns the initial state holding todos.
func NewState(filter Filter, todos ...Todo) *State {
	if !filter.Valid() {
		filter = ShowAll
	}
	s := &State{Filter: filter}
	for _, todo := range todos {
		todo.ID = len(s.Todos)
		s.Todos = append(s.Todos, todo)
	}
	return s
}

// Visible returns the todos matching the state's filter. With ShowAll the
// backing slice itself is returned so that unrelated updates compare equal.
func Visible(s *State) []Todo {
	switch s.Filter {
	case ShowCompleted:
		return filter(s.Todos, func(t Todo) bool { return t.Completed })
	case ShowActive:
		return filter(s.Todos, func(t Todo) bool { return !t.Completed })
	default:
		return s.Todos
	}
}

func filter(todos []Todo, keep func(Todo) bool) []Todo {
	out := make([]Todo, 0, len(todos))
	for _, todo := range todos {
		if keep(todo) {
			out = append(out, todo)
		}
	}
	return out
}

// Reduce is the store reducer. Unknown actions and no-op updates return the
// state unchanged.
func Reduce(state any, action any) any {
	s := state.(*State)
	a, ok := action.(store.Action)
	if !ok {
		return s
	}
	switch a.Type {
	case AddTodoType:
		text, _ := a.Payload.(string)
		text = strings.TrimSpace(text)
		if text == "" {
			return s
		}
		next := &State{Filter: s.Filter, Todos: slices.Clone(s.Todos)}
		next.Todos = append(next.Todos, Todo{ID: len(s.Todos), Text: text})
		return next
	case CompleteTodoType:
		id, _ := a.Payload.(int)
		i := slices.IndexFunc(s.Todos, func(t Todo) bool { return t.ID == id })
		if i < 0 {
			return s
		}
		next := &State{Filter: s.Filter, Todos: slices.Clone(s.Todos)}
		next.Todos[i].Completed = !next.Todos[i].Completed
		return next
	case SetVisibilityFilterType:
		f, _ := a.Payload.(Filter)
		if !f.Valid() || f == s.Filter {
			return s
		}
		return &State{Filter: f, Todos: s.Todos}
	}
	return s
}
