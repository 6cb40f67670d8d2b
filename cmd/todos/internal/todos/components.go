package todos

import (
	"fmt"
	"strings"

	"github.com/go-drift/redux/pkg/core"
	"github.com/go-drift/redux/pkg/props"
	"github.com/go-drift/redux/pkg/redux"
	"github.com/go-drift/redux/pkg/store"
	"github.com/go-drift/redux/pkg/widgets"
)

// AddTodoView renders the title and the text input line.
var AddTodoView = &redux.Component{
	Name: "AddTodo",
	Build: func(ctx core.BuildContext, p props.Props) core.Widget {
		theme := ThemeOf(ctx)
		return widgets.ColumnOf(
			widgets.Text{Content: "Todos"}.WithStyle(theme.Title),
			widgets.Text{Content: p.String("input")},
		)
	},
}

const emptyText = "Nothing to do."

// TodoListView renders the visible todos, marking the cursor row when the
// list has focus.
var TodoListView = &redux.Component{
	Name:    "TodoList",
	Statics: map[string]any{"EmptyText": emptyText},
	Build: func(ctx core.BuildContext, p props.Props) core.Widget {
		theme := ThemeOf(ctx)
		todos, _ := p.Get("todos").([]Todo)
		if len(todos) == 0 {
			return widgets.Padding{Left: 2, Child: widgets.Text{Content: emptyText}.WithStyle(theme.Muted)}
		}
		cursor, focused := p.Int("cursor"), p.Bool("focused")
		rows := make([]core.Widget, 0, len(todos))
		for i, todo := range todos {
			rows = append(rows, todoRow(theme, todo, focused && i == cursor))
		}
		return widgets.Column{Children: rows}
	},
}

func todoRow(theme *Theme, todo Todo, selected bool) core.Widget {
	box, style := "[ ]", theme.Item
	if todo.Completed {
		box, style = "[x]", theme.Done
	}
	marker := "  "
	if selected {
		marker = theme.Cursor.Render(">") + " "
	}
	return widgets.Text{Content: marker + box + " " + style.Render(todo.Text)}
}

// FooterView renders the filter switcher with the current filter
// highlighted.
var FooterView = &redux.Component{
	Name: "Footer",
	Build: func(ctx core.BuildContext, p props.Props) core.Widget {
		theme := ThemeOf(ctx)
		current, _ := p.Get("filter").(Filter)
		labels := make([]string, len(Filters))
		for i, f := range Filters {
			label := fmt.Sprintf("%d:%s", i+1, f.Label())
			if f == current {
				labels[i] = theme.Active.Render(label)
			} else {
				labels[i] = theme.Muted.Render(label)
			}
		}
		return widgets.Text{Content: "Show: " + strings.Join(labels, " ")}
	},
}

// visibleTodos gives every TodoList instance its own filtered list that
// keeps its identity until the todos or the filter change.
var visibleTodos = &redux.MapState{
	Factory: func(any, props.Props) *redux.MapState {
		var (
			seenTodos  []Todo
			seenFilter Filter
			last       props.Props
		)
		return redux.MapStateOf(func(state any) props.Props {
			s := state.(*State)
			if last == nil || s.Filter != seenFilter || !props.Identical(s.Todos, seenTodos) {
				seenTodos, seenFilter = s.Todos, s.Filter
				last = props.Props{"todos": Visible(s)}
			}
			return last
		})
	},
}

func selectFilter(state any) props.Props {
	return props.Props{"filter": state.(*State).Filter}
}

// Frame is the host-side input of one render: everything the components need
// that does not live in the store. Theme reaches the components through a
// ThemeScope rather than their props.
type Frame struct {
	Input       string
	Cursor      int
	ListFocused bool
	Theme       *Theme
}

// Views are the connected components of the demo.
type Views struct {
	AddTodo  *redux.Connected
	TodoList *redux.Connected
	Footer   *redux.Connected

	provider func(store.Store, ...core.Widget) redux.Provider
}

// NewViews connects the components with the binding options in opts.
func NewViews(opts redux.Options) Views {
	options := opts.Apply()
	key := opts.StoreKey
	if key == "" {
		key = redux.DefaultStoreKey
	}
	return Views{
		AddTodo:  redux.Connect(nil, pick("addTodo"), nil, options...)(AddTodoView),
		TodoList: redux.Connect(visibleTodos, pick("completeTodo"), nil, options...)(TodoListView),
		Footer:   redux.Connect(redux.MapStateOf(selectFilter), pick("setVisibilityFilter"), nil, options...)(FooterView),
		provider: redux.CreateProvider(key, ""),
	}
}

// Tree returns the widget tree for one frame.
func (v Views) Tree(s store.Store, frame Frame) core.Widget {
	return v.provider(s, ThemeScope{Theme: frame.Theme, Child: widgets.ColumnOf(
		v.AddTodo.New(props.Props{"input": frame.Input}),
		v.TodoList.New(props.Props{"cursor": frame.Cursor, "focused": frame.ListFocused}),
		v.Footer.New(nil),
	)})
}

// Handler returns the bound action creator name that the mounted instance
// of c under root received as a prop.
func (v Views) Handler(root core.Element, c *redux.Connected, name string) (redux.BoundActionCreator, bool) {
	p, ok := mountedProps(root, c.WrappedComponent())
	if !ok {
		return nil, false
	}
	handler, ok := p.Get(name).(redux.BoundActionCreator)
	return handler, ok
}

func mountedProps(e core.Element, component *redux.Component) (props.Props, bool) {
	if e == nil {
		return nil, false
	}
	if w, ok := e.Widget().(*redux.WrappedWidget); ok && w.Component() == component {
		return w.Props(), true
	}
	var (
		found props.Props
		ok    bool
	)
	e.VisitChildren(func(child core.Element) bool {
		found, ok = mountedProps(child, component)
		return !ok
	})
	return found, ok
}
