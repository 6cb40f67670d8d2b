// Package redux binds a store to the element tree.
//
// A [Provider] publishes a store to its subtree. [Connect] wraps a
// presentational [Component] so that every mounted instance derives its
// props from the store and from the props its parent passes in:
//
//	todoList := redux.Connect(
//	    redux.MapStateOf(func(state any) props.Props {
//	        return props.Props{"todos": state.(*State).Todos}
//	    }),
//	    redux.ActionCreators{"toggle": toggleTodo},
//	    nil,
//	)(&TodoList)
//
//	root := redux.Provider{Store: s, Child: todoList.New(nil)}
//
// # Memoization
//
// Each instance keeps three derived stages: state props, dispatch props and
// merged props. A store notification eagerly recomputes state props when
// they do not depend on own props, and skips the rebuild entirely when the
// result is shallow-equal to the previous one. A parent rebuild with
// shallow-equal own props is skipped as well. When nothing changed the
// instance returns the previously built widget, which lets the framework
// leave the wrapped subtree untouched.
//
// Pass [Pure](false) to disable these short circuits for components that
// read state outside their props.
//
// # Errors
//
// A selector that panics while handling a store notification does not
// unwind the dispatch. The failure is reported to the error handler as an
// errors.KindSelector error, then held and raised by the next build, where
// it reaches the nearest [core.ErrorBoundary]. A missing store is an
// invariant violation and panics with a *errors.BindingError.
package redux
