package redux

import (
	"github.com/go-drift/redux/pkg/props"
	"github.com/go-drift/redux/pkg/store"
)

// ActionCreator builds an action from call arguments.
type ActionCreator func(args ...any) any

// BoundActionCreator builds an action and dispatches it, returning the
// dispatch result.
type BoundActionCreator func(args ...any) any

// ActionCreators maps prop names to action creators. Passed to Connect as the
// dispatch mapping, every creator is bound to the store's dispatch and
// exposed under its name.
type ActionCreators map[string]ActionCreator

func (c ActionCreators) mapDispatch() *MapDispatch {
	return &MapDispatch{
		Func: func(dispatch store.DispatchFunc, _ props.Props) props.Props {
			return BindActionCreators(c, dispatch)
		},
	}
}

// BindActionCreator binds a single creator to dispatch.
func BindActionCreator(create ActionCreator, dispatch store.DispatchFunc) BoundActionCreator {
	return func(args ...any) any {
		return dispatch(create(args...))
	}
}

// BindActionCreators binds every creator to dispatch. Nil creators are
// skipped.
func BindActionCreators(creators ActionCreators, dispatch store.DispatchFunc) props.Props {
	bound := make(props.Props, len(creators))
	for name, create := range creators {
		if create == nil {
			continue
		}
		bound[name] = BindActionCreator(create, dispatch)
	}
	return bound
}
