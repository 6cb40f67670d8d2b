package redux

import (
	"github.com/go-drift/redux/pkg/props"
	"github.com/go-drift/redux/pkg/store"
)

// MapStateFunc derives props from the store state. ownProps is nil unless
// the owning MapState declares DependsOnOwnProps.
type MapStateFunc func(state any, ownProps props.Props) props.Props

// MapState describes how a connected widget derives props from state.
//
// DependsOnOwnProps declares that Func reads ownProps: it then receives the
// widget's own props on every recomputation, and a change of own props
// alone recomputes the state props. When false, Func always receives nil.
//
// Factory, when set, is called once per mounted widget with the first state
// and own props. The MapState it returns is used for the lifetime of that
// widget, which lets each instance keep private memoization.
type MapState struct {
	Func              MapStateFunc
	DependsOnOwnProps bool
	Factory           func(state any, ownProps props.Props) *MapState
}

// MapStateOf wraps a selector that only reads the state.
func MapStateOf(fn func(state any) props.Props) *MapState {
	return &MapState{Func: func(state any, _ props.Props) props.Props { return fn(state) }}
}

// MapStateWithOwn wraps a selector that reads the state and own props.
func MapStateWithOwn(fn MapStateFunc) *MapState {
	return &MapState{Func: fn, DependsOnOwnProps: true}
}

// MapDispatchFunc derives callback props from the store's dispatch. ownProps
// is nil unless the owning MapDispatch declares DependsOnOwnProps.
type MapDispatchFunc func(dispatch store.DispatchFunc, ownProps props.Props) props.Props

// MapDispatch describes how a connected widget derives props from dispatch.
// The fields follow the same rules as [MapState].
type MapDispatch struct {
	Func              MapDispatchFunc
	DependsOnOwnProps bool
	Factory           func(dispatch store.DispatchFunc, ownProps props.Props) *MapDispatch
}

// MapDispatchOf wraps a mapper that only uses dispatch.
func MapDispatchOf(fn func(dispatch store.DispatchFunc) props.Props) *MapDispatch {
	return &MapDispatch{Func: func(dispatch store.DispatchFunc, _ props.Props) props.Props { return fn(dispatch) }}
}

// MapDispatchWithOwn wraps a mapper that reads own props.
func MapDispatchWithOwn(fn MapDispatchFunc) *MapDispatch {
	return &MapDispatch{Func: fn, DependsOnOwnProps: true}
}

// MapDispatcher is accepted by Connect as its dispatch mapping. It is
// implemented by *MapDispatch and by ActionCreators.
type MapDispatcher interface {
	mapDispatch() *MapDispatch
}

func (m *MapDispatch) mapDispatch() *MapDispatch { return m }

// MergeFunc combines the three prop sources into the props handed to the
// wrapped component.
type MergeFunc func(stateProps, dispatchProps, ownProps props.Props) props.Props

// DefaultMerge is the shallow union own < state < dispatch.
func DefaultMerge(stateProps, dispatchProps, ownProps props.Props) props.Props {
	return props.Merge(ownProps, stateProps, dispatchProps)
}

func emptyStateProps(any, props.Props) props.Props {
	return props.Props{}
}

func defaultDispatchProps(dispatch store.DispatchFunc, _ props.Props) props.Props {
	return props.Props{"dispatch": dispatch}
}

// resolvedState is a MapState after factory materialization.
type resolvedState struct {
	fn                MapStateFunc
	dependsOnOwnProps bool
}

type resolvedDispatch struct {
	fn                MapDispatchFunc
	dependsOnOwnProps bool
}
