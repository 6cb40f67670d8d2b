package redux

import (
	"github.com/golang/glog"

	"github.com/go-drift/redux/pkg/core"
	"github.com/go-drift/redux/pkg/errors"
	"github.com/go-drift/redux/pkg/props"
	"github.com/go-drift/redux/pkg/store"
)

// Adapter is the per-instance handle of a mounted connected widget.
type Adapter interface {
	// DisplayName returns "Connect(<component name>)".
	DisplayName() string
	// Store returns the store the instance resolved at mount.
	Store() store.Store
	// WrappedInstance returns the element of the wrapped component. It
	// panics with an invariant error unless the connector was created
	// with WithRef(true).
	WrappedInstance() core.Element
}

// AdapterOf returns the adapter hosted by element, if element is a mounted
// connected widget.
func AdapterOf(element core.Element) (Adapter, bool) {
	stateful, ok := element.(*core.StatefulElement)
	if !ok {
		return nil, false
	}
	adapter, ok := stateful.State().(*adapterState)
	return adapter, ok
}

// stage is one memoized layer of derived props.
type stage struct {
	value    props.Props
	computed bool
}

// memo holds everything derived for one instance. It is replaced wholesale
// when the connector is rewired and dropped on unmount.
type memo struct {
	mapState    *resolvedState
	mapDispatch *resolvedDispatch
	state       stage
	dispatch    stage
	merged      stage
	rendered    *WrappedWidget
}

// adapterState is the State behind a ConnectWidget.
type adapterState struct {
	core.StateBase

	connected  *Connected
	generation uint64
	store      store.Store
	ownProps   props.Props
	storeState any
	memo       *memo
	ref        *wrappedRef

	ownPropsChanged         bool
	storeStateChanged       bool
	statePropsPrecalculated bool
	// precalcErr is a selector failure captured while handling a store
	// notification, re-raised by the next Build.
	precalcErr *errors.PanicError

	unsubscribe func()
}

var _ core.UpdateGate = (*adapterState)(nil)
var _ core.Mounter = (*adapterState)(nil)

func (s *adapterState) widget() *ConnectWidget {
	return s.Widget().(*ConnectWidget)
}

func (s *adapterState) connector() *connector {
	return s.connected.connector
}

func (s *adapterState) DisplayName() string { return s.connected.displayName }

func (s *adapterState) Store() store.Store { return s.store }

func (s *adapterState) WrappedInstance() core.Element {
	errors.Invariant(s.connector().opts.withRef, "redux.WrappedInstance", s.DisplayName(),
		"to access the wrapped instance, pass WithRef(true) to Connect")
	if s.ref == nil {
		return nil
	}
	return s.ref.element
}

func (s *adapterState) InitState() {
	w := s.widget()
	s.connected = w.connected
	s.generation = w.connected.connector.generation
	s.ownProps = w.props
	s.store = s.resolveStore()
	s.storeState = s.store.GetState()
	s.clearCache()
}

func (s *adapterState) resolveStore() store.Store {
	key := s.connector().opts.storeKey
	if st, ok := s.ownProps[key].(store.Store); ok && st != nil {
		return st
	}
	if st, ok := StoreOf(s.Element(), key); ok {
		return st
	}
	errors.Invariant(false, "redux.Connect", s.DisplayName(),
		"could not find %q in either the provider scope or props of %q. Either wrap the root widget in a Provider, or pass %q as a prop to %q",
		key, s.DisplayName(), key, s.DisplayName())
	return nil
}

func (s *adapterState) DidMount() {
	s.trySubscribe()
}

func (s *adapterState) isSubscribed() bool {
	return s.unsubscribe != nil
}

func (s *adapterState) trySubscribe() {
	if !s.connector().shouldSubscribe || s.isSubscribed() {
		return
	}
	s.unsubscribe = core.UseSubscription(s, s.store.Subscribe, s.handleChange)
	glog.V(2).Infof("redux: %s subscribed", s.DisplayName())
	s.handleChange()
}

func (s *adapterState) tryUnsubscribe() {
	if !s.isSubscribed() {
		return
	}
	s.unsubscribe()
	s.unsubscribe = nil
	glog.V(2).Infof("redux: %s unsubscribed", s.DisplayName())
}

func (s *adapterState) DidUpdateWidget(old core.StatefulWidget) {
	w := s.widget()
	if !w.connected.connector.opts.pure || !props.ShallowEqual(w.props, s.ownProps) {
		s.ownPropsChanged = true
	}
	s.ownProps = w.props
	if w.connected.connector.generation != s.generation {
		s.rewire(w.connected)
	}
}

// rewire switches the instance to a connector from a newer generation.
func (s *adapterState) rewire(next *Connected) {
	glog.V(2).Infof("redux: %s rewired to generation %d", s.DisplayName(), next.connector.generation)
	s.connected = next
	s.generation = next.connector.generation
	if !s.connector().shouldSubscribe {
		s.tryUnsubscribe()
	}
	s.clearCache()
	s.trySubscribe()
}

func (s *adapterState) clearCache() {
	s.memo = &memo{}
	s.ownPropsChanged = true
	s.storeStateChanged = true
	s.statePropsPrecalculated = false
	s.precalcErr = nil
}

func (s *adapterState) handleChange() {
	if !s.isSubscribed() || s.memo == nil {
		return
	}

	storeState := s.store.GetState()
	pure := s.connector().opts.pure
	if pure && props.Identical(s.storeState, storeState) {
		return
	}

	if pure && !s.stateDependsOnOwnProps() {
		var changed bool
		perr := errors.Capture("redux.handleChange", func() {
			changed = s.updateStatePropsIfNeeded()
		})
		if perr == nil && !changed {
			s.storeState = storeState
			glog.V(3).Infof("redux: %s skipped update, state props unchanged", s.DisplayName())
			return
		}
		if perr != nil {
			errors.Report(&errors.BindingError{
				Op:         "redux.handleChange",
				Kind:       errors.KindSelector,
				Component:  s.DisplayName(),
				Err:        perr,
				StackTrace: perr.StackTrace,
			})
		}
		s.precalcErr = perr
		s.statePropsPrecalculated = true
	}

	s.storeStateChanged = true
	s.SetState(func() {
		s.storeState = storeState
	})
}

func (s *adapterState) ShouldRebuild() bool {
	return !s.connector().opts.pure || s.ownPropsChanged || s.storeStateChanged
}

func (s *adapterState) Build(ctx core.BuildContext) core.Widget {
	ownPropsChanged := s.ownPropsChanged
	storeStateChanged := s.storeStateChanged
	precalculated := s.statePropsPrecalculated
	precalcErr := s.precalcErr
	rendered := s.memo.rendered

	s.ownPropsChanged = false
	s.storeStateChanged = false
	s.statePropsPrecalculated = false
	s.precalcErr = nil

	if precalcErr != nil {
		panic(precalcErr)
	}

	c := s.connector()
	shouldUpdateState := true
	shouldUpdateDispatch := true
	if c.opts.pure && rendered != nil {
		shouldUpdateState = storeStateChanged || (ownPropsChanged && s.stateDependsOnOwnProps())
		shouldUpdateDispatch = ownPropsChanged && s.dispatchDependsOnOwnProps()
	}

	stateChanged := false
	dispatchChanged := false
	if precalculated {
		stateChanged = true
	} else if shouldUpdateState {
		stateChanged = s.updateStatePropsIfNeeded()
	}
	if shouldUpdateDispatch {
		dispatchChanged = s.updateDispatchPropsIfNeeded()
	}

	mergedChanged := false
	if stateChanged || dispatchChanged || ownPropsChanged {
		mergedChanged = s.updateMergedPropsIfNeeded()
	}

	if !mergedChanged && rendered != nil {
		return rendered
	}

	if c.opts.withRef {
		if s.ref == nil {
			s.ref = &wrappedRef{}
		}
	} else {
		s.ref = nil
	}
	rendered = &WrappedWidget{
		component: s.connected.component,
		props:     s.memo.merged.value,
		ref:       s.ref,
	}
	s.memo.rendered = rendered
	return rendered
}

func (s *adapterState) Dispose() {
	s.tryUnsubscribe()
	s.memo = nil
	s.storeState = nil
	if s.ref != nil {
		s.ref.element = nil
	}
	s.StateBase.Dispose()
}

func (s *adapterState) stateDependsOnOwnProps() bool {
	return s.memo.mapState != nil && s.memo.mapState.dependsOnOwnProps
}

func (s *adapterState) dispatchDependsOnOwnProps() bool {
	return s.memo.mapDispatch != nil && s.memo.mapDispatch.dependsOnOwnProps
}

func (s *adapterState) computeStateProps() props.Props {
	if s.memo.mapState == nil {
		s.memo.mapState = s.resolveMapState()
	}
	var own props.Props
	if s.memo.mapState.dependsOnOwnProps {
		own = s.ownProps
	}
	stateProps := s.memo.mapState.fn(s.store.GetState(), own)
	s.checkShape("MapState", stateProps)
	return stateProps
}

// resolveMapState materializes a factory on first use. The factory sees
// the current state and own props regardless of what the resolved selector
// declares.
func (s *adapterState) resolveMapState() *resolvedState {
	selector := s.connector().mapState
	if selector.Factory == nil {
		return &resolvedState{fn: selector.Func, dependsOnOwnProps: selector.DependsOnOwnProps}
	}
	inner := selector.Factory(s.store.GetState(), s.ownProps)
	if inner == nil || inner.Func == nil {
		if core.DebugMode {
			errors.Warn("redux.MapState", errors.KindShape,
				"MapState factory in %s must return a MapState with a Func", s.DisplayName())
		}
		return &resolvedState{fn: emptyStateProps}
	}
	return &resolvedState{fn: inner.Func, dependsOnOwnProps: inner.DependsOnOwnProps}
}

func (s *adapterState) computeDispatchProps() props.Props {
	if s.memo.mapDispatch == nil {
		s.memo.mapDispatch = s.resolveMapDispatch()
	}
	var own props.Props
	if s.memo.mapDispatch.dependsOnOwnProps {
		own = s.ownProps
	}
	dispatchProps := s.memo.mapDispatch.fn(s.store.Dispatch, own)
	s.checkShape("MapDispatch", dispatchProps)
	return dispatchProps
}

func (s *adapterState) resolveMapDispatch() *resolvedDispatch {
	selector := s.connector().mapDispatch
	if selector.Factory == nil {
		return &resolvedDispatch{fn: selector.Func, dependsOnOwnProps: selector.DependsOnOwnProps}
	}
	inner := selector.Factory(s.store.Dispatch, s.ownProps)
	if inner == nil || inner.Func == nil {
		if core.DebugMode {
			errors.Warn("redux.MapDispatch", errors.KindShape,
				"MapDispatch factory in %s must return a MapDispatch with a Func", s.DisplayName())
		}
		return &resolvedDispatch{fn: defaultDispatchProps}
	}
	return &resolvedDispatch{fn: inner.Func, dependsOnOwnProps: inner.DependsOnOwnProps}
}

func (s *adapterState) computeMergedProps() props.Props {
	merged := s.connector().merge(s.memo.state.value, s.memo.dispatch.value, s.ownProps)
	s.checkShape("Merge", merged)
	return merged
}

func (s *adapterState) updateStatePropsIfNeeded() bool {
	next := s.computeStateProps()
	if s.memo.state.computed && props.ShallowEqual(next, s.memo.state.value) {
		return false
	}
	s.memo.state = stage{value: next, computed: true}
	return true
}

func (s *adapterState) updateDispatchPropsIfNeeded() bool {
	next := s.computeDispatchProps()
	if s.memo.dispatch.computed && props.ShallowEqual(next, s.memo.dispatch.value) {
		return false
	}
	s.memo.dispatch = stage{value: next, computed: true}
	return true
}

func (s *adapterState) updateMergedPropsIfNeeded() bool {
	next := s.computeMergedProps()
	c := s.connector()
	checkMergedEquals := c.opts.pure && c.customMerge
	if s.memo.merged.computed && checkMergedEquals && props.ShallowEqual(next, s.memo.merged.value) {
		return false
	}
	s.memo.merged = stage{value: next, computed: true}
	return true
}

func (s *adapterState) checkShape(method string, p props.Props) {
	if core.DebugMode && !props.IsPlain(p) {
		errors.Warn("redux."+method, errors.KindShape,
			"%s in %s must return a plain props map. Instead received %#v.", method, s.DisplayName(), p)
	}
}
