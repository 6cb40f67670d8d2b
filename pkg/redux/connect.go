package redux

import (
	"sync/atomic"

	"github.com/go-drift/redux/pkg/core"
	"github.com/go-drift/redux/pkg/props"
)

// Component is a presentational component: a build function from props to
// a widget tree. Statics are copied onto every Connected wrapping it.
type Component struct {
	Name    string
	Build   func(ctx core.BuildContext, p props.Props) core.Widget
	Statics map[string]any
}

func (c *Component) displayName() string {
	if c == nil || c.Name == "" {
		return "Component"
	}
	return c.Name
}

// statics a Connected defines itself and never takes from the component.
var reservedStatics = map[string]bool{
	"DisplayName":      true,
	"WrappedComponent": true,
}

var generations atomic.Uint64

// connector is the configuration shared by every instance of one Connect
// call.
type connector struct {
	mapState        *MapState
	mapDispatch     *MapDispatch
	merge           MergeFunc
	customMerge     bool
	shouldSubscribe bool
	opts            options
	generation      uint64
}

// Connect binds a component to the store. mapState derives props from the
// store state and subscribes the component to changes; nil means no state
// props and no subscription. mapDispatch derives callback props; nil means
// a single "dispatch" prop. merge combines stateProps, dispatchProps and own
// props; nil means [DefaultMerge].
//
//	todoList := redux.Connect(
//	    redux.MapStateOf(func(state any) props.Props {
//	        return props.Props{"todos": state.(State).Todos}
//	    }),
//	    redux.ActionCreators{"toggle": toggleTodo},
//	    nil,
//	)(&TodoList)
//
// Every call to Connect produces a new generation. A mounted connected
// widget that is handed a widget from a newer generation for the same
// component keeps its instance, drops all memoized props and rewires its
// subscription.
func Connect(mapState *MapState, mapDispatch MapDispatcher, merge MergeFunc, opts ...Option) func(*Component) *Connected {
	c := &connector{
		mapState:        mapState,
		shouldSubscribe: mapState != nil && (mapState.Func != nil || mapState.Factory != nil),
		merge:           merge,
		customMerge:     merge != nil,
		opts:            defaultOptions(),
		generation:      generations.Add(1),
	}
	if !c.shouldSubscribe {
		c.mapState = &MapState{Func: emptyStateProps}
	}
	if mapDispatch != nil {
		c.mapDispatch = mapDispatch.mapDispatch()
	}
	if c.mapDispatch == nil || (c.mapDispatch.Func == nil && c.mapDispatch.Factory == nil) {
		c.mapDispatch = &MapDispatch{Func: defaultDispatchProps}
	}
	if c.merge == nil {
		c.merge = DefaultMerge
	}
	for _, opt := range opts {
		opt(&c.opts)
	}

	return func(component *Component) *Connected {
		connected := &Connected{
			connector:   c,
			component:   component,
			displayName: "Connect(" + component.displayName() + ")",
		}
		if component != nil && len(component.Statics) > 0 {
			connected.statics = make(map[string]any, len(component.Statics))
			for key, value := range component.Statics {
				if !reservedStatics[key] {
					connected.statics[key] = value
				}
			}
		}
		return connected
	}
}

// Connected is the result of wrapping a component with Connect.
type Connected struct {
	connector   *connector
	component   *Component
	displayName string
	statics     map[string]any
}

// DisplayName returns "Connect(<component name>)".
func (c *Connected) DisplayName() string { return c.displayName }

// WrappedComponent returns the component passed to the connector.
func (c *Connected) WrappedComponent() *Component { return c.component }

// Static returns a static copied from the wrapped component.
func (c *Connected) Static(key string) (any, bool) {
	value, ok := c.statics[key]
	return value, ok
}

// New returns a widget rendering the connected component with ownProps.
// The store may be supplied directly as the own prop named by the StoreKey
// option instead of through a provider.
func (c *Connected) New(ownProps props.Props) *ConnectWidget {
	return &ConnectWidget{connected: c, props: ownProps}
}

// NewKeyed is New with a widget key.
func (c *Connected) NewKeyed(key any, ownProps props.Props) *ConnectWidget {
	return &ConnectWidget{connected: c, props: ownProps, key: key}
}

// ConnectWidget is a connected component placed in the tree.
type ConnectWidget struct {
	connected *Connected
	props     props.Props
	key       any
}

type connectKey struct {
	component *Component
	key       any
}

func (w *ConnectWidget) CreateElement() core.Element { return core.NewStatefulElement(w, nil) }

// Key includes the wrapped component so that a different component at the
// same position remounts while a rewired connector for the same component
// updates in place.
func (w *ConnectWidget) Key() any {
	return connectKey{component: w.connected.component, key: w.key}
}

func (w *ConnectWidget) CreateState() core.State { return &adapterState{} }

// Props returns the own props.
func (w *ConnectWidget) Props() props.Props { return w.props }

// Connected returns the connector this widget was created from.
func (w *ConnectWidget) Connected() *Connected { return w.connected }

// WrappedWidget renders the wrapped component with the merged props. The
// adapter reuses the same *WrappedWidget while merged props are unchanged,
// which lets the framework skip the subtree entirely.
type WrappedWidget struct {
	component *Component
	props     props.Props
	ref       *wrappedRef
}

type wrappedRef struct {
	element core.Element
}

func (w *WrappedWidget) CreateElement() core.Element { return core.NewStatelessElement(w, nil) }

func (w *WrappedWidget) Key() any { return nil }

func (w *WrappedWidget) Build(ctx core.BuildContext) core.Widget {
	if w.ref != nil {
		w.ref.element, _ = ctx.(core.Element)
	}
	if w.component == nil || w.component.Build == nil {
		return nil
	}
	return w.component.Build(ctx, w.props)
}

// Props returns the merged props handed to the component.
func (w *WrappedWidget) Props() props.Props { return w.props }

// Component returns the wrapped component.
func (w *WrappedWidget) Component() *Component { return w.component }
