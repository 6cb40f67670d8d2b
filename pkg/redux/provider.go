package redux

import (
	"sync/atomic"

	"github.com/go-drift/redux/pkg/core"
	"github.com/go-drift/redux/pkg/errors"
	"github.com/go-drift/redux/pkg/props"
	"github.com/go-drift/redux/pkg/store"
)

// Provider makes a store available to every connected widget below it.
//
// The store is captured when the provider mounts and never changes for the
// lifetime of that provider; handing a different store to a mounted
// provider only produces a one-time warning in debug mode.
//
//	root := redux.Provider{Store: s, Child: app}
type Provider struct {
	Store store.Store
	Child core.Widget

	// StoreKey and SubscriptionKey name the published entries. Empty means
	// DefaultStoreKey and StoreKey+"Subscription".
	StoreKey        string
	SubscriptionKey string

	children []core.Widget
	counted  bool
}

// NewProvider builds a provider from a child list. Exactly one child is
// expected; any other count is reported as a warning in debug mode and the
// first child, if any, is rendered.
func NewProvider(s store.Store, children ...core.Widget) Provider {
	p := Provider{Store: s, children: children, counted: true}
	if len(children) > 0 {
		p.Child = children[0]
	}
	return p
}

// CreateProvider returns a provider constructor that publishes its store
// under storeKey. Connected widgets select it with the StoreKey option.
// An empty subscriptionKey defaults to storeKey+"Subscription".
func CreateProvider(storeKey, subscriptionKey string) func(s store.Store, children ...core.Widget) Provider {
	return func(s store.Store, children ...core.Widget) Provider {
		p := NewProvider(s, children...)
		p.StoreKey = storeKey
		p.SubscriptionKey = subscriptionKey
		return p
	}
}

func (p Provider) CreateElement() core.Element { return core.NewStatefulElement(p, nil) }

func (p Provider) Key() any { return nil }

func (p Provider) CreateState() core.State { return &providerState{} }

func (p Provider) storeKey() string {
	if p.StoreKey == "" {
		return DefaultStoreKey
	}
	return p.StoreKey
}

func (p Provider) subscriptionKey() string {
	if p.SubscriptionKey == "" {
		return p.storeKey() + "Subscription"
	}
	return p.SubscriptionKey
}

func (p Provider) childCount() int {
	if p.counted {
		return len(p.children)
	}
	if p.Child == nil {
		return 0
	}
	return 1
}

type providerState struct {
	core.StateBase
	store store.Store
}

func (s *providerState) InitState() {
	p := s.Widget().(Provider)
	s.store = p.Store
	if core.DebugMode && p.Store == nil {
		errors.Warn("redux.Provider", errors.KindShape, "Provider requires a store")
	}
}

func (s *providerState) DidUpdateWidget(old core.StatefulWidget) {
	p := s.Widget().(Provider)
	if core.DebugMode && !props.Identical(s.store, p.Store) {
		warnAboutReceivingStore()
	}
}

func (s *providerState) Build(ctx core.BuildContext) core.Widget {
	p := s.Widget().(Provider)
	if core.DebugMode {
		if n := p.childCount(); n != 1 {
			errors.Warn("redux.Provider", errors.KindShape, "Provider expects exactly one child, got %d", n)
		}
	}
	return storeScope{
		storeKey:        p.storeKey(),
		subscriptionKey: p.subscriptionKey(),
		store:           s.store,
		child:           p.Child,
	}
}

var didWarnAboutReceivingStore atomic.Bool

func warnAboutReceivingStore() {
	if didWarnAboutReceivingStore.Swap(true) {
		return
	}
	errors.Warn("redux.Provider", errors.KindInvariant,
		"Provider does not support changing the store on the fly; the store it was mounted with stays in use")
}

// storeScope publishes the provider's store to descendants.
type storeScope struct {
	core.InheritedBase
	storeKey        string
	subscriptionKey string
	store           store.Store
	child           core.Widget
}

func (s storeScope) ChildWidget() core.Widget { return s.child }

// UpdateShouldNotify is always false: the store a provider publishes is
// fixed at mount.
func (s storeScope) UpdateShouldNotify(core.InheritedWidget) bool { return false }

func findScope(ctx core.BuildContext, match func(storeScope) bool) (storeScope, bool) {
	found := ctx.FindAncestor(func(el core.Element) bool {
		inherited, ok := el.(*core.InheritedElement)
		if !ok {
			return false
		}
		scope, ok := inherited.Value().(storeScope)
		return ok && match(scope)
	})
	if found == nil {
		return storeScope{}, false
	}
	return found.(*core.InheritedElement).Value().(storeScope), true
}

// StoreOf returns the store published under key by the nearest enclosing
// provider. An empty key means DefaultStoreKey.
func StoreOf(ctx core.BuildContext, key string) (store.Store, bool) {
	if key == "" {
		key = DefaultStoreKey
	}
	scope, ok := findScope(ctx, func(s storeScope) bool { return s.storeKey == key })
	if !ok || scope.store == nil {
		return nil, false
	}
	return scope.store, true
}

// SubscriptionOf reports whether an enclosing provider publishes key as its
// subscription entry. The entry is reserved and its value is always nil.
func SubscriptionOf(ctx core.BuildContext, key string) (any, bool) {
	_, ok := findScope(ctx, func(s storeScope) bool { return s.subscriptionKey == key })
	return nil, ok
}
