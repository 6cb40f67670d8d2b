// Package store defines the store contract consumed by the bindings and a
// minimal synchronous reference implementation of it.
//
// The bindings only ever call GetState, Dispatch and Subscribe; any type with
// those three methods can be handed to a Provider. [New] exists so that the
// contract can be exercised in tests and small programs without pulling in a
// full state container.
package store

import "sync"

// Listener is notified after every dispatched action.
type Listener func()

// DispatchFunc sends an action to a store and returns the store's result.
type DispatchFunc func(action any) any

// Store is the contract consumed by the bindings.
type Store interface {
	// GetState returns the current state snapshot. It must not mutate.
	GetState() any
	// Dispatch applies action and synchronously notifies every listener
	// before returning. Listeners may dispatch again.
	Dispatch(action any) any
	// Subscribe registers listener and returns an idempotent unsubscribe
	// function.
	Subscribe(listener func()) (unsubscribe func())
}

// Reducer computes the next state from the current state and an action.
// Returning the same value signals that nothing changed.
type Reducer func(state any, action any) any

// Action is a conventional action shape. Stores accept any value as an
// action; this type is only a convenience.
type Action struct {
	Type    string
	Payload any
}

// Basic is a reducer-driven store. It is not safe for concurrent use; like
// the element tree it feeds, it belongs to a single goroutine.
type Basic struct {
	reducer   Reducer
	state     any
	listeners []*subscription
	nextID    uint64
}

type subscription struct {
	id       uint64
	listener func()
	active   bool
}

var _ Store = (*Basic)(nil)

// New creates a store holding initial and reducing actions with reducer.
func New(reducer Reducer, initial any) *Basic {
	return &Basic{reducer: reducer, state: initial}
}

// GetState returns the current state.
func (s *Basic) GetState() any {
	return s.state
}

// Dispatch reduces action into the state and notifies listeners. Listeners
// registered during the notification pass are first called on the next
// dispatch; listeners removed during the pass are not called again.
func (s *Basic) Dispatch(action any) any {
	if s.reducer != nil {
		s.state = s.reducer(s.state, action)
	}
	snapshot := make([]*subscription, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, sub := range snapshot {
		if sub.active {
			sub.listener()
		}
	}
	return action
}

// Subscribe registers listener.
func (s *Basic) Subscribe(listener func()) func() {
	s.nextID++
	sub := &subscription{id: s.nextID, listener: listener, active: true}
	s.listeners = append(s.listeners, sub)
	var once sync.Once
	return func() {
		once.Do(func() {
			sub.active = false
			for i, existing := range s.listeners {
				if existing.id == sub.id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					break
				}
			}
		})
	}
}

// ListenerCount returns the number of active subscriptions.
func (s *Basic) ListenerCount() int {
	return len(s.listeners)
}

// ReplaceState swaps the state without dispatching or notifying.
func (s *Basic) ReplaceState(state any) {
	s.state = state
}
