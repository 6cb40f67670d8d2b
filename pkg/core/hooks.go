package core

import "sync"

// UseSubscription registers listener through subscribe and ties the
// subscription to the state's lifetime. The returned function cancels the
// subscription early; it is idempotent and also runs on dispose.
//
// Example:
//
//	func (s *clockState) InitState() {
//	    s.cancel = core.UseSubscription(s, s.store.Subscribe, s.onChange)
//	}
func UseSubscription(s stateBase, subscribe func(listener func()) func(), listener func()) func() {
	base := s.state()
	unsubscribe := subscribe(listener)
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			if unsubscribe != nil {
				unsubscribe()
			}
		})
	}
	base.OnDispose(cancel)
	return cancel
}
