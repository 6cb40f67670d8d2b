package core

import "testing"

// fakeSource is a minimal subscribable for hook tests.
type fakeSource struct {
	listeners map[int]func()
	next      int
	unsubs    int
}

func (f *fakeSource) subscribe(listener func()) func() {
	if f.listeners == nil {
		f.listeners = make(map[int]func())
	}
	id := f.next
	f.next++
	f.listeners[id] = listener
	return func() {
		f.unsubs++
		delete(f.listeners, id)
	}
}

func TestUseSubscription_CancelledOnDispose(t *testing.T) {
	base := &StateBase{}
	source := &fakeSource{}

	UseSubscription(base, source.subscribe, func() {})
	if len(source.listeners) != 1 {
		t.Fatalf("Expected 1 listener, got %d", len(source.listeners))
	}

	base.Dispose()
	if len(source.listeners) != 0 {
		t.Errorf("Expected 0 listeners after dispose, got %d", len(source.listeners))
	}
}

func TestUseSubscription_CancelIsIdempotent(t *testing.T) {
	base := &StateBase{}
	source := &fakeSource{}

	cancel := UseSubscription(base, source.subscribe, func() {})
	cancel()
	cancel()
	base.Dispose()

	if source.unsubs != 1 {
		t.Errorf("unsubscribe ran %d times, want 1", source.unsubs)
	}
}

func TestStateBase_DisposersRunInReverse(t *testing.T) {
	base := &StateBase{}
	var order []int
	base.OnDispose(func() { order = append(order, 1) })
	unregister := base.OnDispose(func() { order = append(order, 2) })
	base.OnDispose(func() { order = append(order, 3) })
	unregister()

	base.Dispose()
	if len(order) != 2 || order[0] != 3 || order[1] != 1 {
		t.Errorf("disposers ran %v, want [3 1]", order)
	}
}

func TestStateBase_SetStateAfterDispose(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	ran := false
	base.SetState(func() { ran = true })
	if ran {
		t.Error("SetState after dispose should be a no-op")
	}
}

func TestStateBase_OnDisposeAfterDisposeRunsImmediately(t *testing.T) {
	base := &StateBase{}
	base.Dispose()

	ran := false
	base.OnDispose(func() { ran = true })
	if !ran {
		t.Error("cleanup registered after dispose should run immediately")
	}
}
