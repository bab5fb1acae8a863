package platform

import "testing"

func TestDispatchRunsInlineWithoutDispatcher(t *testing.T) {
	RegisterDispatch(nil)

	ran := false
	if !Dispatch(func() { ran = true }) {
		t.Fatal("Dispatch returned false")
	}
	if !ran {
		t.Error("callback should run inline when no dispatcher is registered")
	}
}

func TestDispatchUsesRegisteredDispatcher(t *testing.T) {
	var queued []func()
	RegisterDispatch(func(cb func()) { queued = append(queued, cb) })
	t.Cleanup(func() { RegisterDispatch(nil) })

	ran := false
	Dispatch(func() { ran = true })
	if ran {
		t.Fatal("callback should be queued, not run")
	}
	if len(queued) != 1 {
		t.Fatalf("queued = %d, want 1", len(queued))
	}
	queued[0]()
	if !ran {
		t.Error("queued callback did not run")
	}
}

func TestDispatchNilCallback(t *testing.T) {
	SetupTestDispatch(t.Cleanup)
	if Dispatch(nil) {
		t.Error("Dispatch(nil) should return false")
	}
}
