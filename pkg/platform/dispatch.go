package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the function used to schedule callbacks on the UI
// thread. Pass nil to go back to running callbacks inline.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread. With no dispatch
// function registered the callback runs synchronously on the caller, which is
// the UI thread for browser event callbacks. Returns false for a nil
// callback.
func Dispatch(callback func()) bool {
	if callback == nil {
		return false
	}
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil {
		callback()
		return true
	}
	fn(callback)
	return true
}
