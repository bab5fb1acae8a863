package media

import "sync"

// StateHandler tracks the canonical playback state and notifies a listener
// of emitted transitions. Any state may follow any other; deciding which
// transition a platform callback maps to is the caller's job.
type StateHandler struct {
	mu       sync.Mutex
	state    PlaybackState
	listener func(PlaybackState)
}

// NewStateHandler returns a handler whose current state is initial. The
// listener may be nil.
func NewStateHandler(initial PlaybackState, listener func(PlaybackState)) *StateHandler {
	return &StateHandler{state: initial, listener: listener}
}

// TransitionToState makes next the current state. With EmitDefault a request
// for the state that already holds is a no-op; otherwise the listener is
// called with next, outside the handler's lock. It reports whether a
// notification was emitted.
func (h *StateHandler) TransitionToState(next PlaybackState, emit EmitBehavior) bool {
	h.mu.Lock()
	if next == h.state && emit == EmitDefault {
		h.mu.Unlock()
		return false
	}
	h.state = next
	cb := h.listener
	h.mu.Unlock()

	if cb != nil {
		cb(next)
	}
	return true
}

// IsState reports whether candidate is the current state.
func (h *StateHandler) IsState(candidate PlaybackState) bool {
	return h.State() == candidate
}

// State returns the current state.
func (h *StateHandler) State() PlaybackState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}
