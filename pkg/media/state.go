package media

// PlaybackState is the canonical state of a media player. Exactly one state
// is current at any time.
type PlaybackState int

const (
	// PlaybackStateIdle indicates the player has been configured but no
	// media data is available yet.
	PlaybackStateIdle PlaybackState = iota

	// PlaybackStateLoaded indicates the first frame of the media has loaded.
	PlaybackStateLoaded

	// PlaybackStatePlaying indicates the player is actively playing media.
	PlaybackStatePlaying

	// PlaybackStatePaused indicates the player is paused and can be resumed.
	PlaybackStatePaused

	// PlaybackStateEnded indicates playback has reached the end of the media.
	PlaybackStateEnded

	// PlaybackStateError indicates the platform reported a playback failure.
	// Recovery, such as reloading, is up to the listener.
	PlaybackStateError
)

// String returns a human-readable label for the playback state.
func (s PlaybackState) String() string {
	switch s {
	case PlaybackStateIdle:
		return "Idle"
	case PlaybackStateLoaded:
		return "Loaded"
	case PlaybackStatePlaying:
		return "Playing"
	case PlaybackStatePaused:
		return "Paused"
	case PlaybackStateEnded:
		return "Ended"
	case PlaybackStateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// EmitBehavior controls whether a transition request that names the current
// state still notifies the listener.
type EmitBehavior int

const (
	// EmitDefault suppresses the notification when the requested state is
	// already current.
	EmitDefault EmitBehavior = iota

	// EmitAlways notifies even when the state does not change. Platform
	// callbacks that fire redundantly but must still surface use it.
	EmitAlways
)
