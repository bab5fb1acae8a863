// Package platform binds the renderer to the native media and scheduling
// facilities of its host: the browser when built for js/wasm, an in-memory
// stand-in otherwise.
package platform

import (
	"time"

	"github.com/go-drift/domhost/pkg/dom"
	"github.com/samber/mo"
)

// MediaEvent names one of the callback slots a media element exposes.
type MediaEvent string

// The seven media callbacks the player installs.
const (
	EventPlay       MediaEvent = "play"
	EventPlaying    MediaEvent = "playing"
	EventEnded      MediaEvent = "ended"
	EventPause      MediaEvent = "pause"
	EventError      MediaEvent = "error"
	EventLoadedData MediaEvent = "loadeddata"
	EventTimeUpdate MediaEvent = "timeupdate"
)

// MediaEvents returns every callback slot.
func MediaEvents() []MediaEvent {
	return []MediaEvent{
		EventPlay, EventPlaying, EventEnded, EventPause,
		EventError, EventLoadedData, EventTimeUpdate,
	}
}

// MediaElement is a native playback element (an HTML video element in the
// browser). Callbacks registered with On fire asynchronously, carry no
// payload and may arrive in any order relative to method calls.
type MediaElement interface {
	// Node returns the DOM node of the element.
	Node() dom.Node

	Source() string
	SetSource(url string)

	// Load resets the element and starts fetching the current source.
	Load()

	// Play requests playback. The future settles when the platform accepts
	// or refuses the request.
	Play() *mo.Future[struct{}]
	Pause()
	Paused() bool

	CurrentTime() time.Duration
	Seek(position time.Duration)
	Duration() time.Duration

	Volume() float64
	SetVolume(volume float64)
	Muted() bool
	SetMuted(muted bool)

	// LastError returns the failure behind the most recent error event, or
	// nil.
	LastError() *MediaError

	// On installs fn for event. Several callbacks may share a slot.
	On(event MediaEvent, fn func())

	// RemoveListeners uninstalls every callback installed with On.
	RemoveListeners()
}
