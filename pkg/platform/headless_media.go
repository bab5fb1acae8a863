package platform

import (
	"time"

	"github.com/go-drift/domhost/pkg/dom"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

// HeadlessMediaElement is a MediaElement with no decoder behind it. Playback
// never advances on its own: the embedder (a test, the trace command) moves
// the clock with Advance and fires platform callbacks with Emit.
type HeadlessMediaElement struct {
	node      dom.Node
	source    string
	paused    bool
	position  time.Duration
	duration  time.Duration
	volume    float64
	muted     bool
	lastError *MediaError
	listeners map[MediaEvent][]func()

	// PlayErr, when set, makes Play futures reject with it.
	PlayErr error

	loads  int
	plays  int
	pauses int
	seeks  []time.Duration
}

var _ MediaElement = (*HeadlessMediaElement)(nil)

// NewHeadlessMediaElement creates a <video> node in doc and wraps it.
func NewHeadlessMediaElement(doc dom.Document) *HeadlessMediaElement {
	node := doc.CreateElement("video")
	node.SetAttribute("id", "media-"+uuid.NewString())
	return &HeadlessMediaElement{
		node:      node,
		paused:    true,
		volume:    1,
		listeners: make(map[MediaEvent][]func()),
	}
}

// Node implements MediaElement.
func (m *HeadlessMediaElement) Node() dom.Node { return m.node }

// Source implements MediaElement.
func (m *HeadlessMediaElement) Source() string { return m.source }

// SetSource implements MediaElement.
func (m *HeadlessMediaElement) SetSource(url string) {
	m.source = url
	if url == "" {
		m.node.RemoveAttribute("src")
		return
	}
	m.node.SetAttribute("src", url)
}

// Load implements MediaElement.
func (m *HeadlessMediaElement) Load() {
	m.loads++
	m.position = 0
	m.paused = true
	m.lastError = nil
}

// Play implements MediaElement.
func (m *HeadlessMediaElement) Play() *mo.Future[struct{}] {
	m.plays++
	err := m.PlayErr
	if err == nil {
		m.paused = false
	}
	return mo.NewFuture(func(resolve func(struct{}), reject func(error)) {
		if err != nil {
			reject(err)
			return
		}
		resolve(struct{}{})
	})
}

// Pause implements MediaElement. Like a browser element, pausing a playing
// element fires the pause callback.
func (m *HeadlessMediaElement) Pause() {
	m.pauses++
	if m.paused {
		return
	}
	m.paused = true
	m.Emit(EventPause)
}

// Paused implements MediaElement.
func (m *HeadlessMediaElement) Paused() bool { return m.paused }

// CurrentTime implements MediaElement.
func (m *HeadlessMediaElement) CurrentTime() time.Duration { return m.position }

// Seek implements MediaElement.
func (m *HeadlessMediaElement) Seek(position time.Duration) {
	m.seeks = append(m.seeks, position)
	m.position = position
}

// Duration implements MediaElement.
func (m *HeadlessMediaElement) Duration() time.Duration { return m.duration }

// SetDuration sets the reported media duration.
func (m *HeadlessMediaElement) SetDuration(d time.Duration) { m.duration = d }

// Volume implements MediaElement.
func (m *HeadlessMediaElement) Volume() float64 { return m.volume }

// SetVolume implements MediaElement.
func (m *HeadlessMediaElement) SetVolume(volume float64) { m.volume = volume }

// Muted implements MediaElement.
func (m *HeadlessMediaElement) Muted() bool { return m.muted }

// SetMuted implements MediaElement.
func (m *HeadlessMediaElement) SetMuted(muted bool) { m.muted = muted }

// LastError implements MediaElement.
func (m *HeadlessMediaElement) LastError() *MediaError { return m.lastError }

// On implements MediaElement.
func (m *HeadlessMediaElement) On(event MediaEvent, fn func()) {
	m.listeners[event] = append(m.listeners[event], fn)
}

// RemoveListeners implements MediaElement.
func (m *HeadlessMediaElement) RemoveListeners() {
	clear(m.listeners)
}

// Emit fires every callback installed for event, in installation order.
// Play, playing, pause and ended events also update Paused to match.
func (m *HeadlessMediaElement) Emit(event MediaEvent) {
	switch event {
	case EventPlay, EventPlaying:
		m.paused = false
	case EventPause, EventEnded:
		m.paused = true
	}
	for _, fn := range m.listeners[event] {
		fn()
	}
}

// Fail records err as the current media error and fires the error event.
func (m *HeadlessMediaElement) Fail(err *MediaError) {
	m.lastError = err
	m.Emit(EventError)
}

// Advance moves the playback position and fires a time update.
func (m *HeadlessMediaElement) Advance(position time.Duration) {
	m.position = position
	m.Emit(EventTimeUpdate)
}

// ListenerCount returns the number of callbacks installed for event.
func (m *HeadlessMediaElement) ListenerCount(event MediaEvent) int {
	return len(m.listeners[event])
}

// Loads returns how many times Load was called.
func (m *HeadlessMediaElement) Loads() int { return m.loads }

// Plays returns how many times Play was called.
func (m *HeadlessMediaElement) Plays() int { return m.plays }

// Pauses returns how many times Pause was called.
func (m *HeadlessMediaElement) Pauses() int { return m.pauses }

// Seeks returns every position passed to Seek.
func (m *HeadlessMediaElement) Seeks() []time.Duration { return m.seeks }
