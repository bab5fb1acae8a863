//go:build js && wasm

package platform

import (
	"math"
	"syscall/js"
	"time"

	"github.com/go-drift/domhost/pkg/dom"
	"github.com/samber/mo"
)

// BrowserMediaElement wraps an HTMLMediaElement of the live page.
type BrowserMediaElement struct {
	node      *dom.JSNode
	el        js.Value
	listeners []browserListener
}

type browserListener struct {
	event MediaEvent
	fn    js.Func
}

var _ MediaElement = (*BrowserMediaElement)(nil)

// NewBrowserMediaElement creates a <video> element in doc.
func NewBrowserMediaElement(doc *dom.BrowserDocument) *BrowserMediaElement {
	node := doc.CreateElement("video").(*dom.JSNode)
	node.Value.Set("playsInline", true)
	return &BrowserMediaElement{node: node, el: node.Value}
}

// Node implements MediaElement.
func (m *BrowserMediaElement) Node() dom.Node { return m.node }

// Source implements MediaElement.
func (m *BrowserMediaElement) Source() string {
	if !m.el.Call("hasAttribute", "src").Bool() {
		return ""
	}
	return m.el.Call("getAttribute", "src").String()
}

// SetSource implements MediaElement.
func (m *BrowserMediaElement) SetSource(url string) {
	if url == "" {
		m.el.Call("removeAttribute", "src")
		return
	}
	m.el.Call("setAttribute", "src", url)
}

// Load implements MediaElement.
func (m *BrowserMediaElement) Load() { m.el.Call("load") }

// Play implements MediaElement. The returned future follows the promise
// returned by HTMLMediaElement.play().
func (m *BrowserMediaElement) Play() *mo.Future[struct{}] {
	promise := m.el.Call("play")
	return mo.NewFuture(func(resolve func(struct{}), reject func(error)) {
		if promise.IsUndefined() || promise.IsNull() {
			resolve(struct{}{})
			return
		}
		var onResolve, onReject js.Func
		release := func() {
			onResolve.Release()
			onReject.Release()
		}
		onResolve = js.FuncOf(func(js.Value, []js.Value) any {
			release()
			resolve(struct{}{})
			return nil
		})
		onReject = js.FuncOf(func(_ js.Value, args []js.Value) any {
			release()
			reject(promiseError(args))
			return nil
		})
		promise.Call("then", onResolve, onReject)
	})
}

func promiseError(args []js.Value) error {
	if len(args) == 0 {
		return &MediaError{Code: ErrCodePlaybackFailed}
	}
	reason := args[0]
	if reason.Type() == js.TypeObject {
		return &MediaError{
			Code:    ErrCodePlaybackFailed,
			Message: reason.Get("name").String() + ": " + reason.Get("message").String(),
		}
	}
	return &MediaError{Code: ErrCodePlaybackFailed, Message: reason.String()}
}

// Pause implements MediaElement.
func (m *BrowserMediaElement) Pause() { m.el.Call("pause") }

// Paused implements MediaElement.
func (m *BrowserMediaElement) Paused() bool { return m.el.Get("paused").Bool() }

// CurrentTime implements MediaElement.
func (m *BrowserMediaElement) CurrentTime() time.Duration {
	return secondsToDuration(m.el.Get("currentTime").Float())
}

// Seek implements MediaElement.
func (m *BrowserMediaElement) Seek(position time.Duration) {
	m.el.Set("currentTime", position.Seconds())
}

// Duration implements MediaElement. Unknown or unbounded durations report 0.
func (m *BrowserMediaElement) Duration() time.Duration {
	d := m.el.Get("duration")
	if d.Type() != js.TypeNumber {
		return 0
	}
	return secondsToDuration(d.Float())
}

// Volume implements MediaElement.
func (m *BrowserMediaElement) Volume() float64 { return m.el.Get("volume").Float() }

// SetVolume implements MediaElement.
func (m *BrowserMediaElement) SetVolume(volume float64) { m.el.Set("volume", volume) }

// Muted implements MediaElement.
func (m *BrowserMediaElement) Muted() bool { return m.el.Get("muted").Bool() }

// SetMuted implements MediaElement.
func (m *BrowserMediaElement) SetMuted(muted bool) { m.el.Set("muted", muted) }

// LastError implements MediaElement.
func (m *BrowserMediaElement) LastError() *MediaError {
	e := m.el.Get("error")
	if e.IsNull() || e.IsUndefined() {
		return nil
	}
	return mediaErrorFromHTMLCode(e.Get("code").Int(), e.Get("message").String())
}

// On implements MediaElement.
func (m *BrowserMediaElement) On(event MediaEvent, fn func()) {
	f := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	m.el.Call("addEventListener", string(event), f)
	m.listeners = append(m.listeners, browserListener{event: event, fn: f})
}

// RemoveListeners implements MediaElement.
func (m *BrowserMediaElement) RemoveListeners() {
	for _, l := range m.listeners {
		m.el.Call("removeEventListener", string(l.event), l.fn)
		l.fn.Release()
	}
	m.listeners = nil
}

// mediaErrorFromHTMLCode maps HTMLMediaElement.error.code values.
func mediaErrorFromHTMLCode(code int, message string) *MediaError {
	switch code {
	case 1:
		return &MediaError{Code: ErrCodeAborted, Message: message}
	case 2, 4:
		return &MediaError{Code: ErrCodeSourceError, Message: message}
	case 3:
		return &MediaError{Code: ErrCodeDecoderError, Message: message}
	default:
		return &MediaError{Code: ErrCodePlaybackFailed, Message: message}
	}
}

func secondsToDuration(s float64) time.Duration {
	if math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
