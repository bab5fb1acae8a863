// Package media drives a native media element and folds its asynchronous
// callbacks into a single canonical playback state.
package media

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/go-drift/domhost/pkg/dom"
	"github.com/go-drift/domhost/pkg/errors"
	"github.com/go-drift/domhost/pkg/log"
	"github.com/go-drift/domhost/pkg/metrics"
	"github.com/go-drift/domhost/pkg/platform"
	"github.com/rs/zerolog"
	"github.com/samber/mo"
)

var (
	// ErrDestroyed is returned by calls made after Destroy.
	ErrDestroyed = stderrors.New("media: player destroyed")

	// ErrInvalidVolume is returned for volumes outside [0, 1].
	ErrInvalidVolume = stderrors.New("media: volume out of range")
)

// Player owns one media element and the StateHandler fed by its callbacks.
// Like the element it wraps, a Player is used from the UI thread only.
type Player struct {
	el       platform.MediaElement
	handler  *StateHandler
	listener func(PlaybackState)
	logger   zerolog.Logger
	metrics  *metrics.Metrics

	endTime    mo.Option[time.Duration]
	configured bool
	destroyed  bool
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithListener sets the function notified on every emitted transition.
func WithListener(fn func(PlaybackState)) PlayerOption {
	return func(p *Player) { p.listener = fn }
}

// WithLogger replaces the default "media" component logger.
func WithLogger(l zerolog.Logger) PlayerOption {
	return func(p *Player) { p.logger = l }
}

// WithMetrics records emitted transitions.
func WithMetrics(m *metrics.Metrics) PlayerOption {
	return func(p *Player) { p.metrics = m }
}

// NewPlayer wraps el. The player starts Idle; callbacks are not wired until
// Configure.
func NewPlayer(el platform.MediaElement, opts ...PlayerOption) *Player {
	p := &Player{
		el:      el,
		logger:  log.WithComponent("media"),
		endTime: mo.None[time.Duration](),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.handler = NewStateHandler(PlaybackStateIdle, p.emit)
	return p
}

func (p *Player) emit(state PlaybackState) {
	p.metrics.ObserveTransition(state.String())
	p.logger.Debug().Str("state", state.String()).Msg("playback state emitted")
	if p.listener != nil {
		p.listener(state)
	}
}

// Configure attaches the element under parent with the given fit, installs
// the platform callbacks and moves to Idle. Calling it again re-attaches and
// re-applies the fit without installing the callbacks twice.
func (p *Player) Configure(parent dom.Node, fit FitMode) error {
	if p.destroyed {
		return ErrDestroyed
	}
	if fit != FitContain && fit != FitCover {
		return fmt.Errorf("media: unsupported fit mode %q", fit)
	}

	node := p.el.Node()
	node.SetStyle("object-fit", string(fit))
	node.SetStyle("width", "100%")
	node.SetStyle("height", "100%")
	if parent != nil {
		parent.AppendChild(node)
	}

	if !p.configured {
		p.bind(platform.EventPlay, p.onPlaying)
		p.bind(platform.EventPlaying, p.onPlaying)
		p.bind(platform.EventEnded, p.onEnded)
		p.bind(platform.EventPause, p.onPause)
		p.bind(platform.EventError, p.onError)
		p.bind(platform.EventLoadedData, p.onLoadedData)
		p.bind(platform.EventTimeUpdate, p.onTimeUpdate)
		p.configured = true
	}

	p.handler.TransitionToState(PlaybackStateIdle, EmitDefault)
	return nil
}

// bind installs fn for event. The closure captures p explicitly and hops to
// the UI thread before touching player state.
func (p *Player) bind(event platform.MediaEvent, fn func()) {
	op := "media.Player." + string(event)
	p.el.On(event, func() {
		platform.Dispatch(func() {
			defer errors.Recover(op)
			fn()
		})
	})
}

func (p *Player) onPlaying() {
	p.handler.TransitionToState(PlaybackStatePlaying, EmitDefault)
}

func (p *Player) onEnded() {
	p.handler.TransitionToState(PlaybackStateEnded, EmitDefault)
}

// A pause can be triggered by the user while the model already believes it
// is paused; it must surface regardless.
func (p *Player) onPause() {
	p.handler.TransitionToState(PlaybackStatePaused, EmitAlways)
}

func (p *Player) onError() {
	var cause error = &platform.MediaError{Code: platform.ErrCodePlaybackFailed}
	if me := p.el.LastError(); me != nil {
		cause = me
	}
	errors.Report(&errors.HostError{
		Op:   "media.Player.onError",
		Kind: errors.KindPlayback,
		Err:  cause,
	})
	p.handler.TransitionToState(PlaybackStateError, EmitDefault)
}

func (p *Player) onLoadedData() {
	p.handler.TransitionToState(PlaybackStateLoaded, EmitDefault)
}

// onTimeUpdate enforces the end-time marker and re-asserts Playing on every
// tick, since some platforms drop the "playing" callback. Ticks that arrive
// after a pause are stale and ignored.
func (p *Player) onTimeUpdate() {
	if p.handler.IsState(PlaybackStatePaused) {
		return
	}
	if end, ok := p.endTime.Get(); ok && p.el.CurrentTime() >= end {
		p.logger.Debug().Dur("end_time", end).Msg("end time reached, pausing")
		if p.el.Paused() {
			// No pause callback follows for an element that is already paused.
			p.handler.TransitionToState(PlaybackStatePaused, EmitDefault)
			return
		}
		// The pause callback carries the transition.
		p.el.Pause()
		return
	}
	p.handler.TransitionToState(PlaybackStatePlaying, EmitAlways)
}

// Load points the element at url and reloads it. Loading the url that is
// already the source does nothing.
func (p *Player) Load(id, url string) error {
	if p.destroyed {
		return ErrDestroyed
	}
	if url == p.el.Source() {
		return nil
	}
	p.logger.Debug().Str("component_id", id).Str("url", url).Msg("loading media")
	p.el.SetSource(url)
	p.el.Load()
	return nil
}

// Play loads url if it is not the current source, seeks forward to offset
// when offset is ahead of the current position, and starts playback. It
// never seeks backwards, so a redundant Play does not rewind. The returned
// future settles with the platform's answer to the play request.
func (p *Player) Play(id, url string, offset time.Duration) *mo.Future[struct{}] {
	if p.destroyed {
		return settled(ErrDestroyed)
	}
	if url != "" {
		if err := p.Load(id, url); err != nil {
			return settled(err)
		}
	}
	if current := p.el.CurrentTime(); offset > current {
		p.logger.Debug().Str("component_id", id).Dur("from", current).Dur("to", offset).Msg("seeking forward")
		p.el.Seek(offset)
	}
	return p.el.Play()
}

// Pause pauses playback. The state moves to Paused once the platform
// confirms through its pause callback.
func (p *Player) Pause() *mo.Future[struct{}] {
	if p.destroyed {
		return settled(ErrDestroyed)
	}
	p.el.Pause()
	return settled(nil)
}

// SetVolume sets the volume in [0, 1].
func (p *Player) SetVolume(volume float64) error {
	if p.destroyed {
		return ErrDestroyed
	}
	if volume < 0 || volume > 1 {
		return ErrInvalidVolume
	}
	p.el.SetVolume(volume)
	return nil
}

// Mute silences the element without touching its volume.
func (p *Player) Mute() {
	if !p.destroyed {
		p.el.SetMuted(true)
	}
}

// Unmute restores sound.
func (p *Player) Unmute() {
	if !p.destroyed {
		p.el.SetMuted(false)
	}
}

// SetEndTimeInSeconds sets the position at which playback is paused.
func (p *Player) SetEndTimeInSeconds(seconds float64) {
	p.endTime = mo.Some(time.Duration(seconds * float64(time.Second)))
}

// ClearEndTime removes the end-time marker.
func (p *Player) ClearEndTime() {
	p.endTime = mo.None[time.Duration]()
}

// EndTime returns the end-time marker, if set.
func (p *Player) EndTime() (time.Duration, bool) {
	return p.endTime.Get()
}

// CurrentPlaybackPositionInSeconds returns the element's playback position.
func (p *Player) CurrentPlaybackPositionInSeconds() float64 {
	return p.el.CurrentTime().Seconds()
}

// DurationInSeconds returns the media duration, or 0 when unknown.
func (p *Player) DurationInSeconds() float64 {
	return p.el.Duration().Seconds()
}

// MediaState returns the canonical playback state.
func (p *Player) MediaState() PlaybackState {
	return p.handler.State()
}

// Element returns the wrapped media element.
func (p *Player) Element() platform.MediaElement {
	return p.el
}

// Destroy unbinds the callbacks, pauses playback, clears the source and
// detaches the element from the DOM. Callbacks fired by the teardown itself
// never reach the listener. It cannot be undone; repeated calls are no-ops.
func (p *Player) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.el.RemoveListeners()
	p.el.Pause()
	p.el.SetSource("")
	p.el.Load()
	dom.Detach(p.el.Node())
	p.logger.Debug().Msg("player destroyed")
}

func settled(err error) *mo.Future[struct{}] {
	return mo.NewFuture(func(resolve func(struct{}), reject func(error)) {
		if err != nil {
			reject(err)
			return
		}
		resolve(struct{}{})
	})
}
