package view

import (
	"github.com/go-drift/domhost/pkg/component"
	"github.com/go-drift/domhost/pkg/errors"
	"github.com/go-drift/domhost/pkg/media"
)

// videoView hosts a media element and the player driving it. Emitted
// playback states are forwarded to the renderer's OnMediaState.
type videoView struct {
	base
	player *media.Player
}

func newVideoView(r *Renderer, h component.Handle, parent View) View {
	v := &videoView{base: r.newBase(h, parent, "div")}
	v.node.SetStyle("position", "relative")

	id := h.UniqueID()
	v.player = media.NewPlayer(r.newMediaElement(),
		media.WithLogger(r.logger.With().Str("component_id", id).Logger()),
		media.WithMetrics(r.metrics),
		media.WithListener(func(state media.PlaybackState) {
			if r.onMediaState != nil {
				r.onMediaState(id, state)
			}
		}),
	)

	fit := r.videoFit
	if name := component.String(h, "fit", ""); name != "" {
		parsed, err := media.ParseFitMode(name)
		if err != nil {
			errors.Report(&errors.HostError{Op: "view.newVideoView", Kind: errors.KindPlatform, Component: id, Err: err})
		} else {
			fit = parsed
		}
	}
	if err := v.player.Configure(v.node, fit); err != nil {
		errors.Report(&errors.HostError{Op: "view.newVideoView", Kind: errors.KindPlatform, Component: id, Err: err})
	}
	return r.register(v)
}

// Init loads the source and applies the audio and end-time properties.
func (v *videoView) Init() {
	v.base.Init()
	id := v.handle.UniqueID()

	if src := component.String(v.handle, "source", ""); src != "" {
		if err := v.player.Load(id, src); err != nil {
			errors.Report(&errors.HostError{Op: "view.videoView.Init", Kind: errors.KindPlayback, Component: id, Err: err})
		}
	}
	if component.Bool(v.handle, "muted", false) {
		v.player.Mute()
	} else {
		v.player.Unmute()
	}
	if _, ok := v.handle.Property("volume"); ok {
		if err := v.player.SetVolume(component.Float(v.handle, "volume", 1)); err != nil {
			errors.Report(&errors.HostError{Op: "view.videoView.Init", Kind: errors.KindPlayback, Component: id, Err: err})
		}
	}
	if end := component.Float(v.handle, "endTime", 0); end > 0 {
		v.player.SetEndTimeInSeconds(end)
	} else {
		v.player.ClearEndTime()
	}
}

func (v *videoView) Destroy() {
	v.player.Destroy()
	v.base.Destroy()
}
