package view

import (
	"github.com/go-drift/domhost/pkg/component"
	"github.com/go-drift/domhost/pkg/dom"
	"github.com/go-drift/domhost/pkg/log"
	"github.com/go-drift/domhost/pkg/media"
	"github.com/go-drift/domhost/pkg/metrics"
	"github.com/go-drift/domhost/pkg/platform"
	"github.com/rs/zerolog"
)

// Options configures a Renderer. The zero value renders into a fresh
// headless document.
type Options struct {
	// Document creates the DOM nodes. Defaults to a new HeadlessDocument.
	Document dom.Document

	// NewMediaElement builds the native element for each video view.
	// Defaults to a headless element created in Document.
	NewMediaElement func() platform.MediaElement

	// OnMediaState receives every playback state emitted by a video view,
	// keyed by component id.
	OnMediaState func(id string, state media.PlaybackState)

	// VideoFit is the fit mode for video views that do not set "fit".
	// Defaults to media.FitContain.
	VideoFit media.FitMode

	// Logger replaces the default "renderer" component logger.
	Logger *zerolog.Logger

	// Metrics records reconciliation and playback counters. May be nil.
	Metrics *metrics.Metrics
}

// Renderer owns the component registry of one rendering session. At most
// one live view exists per component id; entries live until Release or
// Destroy. A Renderer is used from the UI thread only.
type Renderer struct {
	doc             dom.Document
	views           map[string]View
	newMediaElement func() platform.MediaElement
	onMediaState    func(id string, state media.PlaybackState)
	videoFit        media.FitMode
	logger          zerolog.Logger
	metrics         *metrics.Metrics
}

// NewRenderer creates a renderer with an empty registry.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		doc:             opts.Document,
		views:           make(map[string]View),
		newMediaElement: opts.NewMediaElement,
		onMediaState:    opts.OnMediaState,
		videoFit:        opts.VideoFit,
		metrics:         opts.Metrics,
	}
	if r.doc == nil {
		r.doc = dom.NewHeadlessDocument()
	}
	if r.newMediaElement == nil {
		r.newMediaElement = func() platform.MediaElement {
			return platform.NewHeadlessMediaElement(r.doc)
		}
	}
	if r.videoFit == "" {
		r.videoFit = media.FitContain
	}
	if opts.Logger != nil {
		r.logger = *opts.Logger
	} else {
		r.logger = log.WithComponent("renderer")
	}
	return r
}

// Document returns the document views are created in.
func (r *Renderer) Document() dom.Document {
	return r.doc
}

// register records v as the live view of its component. Constructors call it
// as their last step.
func (r *Renderer) register(v View) View {
	r.views[v.Component().UniqueID()] = v
	return v
}

// Lookup returns the live view for a component id.
func (r *Renderer) Lookup(id string) (View, bool) {
	v, ok := r.views[id]
	return v, ok
}

// Len returns the number of live views.
func (r *Renderer) Len() int {
	return len(r.views)
}

// Player returns the media player owned by the video view of id.
func (r *Renderer) Player(id string) (*media.Player, bool) {
	v, ok := r.views[id]
	if !ok || v.Kind() != component.TypeVideo {
		return nil, false
	}
	return v.(*videoView).player, true
}

// Mount appends v's DOM root to the document body.
func (r *Renderer) Mount(v View) {
	r.doc.Body().AppendChild(v.Node())
}

// Release destroys the view of id and forgets it, so that the next Resolve
// for id builds a fresh view. Used when the engine prunes a subtree.
func (r *Renderer) Release(id string) bool {
	v, ok := r.views[id]
	if !ok {
		return false
	}
	delete(r.views, id)
	v.Destroy()
	r.logger.Debug().Str("component_id", id).Msg("view released")
	return true
}

// Destroy tears down every view and empties the registry.
func (r *Renderer) Destroy() {
	for id, v := range r.views {
		v.Destroy()
		delete(r.views, id)
	}
	r.logger.Debug().Msg("renderer destroyed")
}
