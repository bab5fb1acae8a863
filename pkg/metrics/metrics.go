// Package metrics defines the Prometheus collectors exported by the renderer
// and the media players it owns.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the domhost collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	ViewsConstructed    *prometheus.CounterVec
	ViewsReused         *prometheus.CounterVec
	UnsupportedTypes    *prometheus.CounterVec
	PlaybackTransitions *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered, which is what tests and short-lived renderers want.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ViewsConstructed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "domhost",
			Name:      "views_constructed_total",
			Help:      "Views created on a registry miss, by component type.",
		}, []string{"type"}),
		ViewsReused: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "domhost",
			Name:      "views_reused_total",
			Help:      "Registry hits returning an existing view, by component type.",
		}, []string{"type"}),
		UnsupportedTypes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "domhost",
			Name:      "unsupported_type_total",
			Help:      "Resolve calls rejected because no constructor exists for the type.",
		}, []string{"type"}),
		PlaybackTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "domhost",
			Name:      "playback_transitions_total",
			Help:      "Playback state notifications emitted to listeners, by state.",
		}, []string{"state"}),
	}
}

// ObserveConstructed counts a newly constructed view.
func (m *Metrics) ObserveConstructed(typ string) {
	if m == nil {
		return
	}
	m.ViewsConstructed.WithLabelValues(typ).Inc()
}

// ObserveReused counts a registry hit.
func (m *Metrics) ObserveReused(typ string) {
	if m == nil {
		return
	}
	m.ViewsReused.WithLabelValues(typ).Inc()
}

// ObserveUnsupported counts a rejected component type.
func (m *Metrics) ObserveUnsupported(typ string) {
	if m == nil {
		return
	}
	m.UnsupportedTypes.WithLabelValues(typ).Inc()
}

// ObserveTransition counts an emitted playback state.
func (m *Metrics) ObserveTransition(state string) {
	if m == nil {
		return
	}
	m.PlaybackTransitions.WithLabelValues(state).Inc()
}
