package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveConstructed("Text")
	m.ObserveReused("Text")
	m.ObserveUnsupported("Type(99)")
	m.ObserveTransition("Playing")
}

func TestCountersIncrement(t *testing.T) {
	m := New(nil)
	m.ObserveConstructed("Text")
	m.ObserveConstructed("Text")
	m.ObserveReused("Video")
	m.ObserveTransition("Paused")

	if got := testutil.ToFloat64(m.ViewsConstructed.WithLabelValues("Text")); got != 2 {
		t.Errorf("constructed{Text} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.ViewsReused.WithLabelValues("Video")); got != 1 {
		t.Errorf("reused{Video} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.PlaybackTransitions.WithLabelValues("Paused")); got != 1 {
		t.Errorf("transitions{Paused} = %v, want 1", got)
	}
}

func TestRegistersWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveConstructed("Image")

	n, err := testutil.GatherAndCount(reg, "domhost_views_constructed_total")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if n != 1 {
		t.Errorf("series = %d, want 1", n)
	}
}
