package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestWithComponentAnnotatesRecords(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("renderer")
	l.Debug().Str("component_id", "c1").Msg("constructed")

	out := buf.String()
	if !strings.Contains(out, `"component":"renderer"`) {
		t.Errorf("missing component field in %q", out)
	}
	if !strings.Contains(out, `"component_id":"c1"`) {
		t.Errorf("missing component_id field in %q", out)
	}
}

func TestConfigureInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "chatty", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	l := Base()
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("info record missing: %q", out)
	}
}
