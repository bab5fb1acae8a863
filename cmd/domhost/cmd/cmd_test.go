package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/domhost/pkg/errors"
	"github.com/go-drift/domhost/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput points the CLI at an empty config dir and collects stdout.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevDir := stdout, configDir
	stdout = &buf
	configDir = t.TempDir()
	t.Cleanup(func() {
		stdout, configDir = prevOut, prevDir
		errors.SetHandler(nil)
	})
	return &buf
}

// fields splits output into lines of whitespace-separated fields.
func fields(out string) [][]string {
	var lines [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		lines = append(lines, strings.Fields(line))
	}
	return lines
}

func TestExecute_Version(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, execute([]string{"--version"}))
	assert.Contains(t, out.String(), "domhost version "+Version)
}

func TestExecute_UnknownCommand(t *testing.T) {
	captureOutput(t)
	err := execute([]string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestExecute_Help(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, execute(nil))
	for _, name := range []string{"types", "trace", "sample"} {
		assert.Contains(t, out.String(), name)
	}
}

func TestTypes(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, execute([]string{"types"}))

	lines := fields(out.String())
	require.Len(t, lines, 12)
	assert.Equal(t, []string{"Container"}, lines[0])
	assert.Equal(t, []string{"Text", "text"}, lines[1])
	assert.Equal(t, []string{"VectorGraphic"}, lines[11])
}

func TestParseTraceArgs(t *testing.T) {
	opts, err := parseTraceArgs([]string{"--src", "a.mp4", "--end=2.5", "playing", "timeupdate@1.25"})
	require.NoError(t, err)

	assert.Equal(t, "a.mp4", opts.src)
	assert.True(t, opts.hasEnd)
	assert.Equal(t, 2500*time.Millisecond, opts.end)
	assert.Equal(t, []traceStep{
		{event: platform.EventPlaying},
		{event: platform.EventTimeUpdate, position: 1250 * time.Millisecond},
	}, opts.steps)
}

func TestParseTraceArgs_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no events", []string{"--end=1"}, "at least one event"},
		{"unknown event", []string{"stalled"}, `unknown media event "stalled"`},
		{"position on non-timeupdate", []string{"playing@1"}, "only timeupdate"},
		{"bad position", []string{"timeupdate@soon"}, "invalid number of seconds"},
		{"negative end", []string{"--end=-1", "playing"}, "--end"},
		{"missing flag value", []string{"playing", "--src"}, "--src requires a value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTraceArgs(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTrace_EndTime(t *testing.T) {
	out := captureOutput(t)
	err := execute([]string{"trace", "--end", "2", "loadeddata", "playing", "timeupdate@1", "timeupdate@2.5", "timeupdate@3"})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"loadeddata", "->", "Loaded"},
		{"playing", "->", "Playing"},
		{"timeupdate@1s", "->", "Playing"},
		{"timeupdate@2.5s", "->", "Paused"},
		{"timeupdate@3s", "(no", "change,", "Paused)"},
	}, fields(out.String()))
}

func TestTrace_PauseAlwaysEmits(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, execute([]string{"trace", "playing", "playing", "pause", "pause", "error"}))

	assert.Equal(t, [][]string{
		{"playing", "->", "Playing"},
		{"playing", "(no", "change,", "Playing)"},
		{"pause", "->", "Paused"},
		{"pause", "->", "Paused"},
		{"error", "->", "Error"},
	}, fields(out.String()))
}

func TestTrace_Metrics(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "domhost.yaml"), []byte("renderer:\n  metrics: true\n"), 0o644))

	require.NoError(t, execute([]string{"trace", "playing", "pause"}))

	assert.Contains(t, out.String(), `domhost_playback_transitions_total{state="Playing"} 1`)
	assert.Contains(t, out.String(), `domhost_playback_transitions_total{state="Paused"} 1`)
}

func TestTrace_InvalidConfig(t *testing.T) {
	captureOutput(t)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "domhost.yaml"), []byte("media:\n  fit: stretch\n"), 0o644))

	err := execute([]string{"trace", "playing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestSample(t *testing.T) {
	out := captureOutput(t)
	require.NoError(t, execute([]string{"sample"}))

	html := out.String()
	assert.Contains(t, html, `data-component-id="root"`)
	assert.Contains(t, html, `data-component-id="title"`)
	assert.Contains(t, html, "domhost sample")
	assert.Contains(t, html, `src="poster.png"`)
	assert.Contains(t, html, `<video`)
	assert.Contains(t, html, `src="clip.mp4"`)
	assert.Less(t, strings.Index(html, `data-component-id="title"`), strings.Index(html, `data-component-id="clip"`))
}
