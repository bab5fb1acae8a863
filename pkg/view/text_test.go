package view

import (
	"strings"
	"testing"

	"github.com/go-drift/domhost/pkg/component"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fontSize float64
		maxWidth float64
		want     textMetrics
	}{
		{
			name:     "single line",
			text:     "hello",
			fontSize: 13,
			want:     textMetrics{Lines: []string{"hello"}, Width: 35, Height: 13, LineHeight: 13},
		},
		{
			name:     "scaled",
			text:     "hello",
			fontSize: 26,
			want:     textMetrics{Lines: []string{"hello"}, Width: 70, Height: 26, LineHeight: 26},
		},
		{
			name:     "wraps at whitespace",
			text:     "hello world",
			fontSize: 13,
			maxWidth: 50,
			want:     textMetrics{Lines: []string{"hello", "world"}, Width: 35, Height: 26, LineHeight: 13},
		},
		{
			name:     "breaks long word",
			text:     "abcdefghij",
			fontSize: 13,
			maxWidth: 21,
			want:     textMetrics{Lines: []string{"abc", "def", "ghi", "j"}, Width: 21, Height: 52, LineHeight: 13},
		},
		{
			name:     "explicit newlines",
			text:     "ab\n\ncd",
			fontSize: 13,
			want:     textMetrics{Lines: []string{"ab", "", "cd"}, Width: 14, Height: 39, LineHeight: 13},
		},
		{
			name:     "unconstrained ignores negative width",
			text:     "hello world",
			fontSize: 13,
			maxWidth: -1,
			want:     textMetrics{Lines: []string{"hello world"}, Width: 77, Height: 13, LineHeight: 13},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := measureText(tt.text, tt.fontSize, tt.maxWidth)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("measureText mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMeasureText_InvalidUTF8(t *testing.T) {
	tests := []struct {
		text     string
		maxWidth float64
	}{
		{"ab\xff", 100},
		{"ab\xff", 0},
		{"\xffab\xfe", 14},
		{"ab\xffcd ef", 14},
	}
	for _, tt := range tests {
		var got textMetrics
		require.NotPanics(t, func() { got = measureText(tt.text, 13, tt.maxWidth) }, "%q", tt.text)
		require.NotEmpty(t, got.Lines, "%q", tt.text)
		assert.Equal(t, strings.ReplaceAll(tt.text, " ", ""), strings.Join(got.Lines, ""), "%q", tt.text)
	}
}

func TestMeasureText_DefaultFontSize(t *testing.T) {
	got := measureText("x", 0, 0)
	assert.Equal(t, float64(defaultFontSize), got.LineHeight)
}

func TestTextView_InitAppliesContent(t *testing.T) {
	r := newTestRenderer(t)
	h := &component.Static{ID: "t", Kind: component.TypeText, Props: map[string]any{
		"text":     "hello",
		"fontSize": 13,
		"color":    "#333",
	}}

	v, err := r.Resolve(h, nil, EnsureLayout())
	require.NoError(t, err)

	n := v.Node()
	assert.Equal(t, "13px", n.Style("font-size"))
	assert.Equal(t, "#333", n.Style("color"))
	assert.Equal(t, "35px", n.Style("width"))
	assert.Equal(t, "13px", n.Style("height"))
	lines, _ := n.Attribute("data-lines")
	assert.Equal(t, "1", lines)
}

func TestTextView_CachedViewRemeasures(t *testing.T) {
	r := newTestRenderer(t)
	h := &component.Static{ID: "t", Kind: component.TypeText, Props: map[string]any{
		"text":     "hi",
		"fontSize": 13,
	}}
	v, err := r.Resolve(h, nil, EnsureLayout())
	require.NoError(t, err)
	require.Equal(t, "14px", v.Node().Style("width"))

	h.Props["text"] = "hello"
	again, err := r.Resolve(h, nil, EnsureLayout())
	require.NoError(t, err)

	assert.Same(t, v, again)
	assert.Equal(t, "35px", again.Node().Style("width"))
	assert.Equal(t, 1, h.LayoutCount())
}

func TestTextView_ExplicitSizeWins(t *testing.T) {
	r := newTestRenderer(t)
	h := &component.Static{ID: "t", Kind: component.TypeText, Props: map[string]any{
		"text":     "hello world",
		"fontSize": 13,
		"width":    50,
		"height":   100,
	}}

	v, err := r.Resolve(h, nil, EnsureLayout())
	require.NoError(t, err)

	assert.Equal(t, "50px", v.Node().Style("width"))
	assert.Equal(t, "100px", v.Node().Style("height"))
	lines, _ := v.Node().Attribute("data-lines")
	assert.Equal(t, "2", lines)
}

func TestNonTextKindsIgnoreMeasurement(t *testing.T) {
	r := newTestRenderer(t)
	v, err := r.Resolve(container("c"), nil, EnsureLayout())
	require.NoError(t, err)

	v.MeasureIntrinsic()
	v.PrepareLayout()

	assert.Empty(t, v.Node().Style("width"))
	_, ok := v.Node().Attribute("data-lines")
	assert.False(t, ok)
}
