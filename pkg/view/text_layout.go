package view

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const defaultFontSize = 16

// textMetrics is the measured block of a text view.
type textMetrics struct {
	Lines      []string
	Width      float64
	Height     float64
	LineHeight float64
}

// measureText lays text out in lines no wider than maxWidth (0 means
// unconstrained) using the bitmap face scaled to fontSize.
func measureText(text string, fontSize, maxWidth float64) textMetrics {
	face := basicfont.Face7x13
	if fontSize <= 0 {
		fontSize = defaultFontSize
	}
	scale := fontSize / float64(face.Height)
	measure := func(s string) float64 {
		return float64(font.MeasureString(face, s).Ceil()) * scale
	}
	lineHeight := float64(face.Metrics().Height.Ceil()) * scale

	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if maxWidth == 0 || paragraph == "" {
			lines = append(lines, paragraph)
			continue
		}
		lines = append(lines, wrapLine(paragraph, maxWidth, measure)...)
	}

	m := textMetrics{Lines: lines, LineHeight: lineHeight}
	for _, line := range lines {
		m.Width = math.Max(m.Width, measure(line))
	}
	m.Height = lineHeight * float64(len(lines))
	return m
}

// wrapLine breaks s at the last whitespace that fits within maxWidth, or
// mid-word when a single word is wider than maxWidth. Each line holds at
// least one rune.
func wrapLine(s string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for len(s) > 0 {
		fit, brk := 0, 0
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			end := i + size
			if measure(s[:end]) > maxWidth {
				break
			}
			fit = end
			if unicode.IsSpace(r) {
				brk = end
			}
			i = end
		}
		if fit == 0 {
			_, size := utf8.DecodeRuneInString(s)
			fit = size
		}
		cut := fit
		if fit < len(s) && brk > 0 {
			cut = brk
		}
		lines = append(lines, strings.TrimRightFunc(s[:cut], unicode.IsSpace))
		s = strings.TrimLeftFunc(s[cut:], unicode.IsSpace)
	}
	return lines
}
