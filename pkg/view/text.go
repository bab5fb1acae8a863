package view

import (
	"strconv"

	"github.com/go-drift/domhost/pkg/component"
)

// textView renders a text component. Its size depends on the rendered text,
// so it is measured before the engine lays it out and again whenever the
// engine asks for layout on a cached view.
type textView struct {
	base
	metrics  textMetrics
	prepared bool
}

func newTextView(r *Renderer, h component.Handle, parent View) View {
	return r.register(&textView{base: r.newBase(h, parent, "div")})
}

// PrepareLayout writes the text and font so the engine measures the same
// content the DOM shows.
func (v *textView) PrepareLayout() {
	v.node.SetTextContent(component.String(v.handle, "text", ""))
	v.node.SetStyle("font-size", px(v.fontSize()))
	v.node.SetStyle("white-space", "pre-wrap")
	v.prepared = true
}

// MeasureIntrinsic recomputes the text block. Explicit width and height
// properties win over the measured size.
func (v *textView) MeasureIntrinsic() {
	maxWidth := component.Float(v.handle, "width", 0)
	v.metrics = measureText(component.String(v.handle, "text", ""), v.fontSize(), maxWidth)

	if _, ok := v.handle.Property("width"); !ok {
		v.node.SetStyle("width", px(v.metrics.Width))
	}
	if _, ok := v.handle.Property("height"); !ok {
		v.node.SetStyle("height", px(v.metrics.Height))
	}
	v.node.SetAttribute("data-lines", strconv.Itoa(len(v.metrics.Lines)))
}

func (v *textView) Init() {
	v.base.Init()
	if !v.prepared {
		v.PrepareLayout()
	} else {
		v.node.SetTextContent(component.String(v.handle, "text", ""))
	}
	if color := component.String(v.handle, "color", ""); color != "" {
		v.node.SetStyle("color", color)
	}
	v.MeasureIntrinsic()
}

func (v *textView) fontSize() float64 {
	return component.Float(v.handle, "fontSize", defaultFontSize)
}
