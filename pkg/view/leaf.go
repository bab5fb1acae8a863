package view

import (
	"strconv"

	"github.com/go-drift/domhost/pkg/component"
)

type imageView struct {
	base
}

func newImageView(r *Renderer, h component.Handle, parent View) View {
	return r.register(&imageView{base: r.newBase(h, parent, "img")})
}

func (v *imageView) Init() {
	v.base.Init()
	if src := component.String(v.handle, "source", ""); src != "" {
		v.node.SetAttribute("src", src)
	} else {
		v.node.RemoveAttribute("src")
	}
	v.node.SetAttribute("alt", component.String(v.handle, "accessibilityLabel", ""))
	switch component.String(v.handle, "scale", "best-fit") {
	case "fill":
		v.node.SetStyle("object-fit", "fill")
	case "best-fill":
		v.node.SetStyle("object-fit", "cover")
	case "none":
		v.node.SetStyle("object-fit", "none")
	default:
		v.node.SetStyle("object-fit", "contain")
	}
}

type editTextView struct {
	base
}

func newEditTextView(r *Renderer, h component.Handle, parent View) View {
	return r.register(&editTextView{base: r.newBase(h, parent, "input")})
}

func (v *editTextView) Init() {
	v.base.Init()
	if component.Bool(v.handle, "secureInput", false) {
		v.node.SetAttribute("type", "password")
	} else {
		v.node.SetAttribute("type", "text")
	}
	v.node.SetAttribute("value", component.String(v.handle, "text", ""))
	if hint := component.String(v.handle, "hint", ""); hint != "" {
		v.node.SetAttribute("placeholder", hint)
	}
	if n := int(component.Float(v.handle, "maxLength", 0)); n > 0 {
		v.node.SetAttribute("maxlength", strconv.Itoa(n))
	}
}

type vectorGraphicView struct {
	base
}

func newVectorGraphicView(r *Renderer, h component.Handle, parent View) View {
	v := &vectorGraphicView{base: r.newBase(h, parent, "svg")}
	v.node.SetAttribute("xmlns", "http://www.w3.org/2000/svg")
	return r.register(v)
}

func (v *vectorGraphicView) Init() {
	v.base.Init()
	w := component.Float(v.handle, "viewportWidth", 0)
	h := component.Float(v.handle, "viewportHeight", 0)
	if w > 0 && h > 0 {
		v.node.SetAttribute("viewBox", "0 0 "+strconv.FormatFloat(w, 'f', -1, 64)+" "+strconv.FormatFloat(h, 'f', -1, 64))
	}
}
