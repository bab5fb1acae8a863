package view

import (
	"strconv"

	"github.com/go-drift/domhost/pkg/component"
)

// blockView is a <div>-rooted view whose kind only differs in the styles
// and attributes it derives from the component's properties.
type blockView struct {
	base
	apply func(v *blockView)
}

func (v *blockView) Init() {
	v.base.Init()
	if v.apply != nil {
		v.apply(v)
	}
}

func newBlock(r *Renderer, h component.Handle, parent View, apply func(*blockView)) View {
	v := &blockView{base: r.newBase(h, parent, "div"), apply: apply}
	return r.register(v)
}

func newContainerView(r *Renderer, h component.Handle, parent View) View {
	return newBlock(r, h, parent, func(v *blockView) {
		v.node.SetStyle("position", "relative")
	})
}

func newScrollView(r *Renderer, h component.Handle, parent View) View {
	return newBlock(r, h, parent, func(v *blockView) {
		v.node.SetStyle("overflow", "auto")
	})
}

func newSequenceView(r *Renderer, h component.Handle, parent View) View {
	return newBlock(r, h, parent, func(v *blockView) {
		v.node.SetStyle("display", "flex")
		if component.String(v.handle, "scrollDirection", "vertical") == "horizontal" {
			v.node.SetStyle("flex-direction", "row")
			v.node.SetStyle("overflow-x", "auto")
			v.node.SetStyle("overflow-y", "")
		} else {
			v.node.SetStyle("flex-direction", "column")
			v.node.SetStyle("overflow-y", "auto")
			v.node.SetStyle("overflow-x", "")
		}
	})
}

func newGridSequenceView(r *Renderer, h component.Handle, parent View) View {
	return newBlock(r, h, parent, func(v *blockView) {
		columns := int(component.Float(v.handle, "columns", 1))
		if columns < 1 {
			columns = 1
		}
		v.node.SetStyle("display", "grid")
		v.node.SetStyle("grid-template-columns", "repeat("+strconv.Itoa(columns)+", 1fr)")
	})
}

func newPagerView(r *Renderer, h component.Handle, parent View) View {
	return newBlock(r, h, parent, func(v *blockView) {
		v.node.SetStyle("overflow", "hidden")
		page := int(component.Float(v.handle, "currentPage", 0))
		v.node.SetAttribute("data-page", strconv.Itoa(page))
	})
}

func newFrameView(r *Renderer, h component.Handle, parent View) View {
	return newBlock(r, h, parent, func(v *blockView) {
		v.node.SetStyle("background-color", component.String(v.handle, "backgroundColor", ""))
		if width := component.Float(v.handle, "borderWidth", 0); width > 0 {
			color := component.String(v.handle, "borderColor", "transparent")
			v.node.SetStyle("border", px(width)+" solid "+color)
		} else {
			v.node.SetStyle("border", "")
		}
		if radius := component.Float(v.handle, "borderRadius", 0); radius > 0 {
			v.node.SetStyle("border-radius", px(radius))
		}
	})
}

func newTouchWrapperView(r *Renderer, h component.Handle, parent View) View {
	return newBlock(r, h, parent, func(v *blockView) {
		v.node.SetAttribute("role", "button")
		v.node.SetAttribute("tabindex", "0")
		if label := component.String(v.handle, "accessibilityLabel", ""); label != "" {
			v.node.SetAttribute("aria-label", label)
		}
	})
}
