// Package view turns components of the engine's tree into DOM-backed view
// objects and keeps exactly one live view per component for the lifetime of a
// Renderer.
//
// The engine calls [Renderer.Resolve] for every component it includes or
// mutates. Resolve returns the cached view when one exists and otherwise
// builds one from a fixed table keyed by [component.Type]. Layout and DOM
// insertion are opt-in through [EnsureLayout] and [InsertAt] so that
// off-screen subtrees can be built without paying for them.
package view

import (
	"strconv"

	"github.com/go-drift/domhost/pkg/component"
	"github.com/go-drift/domhost/pkg/dom"
)

// View is the DOM-backed object representing one component.
type View interface {
	// Component returns the handle the view was built for.
	Component() component.Handle

	// Kind returns the component type the view was built for. It is the
	// discriminant for kind-specific capabilities such as text layout.
	Kind() component.Type

	// Node returns the root of the view's DOM subtree.
	Node() dom.Node

	// Parent returns the view's parent, or nil.
	Parent() View

	// SetParent re-parents the view. It does not touch the DOM.
	SetParent(parent View)

	// Renderer returns the renderer owning the view.
	Renderer() *Renderer

	// Init applies the component's current properties to the DOM. It is
	// safe to call more than once.
	Init()

	// PrepareLayout runs before the engine finalizes layout on a fresh
	// text-kind view. Other kinds ignore it.
	PrepareLayout()

	// MeasureIntrinsic recomputes the size of a text-kind view from its
	// content. Other kinds ignore it.
	MeasureIntrinsic()

	// Destroy releases the view's resources and detaches its DOM root.
	Destroy()
}

// base carries the state every view shares.
type base struct {
	handle   component.Handle
	kind     component.Type
	node     dom.Node
	parent   View
	renderer *Renderer
}

func (r *Renderer) newBase(h component.Handle, parent View, tag string) base {
	node := r.doc.CreateElement(tag)
	node.SetAttribute("data-component-id", h.UniqueID())
	node.SetAttribute("data-component-type", h.Type().String())
	return base{
		handle:   h,
		kind:     h.Type(),
		node:     node,
		parent:   parent,
		renderer: r,
	}
}

func (b *base) Component() component.Handle { return b.handle }
func (b *base) Kind() component.Type        { return b.kind }
func (b *base) Node() dom.Node              { return b.node }
func (b *base) Parent() View                { return b.parent }
func (b *base) SetParent(parent View)       { b.parent = parent }
func (b *base) Renderer() *Renderer         { return b.renderer }
func (b *base) PrepareLayout()              {}
func (b *base) MeasureIntrinsic()           {}

// Init applies the box properties shared by all kinds.
func (b *base) Init() {
	if _, ok := b.handle.Property("width"); ok {
		b.node.SetStyle("width", px(component.Float(b.handle, "width", 0)))
	}
	if _, ok := b.handle.Property("height"); ok {
		b.node.SetStyle("height", px(component.Float(b.handle, "height", 0)))
	}
	if _, ok := b.handle.Property("opacity"); ok {
		b.node.SetStyle("opacity", strconv.FormatFloat(component.Float(b.handle, "opacity", 1), 'f', -1, 64))
	}
	if component.Bool(b.handle, "hidden", false) {
		b.node.SetStyle("visibility", "hidden")
	} else {
		b.node.SetStyle("visibility", "")
	}
}

func (b *base) Destroy() {
	dom.Detach(b.node)
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
