package view

import (
	"github.com/go-drift/domhost/pkg/component"
	"github.com/go-drift/domhost/pkg/errors"
)

type resolveOptions struct {
	ensureLayout bool
	insertAt     int
}

// ResolveOption configures a Resolve call.
type ResolveOption func(*resolveOptions)

// EnsureLayout finalizes layout for the component and splices the view into
// its parent's DOM children.
func EnsureLayout() ResolveOption {
	return func(o *resolveOptions) { o.ensureLayout = true }
}

// InsertAt sets the position of the splice done under EnsureLayout. An index
// outside the parent's current children, including the default -1, appends.
func InsertAt(index int) ResolveOption {
	return func(o *resolveOptions) { o.insertAt = index }
}

// Resolve returns the live view for h, constructing it on first encounter.
//
// A cached view is re-parented to parent. A new view is built by the
// constructor registered for h.Type(); an unsupported type fails with a
// *errors.HostError wrapping *errors.UnsupportedTypeError and leaves the
// registry untouched.
//
// A new view is initialized right away, so a view built off-screen already
// carries its properties when a later pass lays it out. With EnsureLayout, a
// cached text view re-measures itself and a new view runs its pre-layout pass
// (text only), has the engine finalize layout and re-runs Init. In both cases
// the view's DOM root is then spliced into parent.
func (r *Renderer) Resolve(h component.Handle, parent View, opts ...ResolveOption) (View, error) {
	o := resolveOptions{insertAt: -1}
	for _, opt := range opts {
		opt(&o)
	}

	id := h.UniqueID()
	if v, ok := r.views[id]; ok {
		v.SetParent(parent)
		r.metrics.ObserveReused(v.Kind().String())
		if o.ensureLayout {
			if v.Kind().IsText() {
				v.MeasureIntrinsic()
			}
			r.splice(parent, v, o.insertAt)
		}
		return v, nil
	}

	typ := h.Type()
	construct := constructorFor(typ)
	if construct == nil {
		r.metrics.ObserveUnsupported(typ.String())
		err := &errors.HostError{
			Op:        "view.Resolve",
			Kind:      errors.KindUnsupportedType,
			Component: id,
			Err:       &errors.UnsupportedTypeError{Type: typ.String()},
		}
		errors.Report(err)
		return nil, err
	}

	v := construct(r, h, parent)
	v.Init()
	r.metrics.ObserveConstructed(typ.String())
	r.logger.Debug().Str("component_id", id).Str("type", typ.String()).Msg("view constructed")

	if o.ensureLayout {
		if v.Kind().IsText() {
			v.PrepareLayout()
		}
		h.EnsureLayout()
		v.Init()
		r.splice(parent, v, o.insertAt)
	}
	return v, nil
}

// splice moves v's DOM root under parent: in front of the child currently at
// index when 0 <= index < len(children), at the end otherwise.
func (r *Renderer) splice(parent, v View, index int) {
	if parent == nil {
		return
	}
	host := parent.Node()
	children := host.ChildNodes()
	if index >= 0 && index < len(children) {
		host.InsertBefore(v.Node(), children[index])
	} else {
		host.AppendChild(v.Node())
	}
	r.logger.Debug().
		Str("component_id", v.Component().UniqueID()).
		Str("parent_id", parent.Component().UniqueID()).
		Int("insert_at", index).
		Msg("view spliced")
}
