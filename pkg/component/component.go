// Package component describes the externally maintained component tree as
// seen by the renderer: a stable identity, a closed set of renderable kinds,
// property lookup and the layout-finalization hook.
package component

import "fmt"

// Type is the closed enumeration of renderable component kinds.
type Type int

const (
	TypeContainer Type = iota
	TypeText
	TypeImage
	TypeScrollView
	TypeSequence
	TypeGridSequence
	TypePager
	TypeFrame
	TypeEditText
	TypeTouchWrapper
	TypeVideo
	TypeVectorGraphic

	// TypeCount is the number of renderable kinds. It is not a valid Type.
	TypeCount
)

var typeNames = [TypeCount]string{
	TypeContainer:     "Container",
	TypeText:          "Text",
	TypeImage:         "Image",
	TypeScrollView:    "ScrollView",
	TypeSequence:      "Sequence",
	TypeGridSequence:  "GridSequence",
	TypePager:         "Pager",
	TypeFrame:         "Frame",
	TypeEditText:      "EditText",
	TypeTouchWrapper:  "TouchWrapper",
	TypeVideo:         "Video",
	TypeVectorGraphic: "VectorGraphic",
}

// String returns the wire name of the type, or Type(n) for values outside the
// enumeration.
func (t Type) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is one of the renderable kinds.
func (t Type) Valid() bool {
	return t >= 0 && t < TypeCount
}

// IsText reports whether views of this kind carry text layout: an intrinsic
// size that depends on the rendered text and must be measured before and
// after layout.
func (t Type) IsText() bool {
	return t == TypeText
}

// ParseType returns the Type with the given wire name.
func ParseType(name string) (Type, error) {
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("component: unknown type %q", name)
}

// Types returns every renderable kind in declaration order.
func Types() []Type {
	out := make([]Type, TypeCount)
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// Handle is an opaque reference to a node of the engine's component tree.
type Handle interface {
	// UniqueID returns the stable identifier of the component. It is the
	// key under which the renderer caches the component's view.
	UniqueID() string

	// Type returns the component's kind.
	Type() Type

	// Property returns the engine-computed value of a property.
	Property(name string) (any, bool)

	// EnsureLayout asks the engine to finalize layout for the component.
	EnsureLayout()
}
