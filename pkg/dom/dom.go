// Package dom is the subset of the Document Object Model the renderer needs:
// element creation, child-list splicing, attributes, inline style and text.
//
// Two implementations exist. [HeadlessDocument] keeps the tree in memory on
// top of golang.org/x/net/html and can serialize it; the browser document
// (js/wasm builds only) forwards to the page's live DOM.
package dom

// Node is a DOM node.
type Node interface {
	// TagName returns the lower-case element name, or "" for text nodes.
	TagName() string

	// ParentNode returns the parent, or nil if the node is detached.
	ParentNode() Node

	// ChildNodes returns a snapshot of the node's children in order.
	ChildNodes() []Node

	// AppendChild moves child to the end of the child list.
	AppendChild(child Node)

	// InsertBefore moves child directly in front of ref. A nil ref appends.
	InsertBefore(child, ref Node)

	// RemoveChild detaches child. Removing a node that is not a child is a
	// no-op.
	RemoveChild(child Node)

	SetAttribute(name, value string)
	Attribute(name string) (string, bool)
	RemoveAttribute(name string)

	// SetStyle sets one inline style property. An empty value removes it.
	SetStyle(property, value string)
	Style(property string) string

	// SetTextContent replaces all children with a single text node.
	SetTextContent(text string)
}

// Document creates nodes and exposes the mount point.
type Document interface {
	CreateElement(tag string) Node
	Body() Node
}

// Detach removes n from its parent, if any. A headless document also stops
// tracking the subtree.
func Detach(n Node) {
	if n == nil {
		return
	}
	if p := n.ParentNode(); p != nil {
		p.RemoveChild(n)
		return
	}
	if e, ok := n.(*Element); ok {
		e.doc.forget(e.n)
	}
}
