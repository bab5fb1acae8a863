//go:build js && wasm

package dom

import "syscall/js"

// BrowserDocument forwards to the page's live document.
type BrowserDocument struct {
	doc js.Value
}

// NewBrowserDocument returns the document of the global window.
func NewBrowserDocument() *BrowserDocument {
	return &BrowserDocument{doc: js.Global().Get("document")}
}

// CreateElement implements Document.
func (d *BrowserDocument) CreateElement(tag string) Node {
	return &JSNode{Value: d.doc.Call("createElement", tag)}
}

// Body implements Document.
func (d *BrowserDocument) Body() Node {
	return &JSNode{Value: d.doc.Get("body")}
}

// JSNode wraps a browser DOM node. Two JSNode values wrapping the same
// browser node are not == to each other; compare with Equal.
type JSNode struct {
	Value js.Value
}

var _ Node = (*JSNode)(nil)

func wrapJS(v js.Value) Node {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &JSNode{Value: v}
}

func jsValue(n Node) js.Value {
	if n == nil {
		return js.Null()
	}
	return n.(*JSNode).Value
}

// Equal reports whether both wrappers refer to the same browser node.
func (n *JSNode) Equal(other Node) bool {
	o, ok := other.(*JSNode)
	return ok && n.Value.Equal(o.Value)
}

// TagName implements Node.
func (n *JSNode) TagName() string {
	if n.Value.Get("nodeType").Int() != 1 {
		return ""
	}
	return n.Value.Get("localName").String()
}

// ParentNode implements Node.
func (n *JSNode) ParentNode() Node {
	return wrapJS(n.Value.Get("parentNode"))
}

// ChildNodes implements Node.
func (n *JSNode) ChildNodes() []Node {
	list := n.Value.Get("childNodes")
	count := list.Get("length").Int()
	out := make([]Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, &JSNode{Value: list.Index(i)})
	}
	return out
}

// AppendChild implements Node.
func (n *JSNode) AppendChild(child Node) {
	n.Value.Call("appendChild", jsValue(child))
}

// InsertBefore implements Node.
func (n *JSNode) InsertBefore(child, ref Node) {
	if ref != nil && jsValue(ref).Equal(jsValue(child)) {
		return
	}
	n.Value.Call("insertBefore", jsValue(child), jsValue(ref))
}

// RemoveChild implements Node.
func (n *JSNode) RemoveChild(child Node) {
	c := jsValue(child)
	if !c.Get("parentNode").Equal(n.Value) {
		return
	}
	n.Value.Call("removeChild", c)
}

// SetAttribute implements Node.
func (n *JSNode) SetAttribute(name, value string) {
	n.Value.Call("setAttribute", name, value)
}

// Attribute implements Node.
func (n *JSNode) Attribute(name string) (string, bool) {
	v := n.Value.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

// RemoveAttribute implements Node.
func (n *JSNode) RemoveAttribute(name string) {
	n.Value.Call("removeAttribute", name)
}

// SetStyle implements Node.
func (n *JSNode) SetStyle(property, value string) {
	s := n.Value.Get("style")
	if value == "" {
		s.Call("removeProperty", property)
		return
	}
	s.Call("setProperty", property, value)
}

// Style implements Node.
func (n *JSNode) Style(property string) string {
	return n.Value.Get("style").Call("getPropertyValue", property).String()
}

// SetTextContent implements Node.
func (n *JSNode) SetTextContent(text string) {
	n.Value.Set("textContent", text)
}
