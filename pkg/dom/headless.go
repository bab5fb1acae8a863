package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HeadlessDocument is an in-memory Document backed by golang.org/x/net/html.
// It is not safe for concurrent use.
//
// Only nodes attached to a parent are tracked; removing a subtree forgets
// it, so released views do not accumulate.
type HeadlessDocument struct {
	root  *html.Node
	body  *Element
	nodes map[*html.Node]*Element
}

// NewHeadlessDocument returns an empty document with an html/body skeleton.
func NewHeadlessDocument() *HeadlessDocument {
	d := &HeadlessDocument{
		root:  &html.Node{Type: html.DocumentNode},
		nodes: make(map[*html.Node]*Element),
	}
	htmlNode := &html.Node{Type: html.ElementNode, DataAtom: atom.Html, Data: "html"}
	bodyNode := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	d.root.AppendChild(htmlNode)
	htmlNode.AppendChild(bodyNode)
	d.body = d.wrap(bodyNode)
	return d
}

// CreateElement implements Document.
func (d *HeadlessDocument) CreateElement(tag string) Node {
	tag = strings.ToLower(tag)
	return d.newElement(&html.Node{Type: html.ElementNode, DataAtom: atom.Lookup([]byte(tag)), Data: tag})
}

// Body implements Document.
func (d *HeadlessDocument) Body() Node {
	return d.body
}

// Render writes the HTML serialization of n.
func (d *HeadlessDocument) Render(w io.Writer, n Node) error {
	return html.Render(w, d.unwrap(n).n)
}

func (d *HeadlessDocument) newElement(n *html.Node) *Element {
	e := &Element{doc: d, n: n}
	for _, a := range n.Attr {
		if a.Key == "style" {
			e.styles = parseStyles(a.Val)
		}
	}
	return e
}

func (d *HeadlessDocument) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if e, ok := d.nodes[n]; ok {
		return e
	}
	e := d.newElement(n)
	d.nodes[n] = e
	return e
}

// forget drops the wrappers of n and its descendants.
func (d *HeadlessDocument) forget(n *html.Node) {
	delete(d.nodes, n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.forget(c)
	}
}

// tracked returns the number of wrapped nodes.
func (d *HeadlessDocument) tracked() int {
	return len(d.nodes)
}

func (d *HeadlessDocument) unwrap(n Node) *Element {
	e, ok := n.(*Element)
	if !ok || e.doc != d {
		panic(fmt.Sprintf("dom: node %T does not belong to this document", n))
	}
	return e
}

// Element is a node of a HeadlessDocument.
type Element struct {
	doc    *HeadlessDocument
	n      *html.Node
	styles []style
}

type style struct {
	property string
	value    string
}

var _ Node = (*Element)(nil)

// TagName implements Node.
func (e *Element) TagName() string {
	if e.n.Type != html.ElementNode {
		return ""
	}
	return e.n.Data
}

// ParentNode implements Node.
func (e *Element) ParentNode() Node {
	if e.n.Parent == nil {
		return nil
	}
	return e.doc.wrap(e.n.Parent)
}

// ChildNodes implements Node.
func (e *Element) ChildNodes() []Node {
	var out []Node
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, e.doc.wrap(c))
	}
	return out
}

// AppendChild implements Node.
func (e *Element) AppendChild(child Node) {
	e.InsertBefore(child, nil)
}

// InsertBefore implements Node.
func (e *Element) InsertBefore(child, ref Node) {
	c := e.doc.unwrap(child)
	if ref != nil && ref == child {
		return
	}
	var r *Element
	if ref != nil {
		r = e.doc.unwrap(ref)
		if r.n.Parent != e.n {
			panic("dom: reference node is not a child of this node")
		}
	}
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	e.doc.nodes[c.n] = c
	if _, ok := e.doc.nodes[e.n]; !ok {
		e.doc.nodes[e.n] = e
	}
	if r == nil {
		e.n.AppendChild(c.n)
		return
	}
	e.n.InsertBefore(c.n, r.n)
}

// RemoveChild implements Node.
func (e *Element) RemoveChild(child Node) {
	c := e.doc.unwrap(child)
	if c.n.Parent != e.n {
		return
	}
	e.n.RemoveChild(c.n)
	e.doc.forget(c.n)
}

// SetAttribute implements Node.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.n.Attr {
		if e.n.Attr[i].Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

// Attribute implements Node.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// RemoveAttribute implements Node.
func (e *Element) RemoveAttribute(name string) {
	e.n.Attr = lo.Reject(e.n.Attr, func(a html.Attribute, _ int) bool {
		return a.Key == name
	})
}

// SetStyle implements Node.
func (e *Element) SetStyle(property, value string) {
	idx := -1
	for i, s := range e.styles {
		if s.property == property {
			idx = i
			break
		}
	}
	switch {
	case value == "" && idx >= 0:
		e.styles = append(e.styles[:idx], e.styles[idx+1:]...)
	case value == "":
		return
	case idx >= 0:
		e.styles[idx].value = value
	default:
		e.styles = append(e.styles, style{property: property, value: value})
	}
	if len(e.styles) == 0 {
		e.RemoveAttribute("style")
		return
	}
	parts := lo.Map(e.styles, func(s style, _ int) string {
		return s.property + ": " + s.value
	})
	e.SetAttribute("style", strings.Join(parts, "; "))
}

// parseStyles reads an inline style attribute written by SetStyle.
func parseStyles(attr string) []style {
	return lo.FilterMap(strings.Split(attr, ";"), func(decl string, _ int) (style, bool) {
		property, value, ok := strings.Cut(decl, ":")
		property, value = strings.TrimSpace(property), strings.TrimSpace(value)
		return style{property: property, value: value}, ok && property != "" && value != ""
	})
}

// Style implements Node.
func (e *Element) Style(property string) string {
	for _, s := range e.styles {
		if s.property == property {
			return s.value
		}
	}
	return ""
}

// SetTextContent implements Node.
func (e *Element) SetTextContent(text string) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		e.doc.forget(c)
		c = next
	}
	if text == "" {
		return
	}
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// TextContent returns the concatenated text of the subtree.
func (e *Element) TextContent() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return sb.String()
}

// IndexOf returns the position of child in parent's child list, or -1.
func IndexOf(parent, child Node) int {
	return lo.IndexOf(parent.ChildNodes(), child)
}
