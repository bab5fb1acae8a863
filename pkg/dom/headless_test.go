package dom

import (
	"strings"
	"testing"
)

func childTags(n Node) []string {
	var out []string
	for _, c := range n.ChildNodes() {
		id, _ := c.Attribute("id")
		out = append(out, id)
	}
	return out
}

func newChildren(d *HeadlessDocument, parent Node, ids ...string) []Node {
	var nodes []Node
	for _, id := range ids {
		n := d.CreateElement("div")
		n.SetAttribute("id", id)
		parent.AppendChild(n)
		nodes = append(nodes, n)
	}
	return nodes
}

func TestInsertBeforeMovesExistingChild(t *testing.T) {
	d := NewHeadlessDocument()
	parent := d.CreateElement("div")
	nodes := newChildren(d, parent, "a", "b", "c")

	parent.InsertBefore(nodes[2], nodes[0])

	if got := strings.Join(childTags(parent), ","); got != "c,a,b" {
		t.Errorf("children = %s, want c,a,b", got)
	}
	if nodes[2].ParentNode() != parent {
		t.Error("moved node should keep its parent")
	}
}

func TestInsertBeforeSelfIsNoop(t *testing.T) {
	d := NewHeadlessDocument()
	parent := d.CreateElement("div")
	nodes := newChildren(d, parent, "a", "b")

	parent.InsertBefore(nodes[1], nodes[1])

	if got := strings.Join(childTags(parent), ","); got != "a,b" {
		t.Errorf("children = %s, want a,b", got)
	}
}

func TestAppendChildReparents(t *testing.T) {
	d := NewHeadlessDocument()
	first := d.CreateElement("div")
	second := d.CreateElement("div")
	nodes := newChildren(d, first, "a")

	second.AppendChild(nodes[0])

	if len(first.ChildNodes()) != 0 {
		t.Error("node should have left its old parent")
	}
	if IndexOf(second, nodes[0]) != 0 {
		t.Error("node should be the first child of its new parent")
	}
}

func TestRemoveChildOfOtherParentIsNoop(t *testing.T) {
	d := NewHeadlessDocument()
	parent := d.CreateElement("div")
	other := d.CreateElement("div")
	nodes := newChildren(d, parent, "a")

	other.RemoveChild(nodes[0])
	if IndexOf(parent, nodes[0]) != 0 {
		t.Error("RemoveChild on a non-parent must not detach the node")
	}

	Detach(nodes[0])
	if nodes[0].ParentNode() != nil {
		t.Error("Detach should clear the parent")
	}
}

func TestStyleSerialization(t *testing.T) {
	d := NewHeadlessDocument()
	n := d.CreateElement("video")
	n.SetStyle("object-fit", "contain")
	n.SetStyle("width", "100%")
	n.SetStyle("object-fit", "cover")

	if got, _ := n.Attribute("style"); got != "object-fit: cover; width: 100%" {
		t.Errorf("style attribute = %q", got)
	}
	if n.Style("object-fit") != "cover" {
		t.Errorf("Style(object-fit) = %q", n.Style("object-fit"))
	}

	n.SetStyle("object-fit", "")
	n.SetStyle("width", "")
	if _, ok := n.Attribute("style"); ok {
		t.Error("style attribute should be removed once empty")
	}
}

func TestRenderAndTextContent(t *testing.T) {
	d := NewHeadlessDocument()
	n := d.CreateElement("DIV")
	n.SetAttribute("data-component-id", "t1")
	n.SetTextContent("hello")
	d.Body().AppendChild(n)

	var sb strings.Builder
	if err := d.Render(&sb, d.Body()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := sb.String(), `<body><div data-component-id="t1">hello</div></body>`; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
	if got := n.(*Element).TextContent(); got != "hello" {
		t.Errorf("TextContent = %q", got)
	}
	if n.TagName() != "div" {
		t.Errorf("TagName = %q, want div", n.TagName())
	}
}

func TestDetachedSubtreesAreForgotten(t *testing.T) {
	d := NewHeadlessDocument()
	baseline := d.tracked()

	parent := d.CreateElement("div")
	kids := newChildren(d, parent, "a", "b")
	d.Body().AppendChild(parent)
	kids[0].SetTextContent("one")
	_ = kids[0].ChildNodes()
	if d.tracked() <= baseline {
		t.Fatalf("attached nodes are not tracked: %d", d.tracked())
	}

	kids[0].SetTextContent("two")
	Detach(parent)
	if got := d.tracked(); got != baseline {
		t.Errorf("tracked after detach = %d, want %d", got, baseline)
	}

	orphan := d.CreateElement("div")
	newChildren(d, orphan, "x", "y")
	Detach(orphan)
	if got := d.tracked(); got != baseline {
		t.Errorf("tracked after detaching a parentless root = %d, want %d", got, baseline)
	}
}

func TestReattachedSubtreeKeepsStyles(t *testing.T) {
	d := NewHeadlessDocument()
	parent := d.CreateElement("div")
	kids := newChildren(d, parent, "a")
	kids[0].SetStyle("width", "10px")
	kids[0].SetStyle("color", "red")
	d.Body().AppendChild(parent)

	Detach(parent)
	d.Body().AppendChild(parent)

	child := parent.ChildNodes()[0]
	if got := child.Style("width"); got != "10px" {
		t.Errorf("width = %q, want 10px", got)
	}
	child.SetStyle("width", "")
	if got, _ := child.Attribute("style"); got != "color: red" {
		t.Errorf("style = %q, want %q", got, "color: red")
	}
	if parent.ParentNode() != d.Body() {
		t.Error("parent should be back under body")
	}
}
