// Package domtest is an in-memory dom.Document with bubbling dispatch and a
// selector matcher covering #id, .class, tag and descendant combinators.
package domtest

import (
	"strings"

	"github.com/ingyamilmolinar/retrofx/internal/dom"
)

type listener struct {
	fn   dom.Listener
	live bool
}

type listeners map[string][]*listener

func (ls listeners) add(event string, fn dom.Listener) func() {
	l := &listener{fn: fn, live: true}
	ls[event] = append(ls[event], l)
	return func() { l.live = false }
}

func (ls listeners) fire(e *dom.Event) {
	for _, l := range append([]*listener(nil), ls[e.Type]...) {
		if l.live {
			l.fn(e)
		}
	}
}

func (ls listeners) count() int {
	n := 0
	for _, list := range ls {
		for _, l := range list {
			if l.live {
				n++
			}
		}
	}
	return n
}

// Node is an element of the in-memory tree.
type Node struct {
	Tag string
	ID  string

	classes   []string
	style     map[string]string
	text      string
	parent    *Node
	children  []*Node
	listeners listeners
}

func newNode(tag string) *Node {
	return &Node{Tag: strings.ToLower(tag), style: map[string]string{}, listeners: listeners{}}
}

func (n *Node) SetStyle(prop, value string) {
	if value == "" {
		delete(n.style, prop)
		return
	}
	n.style[prop] = value
}

func (n *Node) Style(prop string) string { return n.style[prop] }

func (n *Node) AddClass(name string) {
	if !n.HasClass(name) {
		n.classes = append(n.classes, name)
	}
}

func (n *Node) RemoveClass(name string) {
	for i, c := range n.classes {
		if c == name {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return
		}
	}
}

func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (n *Node) SetText(s string) {
	n.text = s
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

func (n *Node) Text() string {
	var b strings.Builder
	b.WriteString(n.text)
	for _, c := range n.children {
		b.WriteString(c.Text())
	}
	return b.String()
}

func (n *Node) AppendChild(child dom.Element) {
	c, ok := child.(*Node)
	if !ok {
		return
	}
	c.Remove()
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

func (n *Node) Closest(selector string) (dom.Element, bool) {
	for a := n; a != nil; a = a.parent {
		if Matches(a, selector) {
			return a, true
		}
	}
	return nil, false
}

func (n *Node) Same(other dom.Element) bool {
	o, ok := other.(*Node)
	return ok && o == n
}

func (n *Node) On(event string, l dom.Listener) func() {
	return n.listeners.add(event, l)
}

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return append([]*Node(nil), n.children...) }

// Add creates a child element with optional id and classes.
func (n *Node) Add(tag, id string, classes ...string) *Node {
	c := newNode(tag)
	c.ID = id
	for _, cl := range classes {
		c.AddClass(cl)
	}
	n.AppendChild(c)
	return c
}

// Matches reports whether n matches a selector made of whitespace-separated
// compounds such as "div.game-frame iframe" or "#audioToggle".
func Matches(n *Node, selector string) bool {
	parts := strings.Fields(selector)
	if len(parts) == 0 || !matchCompound(n, parts[len(parts)-1]) {
		return false
	}
	i := len(parts) - 2
	for a := n.parent; a != nil && i >= 0; a = a.parent {
		if matchCompound(a, parts[i]) {
			i--
		}
	}
	return i < 0
}

func matchCompound(n *Node, s string) bool {
	tag, rest := s, ""
	if i := strings.IndexAny(s, "#."); i >= 0 {
		tag, rest = s[:i], s[i:]
	}
	if tag != "" && tag != "*" && !strings.EqualFold(tag, n.Tag) {
		return false
	}
	for rest != "" {
		kind := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, "#.")
		if end < 0 {
			end = len(rest)
		}
		name := rest[:end]
		rest = rest[end:]
		switch kind {
		case '#':
			if n.ID != name {
				return false
			}
		case '.':
			if !n.HasClass(name) {
				return false
			}
		}
	}
	return true
}

// nonBubbling events are delivered to their target only.
var nonBubbling = map[string]bool{"mouseenter": true, "mouseleave": true}

// Document is an html element with head and body children.
type Document struct {
	Root *Node
	head *Node
	body *Node

	listeners listeners
}

func NewDocument() *Document {
	root := newNode("html")
	d := &Document{Root: root, listeners: listeners{}}
	d.head = root.Add("head", "")
	d.body = root.Add("body", "")
	return d
}

func (d *Document) Query(selector string) (dom.Element, bool) {
	if n := d.Find(selector); n != nil {
		return n, true
	}
	return nil, false
}

func (d *Document) Create(tag string) dom.Element { return newNode(tag) }

func (d *Document) Head() dom.Element { return d.head }

func (d *Document) Body() dom.Element { return d.body }

func (d *Document) On(event string, l dom.Listener) func() {
	return d.listeners.add(event, l)
}

// HeadNode and BodyNode give tests the concrete nodes.
func (d *Document) HeadNode() *Node { return d.head }
func (d *Document) BodyNode() *Node { return d.body }

// Find returns the first node in document order matching selector, or nil.
func (d *Document) Find(selector string) *Node {
	all := d.FindAll(selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// FindAll returns every attached node matching selector in document order.
func (d *Document) FindAll(selector string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if Matches(n, selector) {
			out = append(out, n)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(d.Root)
	return out
}

// Listeners counts live listeners on the document and every attached node.
func (d *Document) Listeners() int {
	n := d.listeners.count()
	var walk func(*Node)
	walk = func(x *Node) {
		n += x.listeners.count()
		for _, c := range x.children {
			walk(c)
		}
	}
	walk(d.Root)
	return n
}

// Dispatch delivers e to target and, unless the type does not bubble, to
// its ancestors and then the document.
func (d *Document) Dispatch(target *Node, e *dom.Event) *dom.Event {
	e.Target = target
	if nonBubbling[e.Type] {
		target.listeners.fire(e)
		return e
	}
	for n := target; n != nil; n = n.parent {
		n.listeners.fire(e)
	}
	d.listeners.fire(e)
	return e
}

// Click dispatches a click on target at viewport x, y.
func (d *Document) Click(target *Node, x, y float64) *dom.Event {
	return d.Dispatch(target, dom.MouseEvent("click", x, y))
}

// KeyDown dispatches a keydown on the body.
func (d *Document) KeyDown(key, code string) *dom.Event {
	return d.Dispatch(d.body, dom.KeyEvent(key, code))
}

// Hover dispatches mouseenter, Leave mouseleave.
func (d *Document) Hover(target *Node) { d.Dispatch(target, dom.MouseEvent("mouseenter", 0, 0)) }
func (d *Document) Leave(target *Node) { d.Dispatch(target, dom.MouseEvent("mouseleave", 0, 0)) }
