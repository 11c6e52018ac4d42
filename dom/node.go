package dom

import "sync"

var _ Element = (*Node)(nil)
var _ Matcher = (*Node)(nil)
var _ EventTarget = (*Node)(nil)

// Node is a static layout tree node.
type Node struct {
	Tag     string
	ID      string
	Classes []string

	Box Box
	// Positioned nodes are offset parents for their descendants. The root is
	// always an offset parent.
	Positioned bool

	Scroll Point
	// ContentHeight is the scrollable height; zero means Box.Height.
	ContentHeight float64
	// VisibleHeight is the client height; zero means Box.Height.
	VisibleHeight float64

	parent   *Node
	children []*Node

	mu             sync.RWMutex
	listeners      map[string][]listenerEntry
	nextListenerID ListenerID
}

func NewNode(tag string, box Box) *Node {
	return &Node{Tag: tag, Box: box}
}

// Append adopts children and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *Node) Children() []*Node { return n.children }

func (n *Node) OffsetLeft() float64   { return n.Box.Left }
func (n *Node) OffsetTop() float64    { return n.Box.Top }
func (n *Node) OffsetWidth() float64  { return n.Box.Width }
func (n *Node) OffsetHeight() float64 { return n.Box.Height }

func (n *Node) OffsetParent() Element {
	for p := n.parent; p != nil; p = p.parent {
		if p.Positioned || p.parent == nil {
			return p
		}
	}
	return nil
}

func (n *Node) ParentElement() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) ScrollLeft() float64 { return n.Scroll.X }
func (n *Node) ScrollTop() float64  { return n.Scroll.Y }

func (n *Node) ScrollHeight() float64 {
	if n.ContentHeight > 0 {
		return n.ContentHeight
	}
	return n.Box.Height
}

func (n *Node) ClientHeight() float64 {
	if n.VisibleHeight > 0 {
		return n.VisibleHeight
	}
	return n.Box.Height
}

// SetScrollTop clamps v to the scrollable range.
func (n *Node) SetScrollTop(v float64) {
	if limit := n.ScrollHeight() - n.ClientHeight(); v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	n.Scroll.Y = v
}

// Page is a Document over a Node tree.
type Page struct {
	Root           *Node
	ViewportWidth  float64
	ViewportHeight float64
}

var _ Document = Page{}

func (p Page) Body() Element {
	if p.Root == nil {
		return nil
	}
	return p.Root
}

func (p Page) ClientWidth() float64  { return p.ViewportWidth }
func (p Page) ClientHeight() float64 { return p.ViewportHeight }
