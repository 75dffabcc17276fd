package scene

import (
	"image/color"

	"spatial-keyboard/internal/geom"
)

// Node is one object of the scene graph. Transform is relative to the parent:
// the node is rotated by Rotation (XYZ Euler, radians) and then moved to Position,
// pushed along the parent's Z axis by Offset. Size is the full extent of the box
// drawn and hit-tested for this node; a zero Size makes the node a pure group.
type Node struct {
	ID       int64
	Name     string
	Position geom.Vec3
	Rotation geom.Vec3
	Offset   float32
	Size     geom.Vec3
	Color    color.RGBA
	// Hidden hides this node's own box (drawing and hit testing); children are unaffected.
	Hidden bool
	// Label is text drawn on the node's face (key glyphs, panel text).
	Label string

	parent   *Node
	children []*Node
}

// Parent returns the node this node is attached to, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the attached children in insertion order. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Add attaches children to n, detaching each from its previous parent first.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Remove detaches child from n. Returns false if child was not attached to n.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Walk visits n and its descendants depth-first. Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// localOrigin is where the node's own frame sits inside its parent's frame.
func (n *Node) localOrigin() geom.Vec3 {
	return n.Position.Add(geom.V3(0, 0, n.Offset))
}

// WorldPoint converts a point in n's local frame to world space.
func (n *Node) WorldPoint(local geom.Vec3) geom.Vec3 {
	p := local
	for cur := n; cur != nil; cur = cur.parent {
		p = p.RotateEuler(cur.Rotation).Add(cur.localOrigin())
	}
	return p
}

// Graph is the live scene: everything reachable from Root is a member.
// IDs are unique within one graph and never reused.
type Graph struct {
	Root   *Node
	nextID int64
}

// New returns an empty graph with a root group node.
func New() *Graph {
	g := &Graph{}
	g.Root = g.NewNode("root")
	return g
}

// NewNode creates a detached node with a fresh ID. Nodes are visible groups until given a Size.
func (g *Graph) NewNode(name string) *Node {
	g.nextID++
	return &Node{ID: g.nextID, Name: name, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}}
}

// Add attaches nodes directly under the root.
func (g *Graph) Add(nodes ...*Node) {
	g.Root.Add(nodes...)
}

// ObjectByID walks the live graph looking for id. The lookup is never cached, so a node
// detached anywhere along its ancestry stops being found immediately.
func (g *Graph) ObjectByID(id int64) *Node {
	var found *Node
	g.Root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// IsLiveMember reports whether n is currently attached to this graph.
func (g *Graph) IsLiveMember(n *Node) bool {
	return n != nil && g.ObjectByID(n.ID) == n
}

// Len returns the number of live nodes, root included.
func (g *Graph) Len() int {
	count := 0
	g.Root.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
