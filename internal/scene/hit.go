package scene

import (
	"errors"
	"sort"

	"spatial-keyboard/internal/geom"
)

// ErrInvalidRay is returned by HitTest for rays without a usable direction.
var ErrInvalidRay = errors.New("scene: invalid ray")

// Hit is one intersection of a ray with a node's box.
type Hit struct {
	Node     *Node
	Distance float32
	Point    geom.Vec3
}

// HitTest intersects r (world space) with n and, when recursive is true, its whole subtree.
// Hits are sorted by distance ascending; an empty result means no hit.
// Transforms are rigid (no scale), so distances in any local frame equal world distances.
func (g *Graph) HitTest(r geom.Ray, n *Node, recursive bool) ([]Hit, error) {
	if n == nil {
		return nil, errors.New("scene: hit test on nil node")
	}
	if !r.Valid() {
		return nil, ErrInvalidRay
	}

	// Bring the ray into the frame n lives in.
	var chain []*Node
	for cur := n.parent; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	local := r
	for i := len(chain) - 1; i >= 0; i-- {
		local = toLocal(local, chain[i])
	}

	var hits []Hit
	collectHits(r, local, n, recursive, &hits)
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits, nil
}

// toLocal maps a ray from n's parent frame into n's own frame.
func toLocal(r geom.Ray, n *Node) geom.Ray {
	return geom.Ray{
		Origin:    r.Origin.Sub(n.localOrigin()).UnrotateEuler(n.Rotation),
		Direction: r.Direction.UnrotateEuler(n.Rotation),
	}
}

func collectHits(world, parentLocal geom.Ray, n *Node, recursive bool, out *[]Hit) {
	local := toLocal(parentLocal, n)
	box := geom.Box{Size: n.Size}
	if !n.Hidden && !box.Empty() {
		if t, ok := box.Intersect(local); ok {
			*out = append(*out, Hit{Node: n, Distance: t, Point: world.At(t)})
		}
	}
	if !recursive {
		return
	}
	for _, c := range n.children {
		collectHits(world, local, c, true, out)
	}
}
