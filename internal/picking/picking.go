// Package picking finds the nearest candidate hit by a ray.
//
// Every frame each candidate is hit-tested in order, so the cost is O(candidates).
// There is no spatial index: candidate sets are a panel plus its keys. Larger scenes
// would need a BVH or per-panel bounds before this becomes a bottleneck.
package picking

import (
	"fmt"

	"spatial-keyboard/internal/geom"
	"spatial-keyboard/internal/logger"
	"spatial-keyboard/internal/scene"
)

// Candidate is anything that can be picked. Object is the top-level node whose whole
// subtree is hit-tested; hits on descendants resolve back to the candidate.
type Candidate interface {
	Object() *scene.Node
}

// Membership reports whether a node is attached to the live scene.
type Membership interface {
	IsLiveMember(n *scene.Node) bool
}

// HitTester intersects a ray with a node (and its subtree when recursive), nearest first.
type HitTester interface {
	HitTest(r geom.Ray, n *scene.Node, recursive bool) ([]scene.Hit, error)
}

// Intersection is the nearest hit of a frame. Object is always the candidate, never
// the sub-part (frame, label) that was geometrically hit.
type Intersection struct {
	Object   Candidate
	Point    geom.Vec3
	Distance float32
}

type obstacle struct {
	node *scene.Node
}

func (o obstacle) Object() *scene.Node { return o.node }

// Obstacle makes a plain scene node pickable. It occludes interactive elements behind it
// but is never interactive itself (e.g. the room around the user).
func Obstacle(n *scene.Node) Candidate {
	return obstacle{node: n}
}

// Set is the ordered candidate set. Members are added once at setup and never removed:
// a candidate detached from the scene is skipped by Pick, not deleted.
type Set struct {
	items []Candidate
}

// NewSet returns an empty candidate set.
func NewSet() *Set {
	return &Set{}
}

// Add appends candidates in pick order.
func (s *Set) Add(c ...Candidate) {
	for _, x := range c {
		if x != nil {
			s.items = append(s.items, x)
		}
	}
}

// Items returns the candidates in order. The slice must not be modified.
func (s *Set) Items() []Candidate {
	return s.items
}

func (s *Set) Len() int {
	return len(s.items)
}

// Pick folds over the candidates and returns the nearest live hit. Ties keep the candidate
// added first. A hit test that fails or panics is logged and that candidate is skipped.
func Pick(r geom.Ray, set *Set, members Membership, tester HitTester, log *logger.Logger) (Intersection, bool) {
	var best Intersection
	found := false
	if set == nil {
		return best, false
	}
	for _, c := range set.items {
		obj := c.Object()
		if obj == nil || !members.IsLiveMember(obj) {
			continue
		}
		hits, err := safeHitTest(tester, r, obj)
		if err != nil {
			log.Warnf("picking: hit test on %q (id %d): %v", obj.Name, obj.ID, err)
			continue
		}
		if len(hits) == 0 {
			continue
		}
		if !found || hits[0].Distance < best.Distance {
			best = Intersection{Object: c, Point: hits[0].Point, Distance: hits[0].Distance}
			found = true
		}
	}
	return best, found
}

func safeHitTest(tester HitTester, r geom.Ray, n *scene.Node) (hits []scene.Hit, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return tester.HitTest(r, n, true)
}
