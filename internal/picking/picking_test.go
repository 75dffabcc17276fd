package picking

import (
	"errors"
	"strings"
	"testing"

	"spatial-keyboard/internal/geom"
	"spatial-keyboard/internal/logger"
	"spatial-keyboard/internal/scene"
)

// stubTester returns canned hit distances per node id.
type stubTester struct {
	dist   map[int64]float32
	fail   map[int64]error
	panics map[int64]bool
	calls  []int64
}

func (s *stubTester) HitTest(r geom.Ray, n *scene.Node, recursive bool) ([]scene.Hit, error) {
	s.calls = append(s.calls, n.ID)
	if s.panics[n.ID] {
		panic("broken geometry")
	}
	if err := s.fail[n.ID]; err != nil {
		return nil, err
	}
	d, ok := s.dist[n.ID]
	if !ok {
		return nil, nil
	}
	// A sub-part hit: the candidate must still be reported.
	return []scene.Hit{{Node: &scene.Node{Name: "frame"}, Distance: d, Point: r.At(d)}}, nil
}

type liveSet map[int64]bool

func (l liveSet) IsLiveMember(n *scene.Node) bool { return l[n.ID] }

type element struct{ node *scene.Node }

func (e *element) Object() *scene.Node { return e.node }

func newElements(n int) []*element {
	out := make([]*element, n)
	for i := range out {
		out[i] = &element{node: &scene.Node{ID: int64(i + 1), Name: "el"}}
	}
	return out
}

var forward = geom.NewRay(geom.V3(0, 0, 0), geom.V3(0, 0, -1))

func TestPickNearestLive(t *testing.T) {
	els := newElements(4)
	set := NewSet()
	for _, e := range els {
		set.Add(e)
	}

	tests := []struct {
		name     string
		dist     map[int64]float32
		live     liveSet
		want     Candidate
		wantDist float32
	}{
		{
			name:     "minimum distance wins",
			dist:     map[int64]float32{1: 3, 2: 1.5, 3: 2, 4: 5},
			live:     liveSet{1: true, 2: true, 3: true, 4: true},
			want:     els[1],
			wantDist: 1.5,
		},
		{
			name:     "removed member never returned",
			dist:     map[int64]float32{1: 3, 2: 1.5, 3: 2},
			live:     liveSet{1: true, 3: true},
			want:     els[2],
			wantDist: 2,
		},
		{
			name:     "tie keeps first added",
			dist:     map[int64]float32{2: 1, 3: 1, 4: 1},
			live:     liveSet{1: true, 2: true, 3: true, 4: true},
			want:     els[1],
			wantDist: 1,
		},
		{
			name: "no hits",
			dist: map[int64]float32{},
			live: liveSet{1: true, 2: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := &stubTester{dist: tt.dist}
			got, ok := Pick(forward, set, tt.live, tester, nil)
			if tt.want == nil {
				if ok {
					t.Fatalf("Pick() = %+v, want none", got)
				}
				return
			}
			if !ok {
				t.Fatal("Pick() found nothing")
			}
			if got.Object != tt.want {
				t.Errorf("Pick().Object = %v, want %v", got.Object, tt.want)
			}
			if got.Distance != tt.wantDist {
				t.Errorf("Pick().Distance = %v, want %v", got.Distance, tt.wantDist)
			}
			if !got.Point.ApproxEqual(geom.V3(0, 0, -tt.wantDist), 1e-6) {
				t.Errorf("Pick().Point = %+v", got.Point)
			}
		})
	}
}

func TestPickSkipsDeadWithoutHitTest(t *testing.T) {
	els := newElements(2)
	set := NewSet()
	set.Add(els[0], els[1])
	tester := &stubTester{dist: map[int64]float32{1: 1, 2: 2}}
	Pick(forward, set, liveSet{2: true}, tester, nil)
	if len(tester.calls) != 1 || tester.calls[0] != 2 {
		t.Errorf("hit-tested %v, want only [2]", tester.calls)
	}
	if set.Len() != 2 {
		t.Errorf("Pick mutated the candidate set: len %d", set.Len())
	}
}

func TestPickIsolatesFailures(t *testing.T) {
	els := newElements(3)
	set := NewSet()
	set.Add(els[0], els[1], els[2])
	tester := &stubTester{
		dist:   map[int64]float32{1: 0.5, 2: 0.2, 3: 4},
		fail:   map[int64]error{1: errors.New("degenerate mesh")},
		panics: map[int64]bool{2: true},
	}
	log := logger.New("")
	got, ok := Pick(forward, set, liveSet{1: true, 2: true, 3: true}, tester, log)
	if !ok || got.Object != els[2] {
		t.Fatalf("Pick() = %+v, %v; want the only healthy candidate", got, ok)
	}
	lines := log.Lines()
	if len(lines) != 2 {
		t.Fatalf("logged %d lines, want 2: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "degenerate mesh") || !strings.Contains(lines[1], "panic") {
		t.Errorf("unexpected log lines: %v", lines)
	}
}

func TestObstacleCanOcclude(t *testing.T) {
	wall := &scene.Node{ID: 10, Name: "room"}
	key := &element{node: &scene.Node{ID: 11, Name: "key"}}
	set := NewSet()
	set.Add(Obstacle(wall), key)
	tester := &stubTester{dist: map[int64]float32{10: 1, 11: 2}}
	got, ok := Pick(forward, set, liveSet{10: true, 11: true}, tester, nil)
	if !ok || got.Object.Object() != wall {
		t.Errorf("nearest should be the obstacle, got %+v", got)
	}
}

func TestPickAgainstSceneGraph(t *testing.T) {
	g := scene.New()
	near := g.NewNode("near")
	near.Position = geom.V3(0, 0, -1)
	near.Size = geom.V3(1, 1, 0)
	far := g.NewNode("far")
	far.Position = geom.V3(0, 0, -3)
	far.Size = geom.V3(1, 1, 0)
	g.Add(near, far)

	a, b := &element{node: far}, &element{node: near}
	set := NewSet()
	set.Add(a, b)

	got, ok := Pick(forward, set, g, g, nil)
	if !ok || got.Object != b {
		t.Fatalf("Pick() = %+v, want near", got)
	}
	g.Root.Remove(near)
	got, ok = Pick(forward, set, g, g, nil)
	if !ok || got.Object != a {
		t.Fatalf("after removal Pick() = %+v, want far", got)
	}
}
