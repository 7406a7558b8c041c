package mesh

import (
	"errors"
	"strings"
	"testing"

	"github.com/Garsondee/Mesh-Sight/internal/clip"
)

// newABC builds the three-tile fixture: mixed bidirectional links, a one-way
// self loop on B and a one-way reflection from C back to A.
func newABC(t *testing.T) (*Graph, [3]Ref) {
	t.Helper()
	g := NewGraph()
	var abc [3]Ref
	for i, name := range []string{"A", "B", "C"} {
		abc[i] = g.CreateTile(nil, name, i)
	}
	a, b, c := abc[0], abc[1], abc[2]
	links := []struct {
		from, to Ref
		dir, ori int
		both     bool
	}{
		{a, b, 0, 0, true},
		{a, b, 2, 6, true},
		{c, a, 3, 2, true},
		{b, c, 3, 0, true},
		{c, a, 0, 0, true},
		{b, b, 2, 2, false},
		{c, a, 1, 1, false},
	}
	for _, l := range links {
		if err := g.Link(l.from, l.to, GetDir(l.dir), GetOri(l.ori), l.both); err != nil {
			t.Fatalf("link %d->%d: %v", l.from, l.to, err)
		}
	}
	return g, abc
}

func neighborNames(g *Graph, r Ref) string {
	names := make([]string, 4)
	for i := range names {
		names[i] = g.Tile(g.Tile(r).Edge(i).To).String()
	}
	return strings.Join(names, ",")
}

func TestCreateTile_Unlinked(t *testing.T) {
	g := NewGraph()
	r := g.CreateTile(nil, "", DefaultID)
	tile := g.Tile(r)
	if tile.Name != DefaultName || tile.ID != DefaultID {
		t.Fatalf("defaults not applied: %q %d", tile.Name, tile.ID)
	}
	for i := 0; i < 4; i++ {
		if tile.Edge(i).Linked() {
			t.Fatalf("slot %d should start unlinked", i)
		}
	}
}

func TestLink_ABCFixture(t *testing.T) {
	g, abc := newABC(t)
	a, b := g.Tile(abc[0]), g.Tile(abc[1])

	if got := b.Edge(1).Rel.String(); got != "0" {
		t.Fatalf("B's <- relation=%s, want 0", got)
	}
	if got := b.Edge(0).Rel.String(); got != "5" {
		t.Fatalf("B's -> relation=%s, want 5", got)
	}
	if got := a.Edge(3).Rel.String(); got != "2" {
		t.Fatalf("A's /\\ relation=%s, want 2", got)
	}
	if got := neighborNames(g, abc[0]); got != "B,C,B,C" {
		t.Fatalf("A neighbors=%s, want B,C,B,C", got)
	}
	if got := neighborNames(g, abc[1]); got != "A,A,B,C" {
		t.Fatalf("B neighbors=%s, want A,A,B,C", got)
	}
	if got := neighborNames(g, abc[2]); got != "A,A,B,A" {
		t.Fatalf("C neighbors=%s, want A,A,B,A", got)
	}
}

func TestWalk_ABCFixtureReturnsInOrientation3(t *testing.T) {
	g, abc := newABC(t)
	w := StartWalk(g, abc[0], GetOri(0))
	seq := []Cardinal{West, South, East, North}
	for i := 0; i < 6; i++ {
		w.To(seq[i%4])
	}
	if got := w.String(); got != "A3" {
		t.Fatalf("walk <- \\/ -> /\\ <- \\/ from A0 ended at %s, want A3", got)
	}
}

func TestLink_RoundTripEveryRelation(t *testing.T) {
	for d := 0; d < 4; d++ {
		for o := 0; o < 8; o++ {
			g := NewGraph()
			a := g.CreateTile(nil, "A", 0)
			b := g.CreateTile(nil, "B", 1)
			dir := GetDir(d)
			if err := g.Link(a, b, dir, GetOri(o), true); err != nil {
				t.Fatal(err)
			}
			w := StartWalk(g, a, GetOri(0))
			w.To(dir)
			if w.CurrTile() != b {
				t.Fatalf("dir %s ori %d: first step did not reach B", dir, o)
			}
			w.To(dir.Opposite())
			if w.CurrTile() != a || w.CurrOri() != GetOri(0) {
				t.Fatalf("dir %s ori %d: round trip ended at %s", dir, o, w.String())
			}
		}
	}
}

func TestLink_SelfLoop(t *testing.T) {
	g := NewGraph()
	a := g.CreateTile(nil, "A", 0)
	if err := g.Link(a, a, East, GetOri(7), true); err != nil {
		t.Fatal(err)
	}
	w := StartWalk(g, a, GetOri(0))
	if !w.Attempt(East) {
		t.Fatal("self link should be walkable")
	}
	if w.CurrTile() != a || w.CurrOri() != GetOri(7) {
		t.Fatalf("after self step got %s, want A7", w.String())
	}
}

func TestLink_UnknownTile(t *testing.T) {
	g := NewGraph()
	a := g.CreateTile(nil, "A", 0)
	if err := g.Link(a, Ref(5), East, GetOri(0), true); !errors.Is(err, ErrUnknownTile) {
		t.Fatalf("expected ErrUnknownTile, got %v", err)
	}
	if err := g.Link(Empty, a, East, GetOri(0), true); !errors.Is(err, ErrUnknownTile) {
		t.Fatalf("expected ErrUnknownTile for Empty, got %v", err)
	}
}

func TestAttempt_WallLeavesWalkUnchanged(t *testing.T) {
	g, _ := newABC(t)
	lone := g.CreateTile(nil, "L", 9)
	w := StartWalk(g, lone, GetOri(5))
	before := w
	for _, d := range []Cardinal{East, West, South, North} {
		if w.Attempt(d) {
			t.Fatalf("attempt %s on isolated tile should fail", d)
		}
		if w != before {
			t.Fatalf("failed attempt changed walk: %s -> %s", before.String(), w.String())
		}
	}
}

func TestAttempt_OneWayEdgeHasNoReturn(t *testing.T) {
	g := NewGraph()
	a := g.CreateTile(nil, "A", 0)
	b := g.CreateTile(nil, "B", 1)
	if err := g.Link(a, b, East, GetOri(0), false); err != nil {
		t.Fatal(err)
	}
	w := StartWalk(g, a, GetOri(0))
	if !w.Attempt(East) {
		t.Fatal("one-way edge should be walkable forwards")
	}
	if w.Attempt(West) {
		t.Fatal("one-way edge should not be walkable backwards")
	}
	if w.String() != "B0" {
		t.Fatalf("expected to stay on B0, got %s", w.String())
	}
}

func TestAttempt_FollowsOrientation(t *testing.T) {
	g, abc := newABC(t)
	// Held in orientation 1 (horizontal flip), walking west uses A's east slot.
	w := StartWalk(g, abc[0], GetOri(1))
	if !w.Attempt(West) {
		t.Fatal("expected A's east edge to be used")
	}
	if w.CurrTile() != abc[1] {
		t.Fatalf("expected to land on B, got %s", w.String())
	}
}

func TestTo_ThroughWallLandsOnEmpty(t *testing.T) {
	g := NewGraph()
	a := g.CreateTile(nil, "A", 0)
	w := StartWalk(g, a, GetOri(3))
	w.To(North)
	if w.CanContinue() {
		t.Fatal("walk through an unlinked edge should land on Empty")
	}
	if w.CurrOri() != GetOri(3) {
		t.Fatal("orientation should not change through an unlinked edge")
	}
	w.To(East)
	if w.CurrTile() != Empty {
		t.Fatal("walk should stay on Empty")
	}
	w.From(a, GetOri(0))
	if !w.CanContinue() || w.String() != "A0" {
		t.Fatalf("From should reset the walk, got %s", w.String())
	}
}

func TestWalk_CopiesAreIndependent(t *testing.T) {
	g, abc := newABC(t)
	w := StartWalk(g, abc[0], GetOri(0))
	fork := w
	fork.To(East)
	if w.CurrTile() != abc[0] {
		t.Fatal("stepping a copy moved the original walk")
	}
	if fork.CurrTile() != abc[1] {
		t.Fatalf("fork should be on B, got %s", fork.String())
	}
}

func TestInsertBase_Prepends(t *testing.T) {
	g := NewGraph()
	glyph := &clip.Polygon{Fill: "black", Verts: []clip.Point{{X: 0.1, Y: 0.1}, {X: 0.2, Y: 0.1}, {X: 0.2, Y: 0.2}}}
	r := g.CreateTile([]*clip.Polygon{glyph}, "A", 0)
	if err := g.InsertBase(r, "white"); err != nil {
		t.Fatal(err)
	}
	p := g.Tile(r).Payload
	if len(p) != 2 || p[0].Fill != "white" || p[1] != glyph {
		t.Fatalf("base not inserted first: %+v", p)
	}
	if err := g.InsertBase(Empty, "white"); !errors.Is(err, ErrUnknownTile) {
		t.Fatalf("expected ErrUnknownTile, got %v", err)
	}
}
