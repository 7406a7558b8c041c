package mesh

import "fmt"

// Walk is a cursor over a Graph: the tile it stands on and the orientation
// that tile has from the walker's point of view. A Walk is a small value;
// copying it forks an independent cursor over the same graph.
type Walk struct {
	g    *Graph
	tile Ref
	ori  Symmetry
}

// StartWalk returns a walk standing on tile in orientation ori.
func StartWalk(g *Graph, tile Ref, ori Symmetry) Walk {
	return Walk{g: g, tile: tile, ori: ori}
}

// CanContinue is false once the walk has stepped onto Empty.
func (w *Walk) CanContinue() bool {
	return w.g.valid(w.tile)
}

// Attempt moves one tile in dir (relative to the current orientation) when
// that edge is linked and reports whether it moved. A wall leaves the walk
// untouched.
func (w *Walk) Attempt(dir Cardinal) bool {
	t := w.g.Tile(w.tile)
	if t == nil {
		return false
	}
	e := t.edges[dir.TransferTo(w.ori).Index()]
	if !e.Linked() {
		return false
	}
	w.ori = TakeStep(w.ori, e.Rel)
	w.tile = e.To
	return true
}

// To moves one tile in dir unconditionally. Through an unlinked edge the walk
// lands on Empty and keeps its orientation; from Empty it stays there.
func (w *Walk) To(dir Cardinal) *Walk {
	t := w.g.Tile(w.tile)
	if t == nil {
		w.tile = Empty
		return w
	}
	e := t.edges[dir.TransferTo(w.ori).Index()]
	if e.Linked() {
		w.ori = TakeStep(w.ori, e.Rel)
	}
	w.tile = e.To
	return w
}

// From resets the walk to tile and ori without any checks.
func (w *Walk) From(tile Ref, ori Symmetry) *Walk {
	w.tile = tile
	w.ori = ori
	return w
}

// CurrTile is the tile the walk stands on (possibly Empty).
func (w *Walk) CurrTile() Ref {
	return w.tile
}

// CurrOri is the current orientation.
func (w *Walk) CurrOri() Symmetry {
	return w.ori
}

// Graph is the graph being walked.
func (w *Walk) Graph() *Graph {
	return w.g
}

// Tile is the tile the walk stands on, or nil on Empty.
func (w *Walk) Tile() *Tile {
	return w.g.Tile(w.tile)
}

// String renders the walk as tile name followed by orientation digit, e.g. "A3".
func (w *Walk) String() string {
	t := w.Tile()
	if t == nil {
		return fmt.Sprintf("<empty>%s", w.ori)
	}
	return t.Name + w.ori.String()
}
