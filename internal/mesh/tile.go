package mesh

import (
	"errors"
	"fmt"

	"github.com/Garsondee/Mesh-Sight/internal/clip"
)

// ErrUnknownTile is returned when a Ref does not name a tile in the graph.
var ErrUnknownTile = errors.New("mesh: unknown tile")

// Ref is a stable handle to a tile inside a Graph.
type Ref int32

// Empty is the neighbor of every unlinked edge. A walk standing on Empty
// cannot continue.
const Empty Ref = -1

// DefaultName and DefaultID are given to tiles created without an identity.
const (
	DefaultName = "tile_string"
	DefaultID   = -1
)

// Edge is one directed, oriented connection out of a tile. Rel is only
// meaningful when To is not Empty.
type Edge struct {
	To  Ref
	Rel Symmetry
}

// Linked reports whether the edge leads to a real tile.
func (e Edge) Linked() bool {
	return e.To != Empty
}

// Tile is a node of the board graph: a drawable payload plus four edges,
// indexed by Cardinal.Index in the tile's default orientation.
type Tile struct {
	Name    string
	ID      int
	Payload []*clip.Polygon // nil entries are skipped when drawing

	edges [4]Edge
}

// Edge returns the connection in the given slot.
func (t *Tile) Edge(slot int) Edge {
	return t.edges[slot]
}

func (t *Tile) String() string {
	return t.Name
}

// Graph owns every tile of a board. Tiles refer to each other through Refs,
// so the graph may be cyclic and self-linked. Edges are set up once and the
// graph is read-only afterwards; any number of walks may share it.
type Graph struct {
	tiles []Tile
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// CreateTile adds an unlinked tile and returns its handle. An empty name
// becomes DefaultName.
func (g *Graph) CreateTile(payload []*clip.Polygon, name string, id int) Ref {
	if name == "" {
		name = DefaultName
	}
	t := Tile{Name: name, ID: id, Payload: payload}
	for i := range t.edges {
		t.edges[i] = Edge{To: Empty}
	}
	g.tiles = append(g.tiles, t)
	return Ref(len(g.tiles) - 1)
}

// Len is the number of tiles.
func (g *Graph) Len() int {
	return len(g.tiles)
}

// Tile returns the tile behind r, or nil for Empty and unknown refs.
func (g *Graph) Tile(r Ref) *Tile {
	if !g.valid(r) {
		return nil
	}
	return &g.tiles[r]
}

func (g *Graph) valid(r Ref) bool {
	return r >= 0 && int(r) < len(g.tiles)
}

// Link connects from to target: walking dir out of from (in its default
// orientation) reaches target, which then lies in orientation ori relative to
// from. With bidirectional set, the matching edge back from target to from is
// created as well. Self links and repeated links between the same pair are
// allowed; a later link overwrites the slot.
func (g *Graph) Link(from, target Ref, dir Cardinal, ori Symmetry, bidirectional bool) error {
	if !g.valid(from) {
		return fmt.Errorf("%w: %d", ErrUnknownTile, from)
	}
	if !g.valid(target) {
		return fmt.Errorf("%w: %d", ErrUnknownTile, target)
	}
	g.tiles[from].edges[dir.Index()] = Edge{To: target, Rel: ori}
	if bidirectional {
		back := dir.Opposite().TransferTo(ori)
		g.tiles[target].edges[back.Index()] = Edge{To: from, Rel: backRelation(ori)}
	}
	return nil
}

// InsertBase puts a full-tile square with the given fill underneath the rest
// of the tile's payload.
func (g *Graph) InsertBase(r Ref, fill string) error {
	t := g.Tile(r)
	if t == nil {
		return fmt.Errorf("%w: %d", ErrUnknownTile, r)
	}
	base := clip.UnitSquare(fill)
	t.Payload = append([]*clip.Polygon{base}, t.Payload...)
	return nil
}
