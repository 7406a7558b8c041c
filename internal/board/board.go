// Package board reads board files and turns them into a tile mesh that a
// Cursor can move over.
//
// A board is a set of square regions, each order×order cells, glued together
// by half-edges carrying a direction and an orientation. The regions become
// mesh tiles; the cells only matter for drawing and for where the Cursor is
// allowed to cross into a neighbour.
package board

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Mesh-Sight/internal/clip"
	"github.com/Garsondee/Mesh-Sight/internal/logging"
	"github.com/Garsondee/Mesh-Sight/internal/mesh"
)

// ErrBoard reports a structural problem in a board file.
var ErrBoard = errors.New("board: invalid board")

// File is the YAML form of a board.
type File struct {
	Name  string     `yaml:"name"`
	Order int        `yaml:"order"`
	Table TableSpec  `yaml:"table"`
	Start StartSpec  `yaml:"start"`
	Tiles []TileSpec `yaml:"tiles"`
	Edges []EdgeSpec `yaml:"edges"`
}

// TableSpec is the on-screen size of the board in regions.
type TableSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StartSpec places the viewer: a cell in level coordinates, the region it
// stands in and that region's orientation.
type StartSpec struct {
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
	Tile int `yaml:"tile"`
	Ori  int `yaml:"ori"`
}

// TileSpec describes one region. Cells, when present, lists order*order
// values: 0 is a blank cell, 1..9 a given cell showing that digit.
type TileSpec struct {
	Name     string         `yaml:"name"`
	ID       *int           `yaml:"id"`
	Base     string         `yaml:"base"`
	Cells    []int          `yaml:"cells"`
	Polygons []*PolygonSpec `yaml:"polygons"`
}

// PolygonSpec is a filled polygon in unit-square coordinates. A null entry
// in a polygons list is kept as a nil payload slot.
type PolygonSpec struct {
	Fill  string      `yaml:"fill"`
	Verts [][]float64 `yaml:"verts"`
}

// EdgeSpec links region From to region To across From's side Dir. Besides
// the mapping form it accepts the compact sequence [from, to, dir, ori].
type EdgeSpec struct {
	From   int  `yaml:"from"`
	To     int  `yaml:"to"`
	Dir    int  `yaml:"dir"`
	Ori    int  `yaml:"ori"`
	Oneway bool `yaml:"oneway"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *EdgeSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var v []int
		if err := value.Decode(&v); err != nil {
			return err
		}
		if len(v) != 4 {
			return fmt.Errorf("line %d: half-edge needs [from, to, dir, ori], got %d values", value.Line, len(v))
		}
		*e = EdgeSpec{From: v[0], To: v[1], Dir: v[2], Ori: v[3]}
		return nil
	}
	type plain EdgeSpec
	return value.Decode((*plain)(e))
}

// Board is a parsed board with its mesh built.
type Board struct {
	Name          string
	Order         int
	Width, Height int // table size in regions

	Graph   *mesh.Graph
	Regions []mesh.Ref // region index -> tile

	StartX, StartY int
	StartRegion    int
	StartOri       mesh.Symmetry
}

// Load reads and builds the board file at path.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read board file: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a YAML board and builds it.
func Parse(data []byte) (*Board, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse board file: %w", err)
	}
	return Build(&f)
}

// Build validates f and links its regions in file order.
func Build(f *File) (*Board, error) {
	if f.Order < 1 {
		return nil, fmt.Errorf("%w: order must be positive, got %d", ErrBoard, f.Order)
	}
	if f.Table.Width < 1 || f.Table.Height < 1 {
		return nil, fmt.Errorf("%w: table must be at least 1x1, got %dx%d", ErrBoard, f.Table.Width, f.Table.Height)
	}
	if len(f.Tiles) == 0 {
		return nil, fmt.Errorf("%w: no tiles", ErrBoard)
	}

	g := mesh.NewGraph()
	regions := make([]mesh.Ref, len(f.Tiles))
	for i, ts := range f.Tiles {
		payload, err := regionPayload(f.Order, ts)
		if err != nil {
			return nil, fmt.Errorf("%w: tile %d: %w", ErrBoard, i, err)
		}
		id := i
		if ts.ID != nil {
			id = *ts.ID
		}
		name := ts.Name
		if name == "" && len(ts.Cells) > 0 {
			name = joinCells(ts.Cells)
		}
		regions[i] = g.CreateTile(payload, name, id)
		if ts.Base != "" {
			if err := g.InsertBase(regions[i], ts.Base); err != nil {
				return nil, err
			}
		}
	}

	inRange := func(n int) bool { return n >= 0 && n < len(regions) }
	for i, e := range f.Edges {
		if !inRange(e.From) || !inRange(e.To) {
			return nil, fmt.Errorf("%w: edge %d: tile index out of range (%d -> %d, %d tiles)", ErrBoard, i, e.From, e.To, len(regions))
		}
		dir, err := mesh.DirFromIndex(e.Dir)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrBoard, i, err)
		}
		ori, err := mesh.OriFromIndex(e.Ori)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrBoard, i, err)
		}
		if err := g.Link(regions[e.From], regions[e.To], dir, ori, !e.Oneway); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrBoard, i, err)
		}
	}

	if !inRange(f.Start.Tile) {
		return nil, fmt.Errorf("%w: start tile %d out of range", ErrBoard, f.Start.Tile)
	}
	startOri, err := mesh.OriFromIndex(f.Start.Ori)
	if err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrBoard, err)
	}

	b := &Board{
		Name:        f.Name,
		Order:       f.Order,
		Width:       f.Table.Width,
		Height:      f.Table.Height,
		Graph:       g,
		Regions:     regions,
		StartX:      f.Start.X,
		StartY:      f.Start.Y,
		StartRegion: f.Start.Tile,
		StartOri:    startOri,
	}
	logging.L().Info("board built",
		"name", b.Name,
		"order", b.Order,
		"regions", len(regions),
		"edges", len(f.Edges))
	return b, nil
}

// StartWalk returns a walk on the start region in the start orientation.
func (b *Board) StartWalk() mesh.Walk {
	return mesh.StartWalk(b.Graph, b.Regions[b.StartRegion], b.StartOri)
}

func regionPayload(order int, ts TileSpec) ([]*clip.Polygon, error) {
	var payload []*clip.Polygon
	if len(ts.Cells) > 0 {
		cells, err := cellPolygons(order, ts.Cells)
		if err != nil {
			return nil, err
		}
		payload = append(payload, cells...)
	}
	for j, ps := range ts.Polygons {
		if ps == nil {
			payload = append(payload, nil)
			continue
		}
		if len(ps.Verts) < 3 {
			return nil, fmt.Errorf("polygon %d: need at least 3 vertices, got %d", j, len(ps.Verts))
		}
		verts := make([]clip.Point, len(ps.Verts))
		for k, v := range ps.Verts {
			if len(v) != 2 {
				return nil, fmt.Errorf("polygon %d: vertex %d needs [x, y]", j, k)
			}
			verts[k] = clip.Point{X: v[0], Y: v[1]}
		}
		payload = append(payload, &clip.Polygon{Fill: ps.Fill, Verts: verts})
	}
	return payload, nil
}

func joinCells(cells []int) string {
	s := make([]string, len(cells))
	for i, c := range cells {
		s[i] = strconv.Itoa(c)
	}
	return strings.Join(s, ",")
}
