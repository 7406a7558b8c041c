package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/Garsondee/Mesh-Sight/internal/mesh"
)

const pair = `
name: pair
order: 2
table: {width: 2, height: 1}
start: {x: 0, y: 0, tile: 0}
tiles:
  - name: A
    base: white
  - name: B
    polygons:
      - fill: black
        verts: [[0, 0], [1, 0], [1, 1], [0, 0]]
      - null
edges:
  - [0, 1, 0, 0]
`

func mustParse(t *testing.T, src string) *Board {
	t.Helper()
	b, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestParse_Pair(t *testing.T) {
	b := mustParse(t, pair)
	if b.Name != "pair" || b.Order != 2 || b.Width != 2 || b.Height != 1 {
		t.Fatalf("header not parsed: %+v", b)
	}
	a, bt := b.Graph.Tile(b.Regions[0]), b.Graph.Tile(b.Regions[1])
	if a.ID != 0 || bt.ID != 1 {
		t.Fatalf("ids default to the region index, got %d %d", a.ID, bt.ID)
	}
	if len(a.Payload) != 1 || a.Payload[0].Fill != "white" {
		t.Fatalf("base not inserted on A: %+v", a.Payload)
	}
	if len(bt.Payload) != 2 || bt.Payload[0].Fill != "black" || bt.Payload[1] != nil {
		t.Fatalf("B payload=%+v", bt.Payload)
	}
	if e := a.Edge(mesh.East.Index()); e.To != b.Regions[1] {
		t.Fatal("A should lead east to B")
	}
	if e := bt.Edge(mesh.West.Index()); e.To != b.Regions[0] {
		t.Fatal("compact edges are bidirectional")
	}
}

func TestParse_NullPolygonKeepsSlot(t *testing.T) {
	src := strings.Replace(pair, "    polygons:\n", "    polygons:\n      - null\n", 1)
	b := mustParse(t, src)
	bt := b.Graph.Tile(b.Regions[1])
	if len(bt.Payload) != 3 || bt.Payload[0] != nil || bt.Payload[1] == nil || bt.Payload[2] != nil {
		t.Fatalf("payload slots=%+v, want [nil black nil]", bt.Payload)
	}
}

func TestParse_OnewayEdge(t *testing.T) {
	src := strings.Replace(pair, "  - [0, 1, 0, 0]", "  - {from: 0, to: 1, dir: 0, ori: 0, oneway: true}", 1)
	b := mustParse(t, src)
	if b.Graph.Tile(b.Regions[1]).Edge(mesh.West.Index()).Linked() {
		t.Fatal("one-way edge should not link back")
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		old    string
		new    string
		target error
	}{
		{"order", "order: 2", "order: 0", ErrBoard},
		{"table", "{width: 2, height: 1}", "{width: 0, height: 1}", ErrBoard},
		{"dir", "[0, 1, 0, 0]", "[0, 1, 4, 0]", mesh.ErrDirIndex},
		{"ori", "[0, 1, 0, 0]", "[0, 1, 0, 8]", mesh.ErrOriIndex},
		{"edge tile", "[0, 1, 0, 0]", "[0, 2, 0, 0]", ErrBoard},
		{"start tile", "tile: 0}", "tile: 5}", ErrBoard},
		{"start ori", "tile: 0}", "tile: 0, ori: 9}", mesh.ErrOriIndex},
		{"short polygon", "[[0, 0], [1, 0], [1, 1], [0, 0]]", "[[0, 0], [1, 0]]", ErrBoard},
		{"bad vertex", "[[0, 0], [1, 0], [1, 1], [0, 0]]", "[[0, 0], [1, 0, 2], [1, 1]]", ErrBoard},
		{"cells", "base: white", "cells: [1, 2, 3]", ErrBoard},
		{"cell value", "base: white", "cells: [1, 2, 3, 12]", ErrBoard},
	}
	for _, c := range cases {
		src := strings.Replace(pair, c.old, c.new, 1)
		if src == pair {
			t.Fatalf("%s: replacement did not apply", c.name)
		}
		_, err := Parse([]byte(src))
		if !errors.Is(err, c.target) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.target, err)
		}
		if !errors.Is(err, ErrBoard) {
			t.Fatalf("%s: every structural error should wrap ErrBoard, got %v", c.name, err)
		}
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	src := strings.Replace(pair, "[0, 1, 0, 0]", "[0, 1, 0]", 1)
	if _, err := Parse([]byte(src)); err == nil {
		t.Fatal("a three-value half-edge should not parse")
	}
	if _, err := Parse([]byte("tiles: {")); err == nil {
		t.Fatal("expected a YAML error")
	}
	if _, err := Parse([]byte("name: x\norder: 1\ntable: {width: 1, height: 1}\n")); !errors.Is(err, ErrBoard) {
		t.Fatalf("a board without tiles should be rejected, got %v", err)
	}
}

func TestLoad_SampleBoards(t *testing.T) {
	for _, c := range []struct {
		path    string
		regions int
	}{
		{"../../boards/sudoku18.yaml", 18},
		{"../../boards/heart.yaml", 1},
		{"../../boards/torus.yaml", 1},
	} {
		b, err := Load(c.path)
		if err != nil {
			t.Fatalf("%s: %v", c.path, err)
		}
		if len(b.Regions) != c.regions {
			t.Fatalf("%s: %d regions, want %d", c.path, len(b.Regions), c.regions)
		}
	}
	if _, err := Load("../../boards/missing.yaml"); err == nil {
		t.Fatal("expected an error for a missing board")
	}
}

func TestLoad_SudokuCells(t *testing.T) {
	b, err := Load("../../boards/sudoku18.yaml")
	if err != nil {
		t.Fatal(err)
	}
	first := b.Graph.Tile(b.Regions[0])
	if first.Name != "5,2,1,0,7,4,6,3,8" {
		t.Fatalf("region name=%q, want its cells joined", first.Name)
	}
	if first.Payload[0].Fill != GivenFill || first.Payload[3].Fill != BlankFill {
		t.Fatalf("cell fills wrong: %q %q", first.Payload[0].Fill, first.Payload[3].Fill)
	}
	for _, p := range first.Payload[9:] {
		if p.Fill != GlyphFill {
			t.Fatalf("glyphs should follow the cells, got %q", p.Fill)
		}
	}
}

func TestCellPolygons_Layout(t *testing.T) {
	polys, err := cellPolygons(2, []int{0, 1, 0, 8})
	if err != nil {
		t.Fatal(err)
	}
	// 4 cells, 2 segments for the 1 and 7 for the 8.
	if len(polys) != 4+2+7 {
		t.Fatalf("got %d polygons", len(polys))
	}
	for _, p := range polys {
		for _, v := range p.Verts {
			if v.X <= 0 || v.X >= 1 || v.Y <= 0 || v.Y >= 1 {
				t.Fatalf("vertex %v escapes the region", v)
			}
		}
	}
	// Cell 1 sits right of cell 0 on the same row.
	if polys[1].Verts[0].X <= polys[0].Verts[1].X || polys[1].Verts[0].Y != polys[0].Verts[0].Y {
		t.Fatalf("cells not laid out row-major: %v %v", polys[0].Verts, polys[1].Verts)
	}
}

func TestDigitSegments(t *testing.T) {
	want := []int{6, 2, 5, 5, 4, 5, 6, 3, 7, 6}
	for d, n := range want {
		if got := len(digitSegments(d)); got != n {
			t.Fatalf("digit %d lights %d segments, want %d", d, got, n)
		}
	}
}
