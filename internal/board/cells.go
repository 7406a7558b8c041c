package board

import (
	"fmt"

	"github.com/Garsondee/Mesh-Sight/internal/clip"
)

// cellMargin is the cell side measured in gaps between cells.
const cellMargin = 15

// Region cell fills.
const (
	BlankFill = "white"
	GivenFill = "lightsteelblue"
	GlyphFill = "black"
)

// cellFrame maps a point of the unit square into cell i of an order×order
// grid inside the unit square, leaving a thin gap around every cell.
func cellFrame(order, i int) func(p clip.Point) clip.Point {
	small := 1 / float64(order*cellMargin+order+1)
	large := small * (cellMargin + 1)
	dx := float64(i%order) * large
	dy := float64(i/order) * large
	return func(p clip.Point) clip.Point {
		return clip.Point{
			X: small*(p.X*cellMargin+1) + dx,
			Y: small*(p.Y*cellMargin+1) + dy,
		}
	}
}

func placed(verts []clip.Point, f func(clip.Point) clip.Point) []clip.Point {
	out := make([]clip.Point, len(verts))
	for i, v := range verts {
		out[i] = f(v)
	}
	return out
}

// cellPolygons lays out the cell backgrounds of a region followed by the
// digit glyphs of its given cells.
func cellPolygons(order int, cells []int) ([]*clip.Polygon, error) {
	area := order * order
	if len(cells) != area {
		return nil, fmt.Errorf("cells: want %d values for order %d, got %d", area, order, len(cells))
	}
	square := clip.UnitSquare("").Verts
	out := make([]*clip.Polygon, 0, area*2)
	var glyphs []*clip.Polygon
	for i, v := range cells {
		if v < 0 || v > 9 {
			return nil, fmt.Errorf("cell %d: value %d outside 0..9", i, v)
		}
		frame := cellFrame(order, i)
		fill := BlankFill
		if v > 0 {
			fill = GivenFill
			for _, seg := range digitSegments(v) {
				glyphs = append(glyphs, &clip.Polygon{Fill: GlyphFill, Verts: placed(seg, frame)})
			}
		}
		out = append(out, &clip.Polygon{Fill: fill, Verts: placed(square, frame)})
	}
	return append(out, glyphs...), nil
}

// Seven-segment layout in the unit square, segments a..g.
var segments = [7][4]float64{
	{0.25, 0.10, 0.75, 0.20}, // a
	{0.75, 0.20, 0.85, 0.45}, // b
	{0.75, 0.55, 0.85, 0.80}, // c
	{0.25, 0.80, 0.75, 0.90}, // d
	{0.15, 0.55, 0.25, 0.80}, // e
	{0.15, 0.20, 0.25, 0.45}, // f
	{0.25, 0.45, 0.75, 0.55}, // g
}

// digitMasks has bit k set when segment k lights for the digit.
var digitMasks = [10]uint8{
	0b0111111, // 0
	0b0000110, // 1
	0b1011011, // 2
	0b1001111, // 3
	0b1100110, // 4
	0b1101101, // 5
	0b1111101, // 6
	0b0000111, // 7
	0b1111111, // 8
	0b1101111, // 9
}

func digitSegments(d int) [][]clip.Point {
	var out [][]clip.Point
	for k, s := range segments {
		if digitMasks[d]&(1<<k) == 0 {
			continue
		}
		out = append(out, []clip.Point{
			{X: s[0], Y: s[1]},
			{X: s[2], Y: s[1]},
			{X: s[2], Y: s[3]},
			{X: s[0], Y: s[3]},
			{X: s[0], Y: s[1]},
		})
	}
	return out
}
