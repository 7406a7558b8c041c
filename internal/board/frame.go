package board

import (
	"fmt"
	"math"

	"github.com/Garsondee/Mesh-Sight/internal/clip"
	"github.com/Garsondee/Mesh-Sight/internal/mesh"
	"github.com/Garsondee/Mesh-Sight/internal/render"
)

// DrawBound caps how many regions are walked in any direction.
const DrawBound = 6

// Frame fits a board's table onto a canvas.
type Frame struct {
	Width, Height float64 // canvas size
	Cell          float64 // side of one cell
	Origin        clip.Point
	Order         int
	Bound         int
}

// NewFrame centres the board's table on a width×height canvas, keeping margin
// pixels free, and caps walks at bound regions. A bound of 0 draws only the
// viewer's own region.
func NewFrame(b *Board, width, height, margin float64, bound int) (Frame, error) {
	if bound < 0 {
		return Frame{}, fmt.Errorf("%w: draw bound %d", render.ErrLimits, bound)
	}
	tw, th := float64(b.Width), float64(b.Height)
	fit := math.Min((width-margin)/tw, (height-margin)/th)
	cell := fit / float64(b.Order)
	if !(cell > 0) {
		return Frame{}, fmt.Errorf("%w: canvas %vx%v too small", render.ErrTileSize, width, height)
	}
	region := cell * float64(b.Order)
	return Frame{
		Width:  width,
		Height: height,
		Cell:   cell,
		Origin: clip.Point{X: (width - tw*region) * 0.5, Y: (height - th*region) * 0.5},
		Order:  b.Order,
		Bound:  bound,
	}, nil
}

// Region is the side of one region on screen.
func (f Frame) Region() float64 {
	return f.Cell * float64(f.Order)
}

// Anchor is the top-left corner of the region the cursor stands in.
func (f Frame) Anchor(c *Cursor) clip.Point {
	region := f.Region()
	return clip.Point{
		X: f.Origin.X + float64(floorDiv(c.X, f.Order))*region,
		Y: f.Origin.Y + float64(floorDiv(c.Y, f.Order))*region,
	}
}

// CellCorner is the top-left corner of the cursor's cell.
func (f Frame) CellCorner(c *Cursor) clip.Point {
	return clip.Point{X: f.Origin.X + float64(c.X)*f.Cell, Y: f.Origin.Y + float64(c.Y)*f.Cell}
}

// Eye is the centre of the cursor's cell.
func (f Frame) Eye(c *Cursor) clip.Point {
	p := f.CellCorner(c)
	return clip.Point{X: p.X + f.Cell/2, Y: p.Y + f.Cell/2}
}

// Limits are the step budgets that reach the canvas edges from the region at
// anchor, capped at the frame's bound. Budgets never go below zero.
func (f Frame) Limits(anchor clip.Point) render.Limits {
	region := f.Region()
	west := anchor.X / region
	north := anchor.Y / region
	clamp := func(v float64) int {
		n := int(v)
		if n > f.Bound {
			return f.Bound
		}
		if n < 0 {
			return 0
		}
		return n
	}
	return render.Limits{
		clamp(math.Ceil(f.Width/region-west) - 1),
		clamp(math.Ceil(west)),
		clamp(math.Ceil(f.Height/region-north) - 1),
		clamp(math.Ceil(north)),
	}
}

// View gathers what TileTree needs to draw the cursor's surroundings.
type View struct {
	Walk   mesh.Walk
	Anchor clip.Point
	Eye    clip.Point
	Side   float64
	Limits render.Limits
}

// View frames the cursor.
func (f Frame) View(c *Cursor) View {
	anchor := f.Anchor(c)
	return View{
		Walk:   c.Walk(),
		Anchor: anchor,
		Eye:    f.Eye(c),
		Side:   f.Region(),
		Limits: f.Limits(anchor),
	}
}

// Draw renders the cursor's view onto sink.
func (f Frame) Draw(c *Cursor, sink clip.Sink, opts render.Options) (render.Stats, error) {
	v := f.View(c)
	return render.TileTree(v.Walk, v.Anchor, v.Eye, v.Side, v.Limits, sink, opts)
}
