// Package render draws the part of a tile mesh a single viewer can see.
//
// TileTree walks outward from the viewer's tile in four diagonal sweeps. Each
// sweep keeps a wedge of sight bounded by two lines from the viewer's eye and
// narrows it as it moves away, so tiles hidden behind the corner of a wall are
// never reached. Step budgets bound the walk on cyclic meshes.
package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/Garsondee/Mesh-Sight/internal/clip"
	"github.com/Garsondee/Mesh-Sight/internal/logging"
	"github.com/Garsondee/Mesh-Sight/internal/mesh"
)

var (
	// ErrTileSize is returned for a tile side that is not a positive finite number.
	ErrTileSize = errors.New("render: tile size must be positive")
	// ErrLimits is returned when any step budget is negative.
	ErrLimits = errors.New("render: step limits must not be negative")
)

// Limits are the step budgets per direction, indexed by Cardinal.Index():
// east, west, south, north.
type Limits [4]int

func (l Limits) String() string {
	return fmt.Sprintf("E%d W%d S%d N%d", l[0], l[1], l[2], l[3])
}

// Options tune how tiles are drawn.
type Options struct {
	// Outline strokes every filled polygon when the sink supports it.
	Outline      bool
	OutlineWidth float64
}

// Stats summarise one TileTree call.
type Stats struct {
	Tiles    int // tile draws
	Polygons int // polygons that survived clipping
	Branches int // recursive branch visits
	Pruned   int // branches cut because the wedge closed
	MaxDepth int
}

// quadrant is one diagonal sweep. The branch point sits on the tile corner
// selected by right/bottom; primary and secondary are the two step directions.
type quadrant struct {
	primary, secondary mesh.Cardinal
	right, bottom      bool
}

var quadrants = [4]quadrant{
	{primary: mesh.East, secondary: mesh.South},
	{primary: mesh.South, secondary: mesh.West, right: true},
	{primary: mesh.East, secondary: mesh.North, bottom: true},
	{primary: mesh.North, secondary: mesh.West, right: true, bottom: true},
}

// TileTree draws every tile visible from origin onto sink. w stands on the
// viewer's tile, whose top-left corner is drawn at anchor with side size.
// The walk is taken by value; the caller's copy never moves.
//
// A start tile that is Empty draws nothing.
func TileTree(w mesh.Walk, anchor, origin clip.Point, size float64, limits Limits, sink clip.Sink, opts Options) (Stats, error) {
	var stats Stats
	if !(size > 0) || math.IsInf(size, 0) {
		return stats, fmt.Errorf("%w: %v", ErrTileSize, size)
	}
	for _, n := range limits {
		if n < 0 {
			return stats, fmt.Errorf("%w: %v", ErrLimits, limits)
		}
	}
	if !w.CanContinue() {
		return stats, nil
	}

	br := clip.Point{X: anchor.X + size, Y: anchor.Y + size}
	top := clip.Line{A: anchor, B: clip.Point{X: anchor.X + 1, Y: anchor.Y}}
	bottom := clip.Line{A: br, B: clip.Point{X: br.X + 1, Y: br.Y}}
	left := clip.Line{A: anchor, B: clip.Point{X: anchor.X, Y: anchor.Y + 1}}
	right := clip.Line{A: br, B: clip.Point{X: br.X, Y: br.Y + 1}}
	bounds := [4][2]clip.Line{
		{left, top},
		{top, right},
		{left, bottom},
		{bottom, right},
	}

	var stroker clip.Stroker
	if opts.Outline {
		stroker, _ = sink.(clip.Stroker)
	}

	for i, q := range quadrants {
		s := &sweep{
			origin:  origin,
			size:    size,
			primary: q.primary,
			second:  q.secondary,
			xLim:    limits[q.primary.Index()],
			yLim:    limits[q.secondary.Index()],
			drawAll: i == 0,
			skipCol: i == 3,
			sink:    sink,
			stroker: stroker,
			width:   opts.OutlineWidth,
			stats:   &stats,
			crSign:  1,
			cbSign:  1,
		}
		if q.right {
			s.cr, s.crSign = 1, -1
		}
		if q.bottom {
			s.cb, s.cbSign = 1, -1
		}
		start := clip.Point{X: anchor.X + size*s.cr, Y: anchor.Y + size*s.cb}
		s.branch(w, start, bounds[i][0], bounds[i][1], s.xLim, s.yLim, 1)
	}

	logging.L().Debug("tile tree drawn",
		"start", w.String(),
		"limits", limits.String(),
		"tiles", stats.Tiles,
		"polygons", stats.Polygons,
		"branches", stats.Branches,
		"pruned", stats.Pruned,
		"depth", stats.MaxDepth)
	return stats, nil
}

type sweep struct {
	origin           clip.Point
	size             float64
	primary, second  mesh.Cardinal
	xLim, yLim       int
	cr, cb           float64
	crSign, cbSign   float64
	drawAll, skipCol bool
	sink             clip.Sink
	stroker          clip.Stroker
	width            float64
	stats            *Stats
}

// draws reports whether this sweep owns the tile at the given budgets. Rows
// and columns shared with an earlier sweep are left to that sweep.
func (s *sweep) draws(xRem, yRem int) bool {
	if s.drawAll {
		return true
	}
	return yRem != s.yLim && (!s.skipCol || xRem != s.xLim)
}

func (s *sweep) branch(w mesh.Walk, at clip.Point, edgeL, edgeR clip.Line, xRem, yRem, depth int) {
	s.stats.Branches++
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	// Sightline through the far corner of this tile.
	far := clip.Point{X: at.X + s.size*s.crSign, Y: at.Y + s.size*s.cbSign}
	fresh, err := clip.NewLine(s.origin, far)
	open := err == nil

	if s.draws(xRem, yRem) {
		s.draw(&w, clip.Point{X: at.X - s.size*s.cr, Y: at.Y - s.size*s.cb}, edgeL, edgeR)
	}

	next := w
	next.To(s.primary)
	if xRem > 0 && next.CanContinue() {
		switch {
		case !open:
			s.stats.Pruned++
		default:
			newLeft := fresh
			if clip.CompareSlope(fresh, edgeL)*s.crSign > 0 {
				newLeft = edgeL
			}
			if clip.CompareSlope(newLeft, edgeR)*s.crSign > 0 {
				step := clip.Point{X: at.X + s.size*(1-s.cr)*s.crSign, Y: at.Y + s.size*s.cr*s.cbSign}
				s.branch(next, step, newLeft, edgeR, xRem-1, yRem, depth+1)
			} else {
				s.stats.Pruned++
			}
		}
	}

	next = w
	next.To(s.second)
	if yRem > 0 && next.CanContinue() {
		newRight := edgeR
		if open && clip.CompareSlope(fresh, edgeR)*s.crSign > 0 {
			newRight = fresh
		}
		if clip.CompareSlope(edgeL, newRight)*s.crSign > 0 {
			step := clip.Point{X: at.X + s.size*s.cr*s.crSign, Y: at.Y + s.size*(1-s.cr)*s.cbSign}
			s.branch(next, step, edgeL, newRight, xRem, yRem-1, depth+1)
		} else {
			s.stats.Pruned++
		}
	}
}

func (s *sweep) draw(w *mesh.Walk, topLeft clip.Point, edgeL, edgeR clip.Line) {
	t := w.Tile()
	if t == nil {
		return
	}
	tf := MakeTransform(topLeft, s.size, w.CurrOri())
	for _, plg := range t.Payload {
		if clip.ClipAndFill(plg, tf, edgeL, edgeR, s.sink) == nil {
			continue
		}
		s.stats.Polygons++
		if s.stroker != nil {
			s.stroker.Stroke(s.width)
		}
	}
	s.stats.Tiles++
}
