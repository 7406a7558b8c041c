// Package clip draws polygons cut down to the wedge between two sightlines.
// It knows nothing about tiles or walks: callers hand it a polygon template,
// a transform into screen space and the two bounding lines.
package clip

import (
	"errors"
	"math"

	"github.com/jbeda/geom"
)

// ErrDegenerateLine is returned when both points of a line coincide.
var ErrDegenerateLine = errors.New("clip: line defined by a single point")

// Point is a position on the drawing surface.
type Point = geom.Coord

// Line is the infinite line through A and B. A and B must differ.
type Line struct {
	A, B Point
}

// NewLine returns the line through a and b, refusing a == b.
func NewLine(a, b Point) (Line, error) {
	if a.X == b.X && a.Y == b.Y {
		return Line{}, ErrDegenerateLine
	}
	return Line{A: a, B: b}, nil
}

// Degenerate reports whether l is built from two equal points.
func (l Line) Degenerate() bool {
	return l.A.X == l.B.X && l.A.Y == l.B.Y
}

// SideOf compares p with l at p's height: positive when p lies further along
// +x than the line, negative when it lies before it, zero on the line.
//
// A horizontal line has no x at any other height, so every point counts as on
// it. That keeps the horizontal quadrant boundaries from ever cutting a tile.
func SideOf(p Point, l Line) float64 {
	dy := l.B.Y - l.A.Y
	if dy == 0 {
		return 0
	}
	v := dy*(p.X-l.A.X) - (p.Y-l.A.Y)*(l.B.X-l.A.X)
	if dy < 0 {
		return -v
	}
	return v
}

// Intersect returns where the line through p and q crosses l. The bool is
// false when the two lines are parallel (including p == q), in which case p
// is returned unchanged.
func Intersect(p, q Point, l Line) (Point, bool) {
	a, b := l.A, l.B
	den := (p.X-q.X)*(a.Y-b.Y) - (p.Y-q.Y)*(a.X-b.X)
	if den == 0 {
		return p, false
	}
	n1 := p.X*q.Y - p.Y*q.X
	n2 := a.X*b.Y - a.Y*b.X
	return Point{
		X: (n1*(a.X-b.X) - (p.X-q.X)*n2) / den,
		Y: (n1*(a.Y-b.Y) - (p.Y-q.Y)*n2) / den,
	}, true
}

// CompareSlope is positive when l1 is steeper than l2 (by absolute slope),
// zero when equally steep and negative otherwise. No division is involved, so
// vertical lines compare as steepest.
func CompareSlope(l1, l2 Line) float64 {
	d1x, d1y := l1.B.X-l1.A.X, l1.B.Y-l1.A.Y
	d2x, d2y := l2.B.X-l2.A.X, l2.B.Y-l2.A.Y
	return math.Abs(d2x*d1y) - math.Abs(d1x*d2y)
}
