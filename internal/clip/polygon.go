package clip

// Polygon is a drawable template: a fill style and vertices in the unit
// square. Templates are shared between tiles and never modified.
type Polygon struct {
	Fill  string
	Verts []Point
}

// UnitSquare is a closed polygon covering the whole unit square.
func UnitSquare(fill string) *Polygon {
	return &Polygon{
		Fill: fill,
		Verts: []Point{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
			{X: 0, Y: 1},
			{X: 0, Y: 0},
		},
	}
}

// Transform maps unit-square coordinates to the drawing surface.
type Transform func(x, y float64) Point

// Sink receives drawing commands. MoveTo starts a new path; FillEvenOdd fills
// the current path with the even-odd rule and leaves it current.
type Sink interface {
	SetFill(style string)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	FillEvenOdd()
}

// Stroker is implemented by sinks that can outline the current path.
type Stroker interface {
	Stroke(width float64)
}

// Clip cuts the closed polygon pts down to the wedge right of edgeL and left
// of edgeR, one half-plane at a time. Vertices on a boundary count as inside.
// A repeated closing vertex is optional on input; the result is closed by
// repeating its first vertex. Nil is returned when less than a triangle is
// left.
func Clip(pts []Point, edgeL, edgeR Line) []Point {
	ring := pts
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
	}
	if len(ring) < 3 {
		return nil
	}
	ring = clipHalf(ring, edgeL, 1)
	if len(ring) < 3 {
		return nil
	}
	ring = clipHalf(ring, edgeR, -1)
	if len(ring) < 3 {
		return nil
	}
	return append(ring, ring[0])
}

// clipHalf keeps the part of ring where sign*SideOf(p, l) >= 0. A crossing is
// added only where an edge passes strictly from one side to the other.
func clipHalf(ring []Point, l Line, sign float64) []Point {
	out := make([]Point, 0, len(ring)+2)
	prev := ring[len(ring)-1]
	dp := sign * SideOf(prev, l)
	for _, cur := range ring {
		dc := sign * SideOf(cur, l)
		if (dp < 0 && dc > 0) || (dp > 0 && dc < 0) {
			x, _ := Intersect(prev, cur, l)
			out = append(out, x)
		}
		if dc >= 0 {
			out = append(out, cur)
		}
		prev, dp = cur, dc
	}
	return out
}

// ClipAndFill transforms plg into place, clips it to the wedge and fills the
// result on sink. It returns the traced path, or nil when nothing with area
// is left to draw.
func ClipAndFill(plg *Polygon, tf Transform, edgeL, edgeR Line, sink Sink) []Point {
	if plg == nil || len(plg.Verts) < 2 {
		return nil
	}
	placed := make([]Point, len(plg.Verts))
	for i, v := range plg.Verts {
		placed[i] = tf(v.X, v.Y)
	}
	path := Clip(placed, edgeL, edgeR)
	if len(path) < 3 {
		return nil
	}
	sink.SetFill(plg.Fill)
	sink.MoveTo(path[0].X, path[0].Y)
	for _, p := range path[1:] {
		sink.LineTo(p.X, p.Y)
	}
	sink.FillEvenOdd()
	return path
}
