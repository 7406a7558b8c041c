package clip

import "github.com/jbeda/geom"

// Fill is one filled path captured by a Recorder.
type Fill struct {
	Style   string
	Path    []Point
	Stroked bool
}

// Recorder is a Sink that keeps every fill in memory. It is used by tests
// and by the headless renderer to measure what a frame covered.
type Recorder struct {
	Fills []Fill

	style   string
	path    []Point
	bounds  geom.Rect
	touched bool
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetFill(style string) { r.style = style }

func (r *Recorder) MoveTo(x, y float64) {
	r.path = []Point{{X: x, Y: y}}
}

func (r *Recorder) LineTo(x, y float64) {
	r.path = append(r.path, Point{X: x, Y: y})
}

func (r *Recorder) FillEvenOdd() {
	path := make([]Point, len(r.path))
	copy(path, r.path)
	r.Fills = append(r.Fills, Fill{Style: r.style, Path: path})
	for _, p := range path {
		if !r.touched {
			r.bounds = geom.Rect{Min: p, Max: p}
			r.touched = true
			continue
		}
		r.bounds.ExpandToContainCoord(p)
	}
}

// Stroke marks the most recent fill as outlined.
func (r *Recorder) Stroke(float64) {
	if n := len(r.Fills); n > 0 {
		r.Fills[n-1].Stroked = true
	}
}

// Bounds is the box around every filled point. ok is false before the first
// fill.
func (r *Recorder) Bounds() (b geom.Rect, ok bool) {
	return r.bounds, r.touched
}

// Count returns how many fills used the given style.
func (r *Recorder) Count(style string) int {
	n := 0
	for _, f := range r.Fills {
		if f.Style == style {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	*r = Recorder{}
}
