package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Mesh-Sight/internal/render"
)

// vectorSink fills clipped tile polygons onto an ebiten image.
type vectorSink struct {
	dst    *ebiten.Image
	path   vector.Path
	fill   ebiten.ColorScale
	stroke ebiten.ColorScale
}

func newVectorSink(dst *ebiten.Image) *vectorSink {
	s := &vectorSink{dst: dst}
	s.stroke.ScaleWithColor(render.MustFill("black"))
	return s
}

func (s *vectorSink) SetFill(style string) {
	s.fill = ebiten.ColorScale{}
	s.fill.ScaleWithColor(render.MustFill(style))
}

func (s *vectorSink) MoveTo(x, y float64) {
	s.path = vector.Path{}
	s.path.MoveTo(float32(x), float32(y))
}

func (s *vectorSink) LineTo(x, y float64) {
	s.path.LineTo(float32(x), float32(y))
}

func (s *vectorSink) FillEvenOdd() {
	s.path.Close()
	vector.FillPath(s.dst, &s.path,
		&vector.FillOptions{FillRule: vector.FillRuleEvenOdd},
		&vector.DrawPathOptions{AntiAlias: true, ColorScale: s.fill})
}

func (s *vectorSink) Stroke(width float64) {
	vector.StrokePath(s.dst, &s.path,
		&vector.StrokeOptions{Width: float32(width)},
		&vector.DrawPathOptions{AntiAlias: true, ColorScale: s.stroke})
}
