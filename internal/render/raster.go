package render

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// RasterSink draws into an offscreen gg context. Unknown fill styles render
// magenta; drawing errors are kept and reported by Err.
type RasterSink struct {
	dc      *gg.Context
	stroke  color.Color
	pending bool
	err     error
}

// NewRasterSink creates a width×height canvas cleared to background.
func NewRasterSink(width, height int, background string) *RasterSink {
	dc := gg.NewContext(width, height)
	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.ClearWithColor(gg.FromColor(MustFill(background)))
	return &RasterSink{dc: dc, stroke: color.Black}
}

// SetOutline sets the colour used by Stroke.
func (r *RasterSink) SetOutline(c color.Color) { r.stroke = c }

func (r *RasterSink) SetFill(style string) {
	r.dc.SetColor(MustFill(style))
}

func (r *RasterSink) MoveTo(x, y float64) {
	if r.pending {
		r.dc.ClearPath()
	}
	r.dc.MoveTo(x, y)
	r.pending = true
}

func (r *RasterSink) LineTo(x, y float64) {
	r.dc.LineTo(x, y)
}

func (r *RasterSink) FillEvenOdd() {
	r.dc.ClosePath()
	r.keep(r.dc.FillPreserve())
}

// Stroke outlines the path filled last.
func (r *RasterSink) Stroke(width float64) {
	if !r.pending {
		return
	}
	// The fill colour is replaced; every polygon sets its own before drawing.
	r.dc.SetColor(r.stroke)
	r.dc.SetLineWidth(width)
	r.keep(r.dc.StrokePreserve())
}

func (r *RasterSink) keep(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Err is the first drawing error, if any.
func (r *RasterSink) Err() error { return r.err }

// Image returns the rendered pixels.
func (r *RasterSink) Image() image.Image { return r.dc.Image() }

// EncodePNG writes the canvas as PNG.
func (r *RasterSink) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// SavePNG writes the canvas to a PNG file.
func (r *RasterSink) SavePNG(path string) error { return r.dc.SavePNG(path) }

// Close releases the context.
func (r *RasterSink) Close() error { return r.dc.Close() }
