package render

import (
	"github.com/Garsondee/Mesh-Sight/internal/clip"
	"github.com/Garsondee/Mesh-Sight/internal/mesh"
)

// MakeTransform maps unit-square coordinates of a tile held in orientation
// ori onto the screen square of the given side whose top-left corner is
// topLeft. negativeH mirrors the output x axis, negativeV the output y axis,
// and verticalX swaps which input axis feeds which output axis.
func MakeTransform(topLeft clip.Point, side float64, ori mesh.Symmetry) clip.Transform {
	flipX := unflipped
	if ori.NegativeH {
		flipX = flipped
	}
	flipY := unflipped
	if ori.NegativeV {
		flipY = flipped
	}
	if ori.VerticalX {
		return func(x, y float64) clip.Point {
			return clip.Point{X: side*flipX(y) + topLeft.X, Y: side*flipY(x) + topLeft.Y}
		}
	}
	return func(x, y float64) clip.Point {
		return clip.Point{X: side*flipX(x) + topLeft.X, Y: side*flipY(y) + topLeft.Y}
	}
}

func unflipped(n float64) float64 { return n }
func flipped(n float64) float64   { return 1 - n }
