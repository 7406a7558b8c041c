package board

import (
	"fmt"

	"github.com/Garsondee/Mesh-Sight/internal/logging"
	"github.com/Garsondee/Mesh-Sight/internal/mesh"
)

// Cursor is the viewer's position: a cell in unbounded level coordinates and
// a walk telling which region that cell belongs to and how it is oriented.
// Moving inside a region only changes the coordinates; moving across a
// region border also steps the walk, and fails at a wall.
type Cursor struct {
	X, Y int

	b    *Board
	walk mesh.Walk
}

// NewCursor places a cursor at the board's start.
func NewCursor(b *Board) *Cursor {
	c := &Cursor{b: b}
	c.Reset()
	return c
}

// Reset moves the cursor back to the start cell, region and orientation.
func (c *Cursor) Reset() {
	c.X, c.Y = c.b.StartX, c.b.StartY
	c.walk = c.b.StartWalk()
}

// Walk returns a copy of the cursor's walk.
func (c *Cursor) Walk() mesh.Walk {
	return c.walk
}

// Region is the ID of the region the cursor stands in, or -1 off the mesh.
func (c *Cursor) Region() int {
	t := c.walk.Tile()
	if t == nil {
		return -1
	}
	return t.ID
}

// Step moves one cell in dir. It reports false, without moving, when the
// move would cross a region border that has no edge.
func (c *Cursor) Step(dir mesh.Cardinal) bool {
	coord := &c.X
	if dir.Vertical {
		coord = &c.Y
	}
	border, delta := c.b.Order-1, 1
	if dir.Negative {
		border, delta = 0, -1
	}
	if mod(*coord, c.b.Order) == border {
		if !c.walk.Attempt(dir) {
			return false
		}
		logging.L().Debug("crossed region border", "dir", dir.String(), "walk", c.walk.String())
	}
	*coord += delta
	return true
}

// Travel moves dx cells east and dy cells south, alternating between the two
// axes. It stops early when a round makes no progress on either axis and
// reports whether the whole distance was covered.
func (c *Cursor) Travel(dx, dy int) bool {
	for dx != 0 || dy != 0 {
		walls := 2
		switch {
		case dx > 0 && c.Step(mesh.East):
			dx--
			walls--
		case dx < 0 && c.Step(mesh.West):
			dx++
			walls--
		}
		switch {
		case dy > 0 && c.Step(mesh.South):
			dy--
			walls--
		case dy < 0 && c.Step(mesh.North):
			dy++
			walls--
		}
		if walls == 2 {
			return false
		}
	}
	return true
}

// CellIndex is the index of the cursor's cell in its region's own frame,
// row-major from the region's top-left corner.
func (c *Cursor) CellIndex() int {
	order := c.b.Order
	row, col := mod(c.Y, order), mod(c.X, order)
	ori := c.walk.CurrOri()
	if ori.NegativeH {
		col = order - 1 - col
	}
	if ori.NegativeV {
		row = order - 1 - row
	}
	if ori.VerticalX {
		return row + col*order
	}
	return row*order + col
}

// Matrix renders the cursor as the affine map from region to level
// coordinates, one row per line.
func (c *Cursor) Matrix() [3]string {
	ori := c.walk.CurrOri()
	a, b := "  1", "  1"
	if ori.NegativeH {
		a = " -1"
	}
	if ori.NegativeV {
		b = " -1"
	}
	if ori.VerticalX {
		return [3]string{
			fmt.Sprintf("[[  0 %s %3d]", a, c.X),
			fmt.Sprintf(" [%s   0 %3d]", b, c.Y),
			" [  0   0   1]]",
		}
	}
	return [3]string{
		fmt.Sprintf("[[%s   0 %3d]", a, c.X),
		fmt.Sprintf(" [  0 %s %3d]", b, c.Y),
		" [  0   0   1]]",
	}
}

func (c *Cursor) String() string {
	return fmt.Sprintf("%s (%d, %d)", c.walk.String(), c.X, c.Y)
}

// mod is the remainder of n/m taken in [0, m).
func mod(n, m int) int {
	return (n%m + m) % m
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(n, m int) int {
	q := n / m
	if n%m != 0 && (n < 0) != (m < 0) {
		q--
	}
	return q
}
