// Package mesh models a board as a graph of square tiles whose edges carry a
// rotation/reflection, and a Walk cursor that travels the graph while tracking
// the orientation it has accumulated.
package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrDirIndex is returned for a direction index outside [0, 3].
	ErrDirIndex = errors.New("mesh: direction index out of range")
	// ErrOriIndex is returned for an orientation index outside [0, 7].
	ErrOriIndex = errors.New("mesh: orientation index out of range")
)

// Cardinal is one of the four screen directions. Negative directions are
// left and up.
type Cardinal struct {
	Negative bool
	Vertical bool
}

// The four cardinals, in index order.
var (
	East  = Cardinal{}
	West  = Cardinal{Negative: true}
	South = Cardinal{Vertical: true}
	North = Cardinal{Negative: true, Vertical: true}
)

// Index packs the cardinal as Negative + 2*Vertical. It selects a neighbor
// slot on a tile.
func (c Cardinal) Index() int {
	return b2i(c.Negative) + 2*b2i(c.Vertical)
}

// Opposite points the other way along the same axis.
func (c Cardinal) Opposite() Cardinal {
	return Cardinal{Negative: !c.Negative, Vertical: c.Vertical}
}

// TransferTo takes c as etched on a tile lying in orientation s and returns
// the direction it points once the tile is back in default orientation.
func (c Cardinal) TransferTo(s Symmetry) Cardinal {
	flip := s.NegativeH
	if c.Vertical {
		flip = s.NegativeV
	}
	return Cardinal{
		Negative: c.Negative != flip,
		Vertical: c.Vertical != s.VerticalX,
	}
}

func (c Cardinal) String() string {
	switch {
	case c.Vertical && c.Negative:
		return "/\\"
	case c.Vertical:
		return "\\/"
	case c.Negative:
		return "<-"
	default:
		return "->"
	}
}

// Symmetry is one of the eight ways a square can be rotated and reflected:
// each axis may be negated and the axes may be swapped. The zero value is the
// identity.
type Symmetry struct {
	NegativeH bool // horizontal axis flipped
	NegativeV bool // vertical axis flipped
	VerticalX bool // x-axis runs vertically
}

// Index packs the symmetry as NegativeH + 2*NegativeV + 4*VerticalX.
func (s Symmetry) Index() int {
	return b2i(s.NegativeH) + 2*b2i(s.NegativeV) + 4*b2i(s.VerticalX)
}

func (s Symmetry) String() string {
	return fmt.Sprintf("%d", s.Index())
}

// GetDir returns the cardinal with the given index. Indices outside [0, 3]
// are a programming error and panic; use DirFromIndex for untrusted input.
func GetDir(i int) Cardinal {
	d, err := DirFromIndex(i)
	if err != nil {
		panic(err)
	}
	return d
}

// DirFromIndex is GetDir for data read from files.
func DirFromIndex(i int) (Cardinal, error) {
	if i < 0 || i > 3 {
		return Cardinal{}, fmt.Errorf("%w: %d", ErrDirIndex, i)
	}
	return Cardinal{Negative: i&1 != 0, Vertical: i&2 != 0}, nil
}

// GetOri returns the symmetry with the given index. Indices outside [0, 7]
// panic; use OriFromIndex for untrusted input.
func GetOri(i int) Symmetry {
	s, err := OriFromIndex(i)
	if err != nil {
		panic(err)
	}
	return s
}

// OriFromIndex is GetOri for data read from files.
func OriFromIndex(i int) (Symmetry, error) {
	if i < 0 || i > 7 {
		return Symmetry{}, fmt.Errorf("%w: %d", ErrOriIndex, i)
	}
	return Symmetry{NegativeH: i&1 != 0, NegativeV: i&2 != 0, VerticalX: i&4 != 0}, nil
}

// TakeStep returns the orientation of the tile reached by crossing an edge
// whose relation is rel, starting from a tile held in orientation ori.
//
// When ori swaps the axes, a relation that flips exactly one axis flips the
// other one from the walker's point of view, which is why that case keeps the
// bits that agree instead of the ones that differ.
func TakeStep(ori, rel Symmetry) Symmetry {
	if ori.VerticalX && rel.NegativeH != rel.NegativeV {
		return Symmetry{
			NegativeH: ori.NegativeH == rel.NegativeH,
			NegativeV: ori.NegativeV == rel.NegativeV,
			VerticalX: ori.VerticalX != rel.VerticalX,
		}
	}
	return Symmetry{
		NegativeH: ori.NegativeH != rel.NegativeH,
		NegativeV: ori.NegativeV != rel.NegativeV,
		VerticalX: ori.VerticalX != rel.VerticalX,
	}
}

// backRelation is the relation stored on the far side of an auto-linked edge.
// A transposing relation that flips exactly one axis has its flips swapped;
// every other relation is its own reverse.
func backRelation(ori Symmetry) Symmetry {
	if ori.VerticalX && ori.NegativeH != ori.NegativeV {
		return Symmetry{NegativeH: ori.NegativeV, NegativeV: ori.NegativeH, VerticalX: ori.VerticalX}
	}
	return ori
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
