package canvas

import (
	"errors"
	"fmt"
)

// Sentinel errors for canvas operations.
var (
	// ErrEmptyCanvas indicates a non-positive width or height.
	ErrEmptyCanvas = errors.New("canvas: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate outside the canvas.
	ErrOutOfBounds = errors.New("canvas: coordinate out of bounds")
	// ErrNegativeCost indicates a seam cost below zero.
	ErrNegativeCost = errors.New("canvas: negative seam cost")
)

// Unfilled is the patch index of a texel no patch has covered yet.
const Unfilled = -1

// Axis selects one of the two seam slots a texel owns.
type Axis uint8

const (
	// AxisX is the boundary between (x, y) and (x+1, y).
	AxisX Axis = iota
	// AxisY is the boundary between (x, y) and (x, y+1).
	AxisY
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// Texel is the permanent state of one canvas pixel.
// SeamX/SeamY are zero whenever KeepX/KeepY are false.
type Texel struct {
	Patch int // index into the patch history, or Unfilled

	SeamX int64 // kept seam cost toward (x+1, y)
	SeamY int64 // kept seam cost toward (x, y+1)
	KeepX bool
	KeepY bool
}

// Filled reports whether a patch supplies this texel's color.
func (t *Texel) Filled() bool { return t.Patch != Unfilled }

// Canvas is a Width×Height grid of texels stored in row-major order.
type Canvas struct {
	width, height int
	texels        []Texel
}
