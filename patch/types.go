package patch

import (
	"errors"
	"image"
)

// Sentinel errors for patch operations.
var (
	// ErrEmptyView indicates a view with no pixels.
	ErrEmptyView = errors.New("patch: view must have at least one pixel")
	// ErrOutOfBounds indicates a rectangle or index outside a view or history.
	ErrOutOfBounds = errors.New("patch: out of bounds")
)

// RGB is an 8-bit red, green, blue triple.
type RGB [3]uint8

// Diff returns |a.R-b.R| + |a.G-b.G| + |a.B-b.B|.
func Diff(a, b RGB) int64 {
	var d int64
	for i := range a {
		if a[i] > b[i] {
			d += int64(a[i] - b[i])
		} else {
			d += int64(b[i] - a[i])
		}
	}
	return d
}

// View is a read-only rectangle of pixels with patch-local coordinates.
type View interface {
	Width() int
	Height() int
	At(x, y int) RGB
}

// Size returns the dimensions of v as a point.
func Size(v View) image.Point { return image.Pt(v.Width(), v.Height()) }

// Record is one entry of the history: a patch and where its top-left pixel
// sits on the canvas.
type Record struct {
	View   View
	Offset image.Point
}

// Bounds returns the canvas rectangle the record covers.
func (r Record) Bounds() image.Rectangle {
	return image.Rectangle{Min: r.Offset, Max: r.Offset.Add(Size(r.View))}
}

// History is the ordered ledger of placed patches.
type History struct {
	records []Record
}
