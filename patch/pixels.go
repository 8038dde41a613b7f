package patch

import (
	"fmt"
	"image"
	"image/color"
)

// Pixels is a slice-backed View stored in row-major order.
type Pixels struct {
	w, h int
	pix  []RGB
}

// NewPixels returns a w×h black image. Returns ErrEmptyView when either
// dimension is not positive.
func NewPixels(w, h int) (*Pixels, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("patch: NewPixels(%d, %d): %w", w, h, ErrEmptyView)
	}
	return &Pixels{w: w, h: h, pix: make([]RGB, w*h)}, nil
}

// Width returns the number of columns.
func (p *Pixels) Width() int { return p.w }

// Height returns the number of rows.
func (p *Pixels) Height() int { return p.h }

// At returns the color at (x,y). Coordinates must lie inside the view.
func (p *Pixels) At(x, y int) RGB { return p.pix[y*p.w+x] }

// Set stores c at (x,y). Coordinates must lie inside the view.
func (p *Pixels) Set(x, y int, c RGB) { p.pix[y*p.w+x] = c }

// FromImage copies img into a Pixels, dropping alpha.
// Complexity: O(W×H).
func FromImage(img image.Image) (*Pixels, error) {
	b := img.Bounds()
	p, err := NewPixels(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < p.h; y++ {
		for x := 0; x < p.w; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			p.Set(x, y, RGB{c.R, c.G, c.B})
		}
	}
	return p, nil
}

// ToImage copies v into an opaque *image.RGBA.
func ToImage(v View) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, v.Width(), v.Height()))
	for y := 0; y < v.Height(); y++ {
		for x := 0; x < v.Width(); x++ {
			c := v.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff})
		}
	}
	return img
}

// sub is a View restricted to a rectangle of its parent.
type sub struct {
	parent View
	rect   image.Rectangle
}

func (s sub) Width() int      { return s.rect.Dx() }
func (s sub) Height() int     { return s.rect.Dy() }
func (s sub) At(x, y int) RGB { return s.parent.At(s.rect.Min.X+x, s.rect.Min.Y+y) }

// Sub returns the part of v inside r as a View with its own (0,0) at r.Min.
// Returns ErrEmptyView for an empty r and ErrOutOfBounds when r leaves v.
func Sub(v View, r image.Rectangle) (View, error) {
	if r.Empty() {
		return nil, fmt.Errorf("patch: Sub(%v): %w", r, ErrEmptyView)
	}
	if !r.In(image.Rect(0, 0, v.Width(), v.Height())) {
		return nil, fmt.Errorf("patch: Sub(%v) of %dx%d view: %w", r, v.Width(), v.Height(), ErrOutOfBounds)
	}
	return sub{parent: v, rect: r}, nil
}
