package synth

import (
	"image"
	"math/rand"

	"github.com/katalvlaran/gcts/canvas"
)

// Placement is where one patch comes from and where it goes.
type Placement struct {
	Crop image.Rectangle // rectangle of the source texture
	At   image.Point     // canvas position of the crop's top-left pixel
}

// Placer chooses the next placement for a patch of the given size cut from
// a source of size src. It must return an At whose patch rectangle
// intersects the canvas and a Crop inside the source.
type Placer interface {
	Place(c *canvas.Canvas, src, size image.Point) Placement
}

// RandomPlacer draws the crop origin uniformly from the source and the
// canvas offset uniformly from positions whose patch straddles at most half
// a patch outside the canvas.
type RandomPlacer struct {
	rng *rand.Rand
}

// NewRandomPlacer returns a RandomPlacer drawing from rng.
func NewRandomPlacer(rng *rand.Rand) *RandomPlacer { return &RandomPlacer{rng: rng} }

// Place implements Placer.
func (p *RandomPlacer) Place(c *canvas.Canvas, src, size image.Point) Placement {
	at := image.Pt(p.rng.Intn(c.Width())-size.X/2, p.rng.Intn(c.Height())-size.Y/2)
	return Placement{Crop: randomCrop(p.rng, src, size), At: at}
}

// HolePlacer puts the first texel of the largest unfilled region at the
// patch's core corner, so each placement fills new ground while
// overlapping its top and left neighbors. A complete canvas falls back to
// random placement.
type HolePlacer struct {
	rng      *rand.Rand
	margin   image.Point
	fallback *RandomPlacer
}

// NewHolePlacer returns a HolePlacer that keeps margin pixels of overlap in
// front of each hole.
func NewHolePlacer(rng *rand.Rand, margin image.Point) *HolePlacer {
	return &HolePlacer{rng: rng, margin: margin, fallback: NewRandomPlacer(rng)}
}

// Place implements Placer.
func (p *HolePlacer) Place(c *canvas.Canvas, src, size image.Point) Placement {
	hole := c.LargestHole()
	if len(hole) == 0 {
		return p.fallback.Place(c, src, size)
	}
	x, y := c.Coordinate(hole[0])
	m := image.Pt(min(p.margin.X, size.X-1), min(p.margin.Y, size.Y-1))
	return Placement{Crop: randomCrop(p.rng, src, size), At: image.Pt(x-m.X, y-m.Y)}
}

// randomCrop picks a size rectangle uniformly inside a src-sized texture.
func randomCrop(rng *rand.Rand, src, size image.Point) image.Rectangle {
	origin := image.Pt(rng.Intn(src.X-size.X+1), rng.Intn(src.Y-size.Y+1))
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}
