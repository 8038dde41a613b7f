package patch

import (
	"fmt"
	"image"
)

// Add appends a patch placed with its top-left pixel at offset and returns
// its index. Indices are dense and start at 0.
func (h *History) Add(v View, offset image.Point) int {
	h.records = append(h.records, Record{View: v, Offset: offset})
	return len(h.records) - 1
}

// Len returns the number of recorded patches.
func (h *History) Len() int { return len(h.records) }

// Has reports whether i indexes a recorded patch.
func (h *History) Has(i int) bool { return i >= 0 && i < len(h.records) }

// Current returns the index of the latest patch, or -1 when empty.
func (h *History) Current() int { return len(h.records) - 1 }

// CurrentPatch returns the latest patch. The history must not be empty.
func (h *History) CurrentPatch() View { return h.records[len(h.records)-1].View }

// CurrentOffset returns the canvas offset of the latest patch. The history
// must not be empty.
func (h *History) CurrentOffset() image.Point { return h.records[len(h.records)-1].Offset }

// Record returns entry i or ErrOutOfBounds.
func (h *History) Record(i int) (Record, error) {
	if !h.Has(i) {
		return Record{}, fmt.Errorf("patch: Record(%d) of %d: %w", i, len(h.records), ErrOutOfBounds)
	}
	return h.records[i], nil
}

// Covers reports whether patch i supplies a color for canvas pixel (x,y).
func (h *History) Covers(i, x, y int) bool {
	if !h.Has(i) {
		return false
	}
	return image.Pt(x, y).In(h.records[i].Bounds())
}

// RGB returns the color patch i places at canvas pixel (x,y). The patch must
// cover the pixel; see Covers.
func (h *History) RGB(i, x, y int) RGB {
	r := &h.records[i]
	return r.View.At(x-r.Offset.X, y-r.Offset.Y)
}
