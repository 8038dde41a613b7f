package canvas

// neighborOffsets lists the 4-connected steps N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Holes finds all 4-connected regions of unfilled texels.
// Components are returned in row-major order of their first texel; each
// component lists row-major texel indices in BFS order starting from that
// texel. Use Coordinate to convert an index back to (x,y).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (c *Canvas) Holes() [][]int {
	seen := make([]bool, len(c.texels))
	var comps [][]int

	for i0 := range c.texels {
		if c.texels[i0].Filled() || seen[i0] {
			continue
		}
		// BFS to collect the component
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := c.Coordinate(queue[qi])
			for _, d := range neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !c.InBounds(vx, vy) {
					continue
				}
				vi := c.Index(vx, vy)
				if !seen[vi] && !c.texels[vi].Filled() {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// LargestHole returns the biggest unfilled component, preferring the first
// one found on ties, or nil when the canvas is complete.
func (c *Canvas) LargestHole() []int {
	var best []int
	for _, comp := range c.Holes() {
		if len(comp) > len(best) {
			best = comp
		}
	}
	return best
}
