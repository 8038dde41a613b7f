// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"
	"image"

	"github.com/katalvlaran/gcts/builder"
	"github.com/katalvlaran/gcts/canvas"
	"github.com/katalvlaran/gcts/patch"
)

// ExampleBuild places a second patch that half overlaps the first one on a
// 4×1 canvas and commits the cheapest seam.
func ExampleBuild() {
	c, _ := canvas.New(4, 1)
	var h patch.History

	first, _ := patch.NewPixels(3, 1)
	for x, r := range []uint8{0, 10, 20} {
		first.Set(x, 0, patch.RGB{r, 0, 0})
	}
	h.Add(first, image.Pt(0, 0))
	for x := 0; x < 3; x++ {
		c.At(x, 0).Patch = 0
	}

	second, _ := patch.NewPixels(3, 1)
	for x, r := range []uint8{13, 25, 40} {
		second.Set(x, 0, patch.RGB{r, 0, 0})
	}
	cur := h.Add(second, image.Pt(1, 0))

	p, err := builder.Build(c, &h, cur, image.Pt(0, 0))
	if err != nil {
		fmt.Println(err)
		return
	}
	cut, _ := p.Solve()
	st, _ := p.Commit(cut)

	fmt.Println("regions:", p.Counts())
	fmt.Println("max flow:", st.MaxFlow)
	for x := 0; x < c.Width(); x++ {
		fmt.Print(c.At(x, 0).Patch, " ")
	}
	fmt.Println()
	// Output:
	// regions: {0 1 1 2}
	// max flow: 8
	// 0 0 1 1
}
