package canvas

import (
	"reflect"
	"sort"
	"testing"
)

// fill marks texels with value 1 in grid as filled by patch 0.
func fill(t *testing.T, grid [][]int) *Canvas {
	t.Helper()
	c, err := New(len(grid[0]), len(grid))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for y, row := range grid {
		for x, v := range row {
			if v == 1 {
				c.At(x, y).Patch = 0
			}
		}
	}
	return c
}

// TestHoles_Simple finds two holes in a 4×3 canvas (1 = filled, 0 = hole):
//
//	1 0 0 1
//	0 0 1 1
//	1 1 0 0
//
// Expected: holes of sizes 4 and 2.
func TestHoles_Simple(t *testing.T) {
	c := fill(t, [][]int{
		{1, 0, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
	})

	holes := c.Holes()
	if len(holes) != 2 {
		t.Fatalf("got %d holes; want 2", len(holes))
	}
	sizes := []int{len(holes[0]), len(holes[1])}
	sort.Ints(sizes)
	if want := []int{2, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("hole sizes = %v; want %v", sizes, want)
	}
	if holes[0][0] != 1 {
		t.Errorf("first hole starts at %d; want 1", holes[0][0])
	}
	if got := c.LargestHole(); len(got) != 4 {
		t.Errorf("LargestHole size = %d; want 4", len(got))
	}
}

// TestHoles_DiagonalSplit: diagonal gaps are separate under 4-connectivity.
//
//	0 1
//	1 0
func TestHoles_DiagonalSplit(t *testing.T) {
	c := fill(t, [][]int{
		{0, 1},
		{1, 0},
	})
	if got := len(c.Holes()); got != 2 {
		t.Errorf("got %d holes; want 2", got)
	}
}

// TestHoles_Complete: a filled canvas has no holes.
func TestHoles_Complete(t *testing.T) {
	c := fill(t, [][]int{{1, 1}, {1, 1}})
	if holes := c.Holes(); len(holes) != 0 {
		t.Errorf("got %d holes; want 0", len(holes))
	}
	if c.LargestHole() != nil {
		t.Errorf("LargestHole on complete canvas should be nil")
	}
	if !c.Complete() {
		t.Errorf("Complete() = false; want true")
	}
}
