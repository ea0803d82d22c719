package intersection_test

import (
	"fmt"

	"github.com/katalvlaran/citypatrol/grid"
	"github.com/katalvlaran/citypatrol/intersection"
)

// ExampleBuild classifies a small lattice and prints each intersection with
// the neighbours it can see.
func ExampleBuild() {
	g := grid.MustParseRows(
		"111",
		"1#1",
		"111",
	)
	net := intersection.Build(g)
	for i, p := range net.Points {
		v := net.Views[i]
		fmt.Printf("%d %v %v h=%v v=%v\n", i, p, net.Kinds[i], v.Horizontal, v.Vertical)
	}

	// Output:
	// 0 (0,0) Corner h=[{1 2}] v=[{2 2}]
	// 1 (2,0) Corner h=[{0 2}] v=[{3 2}]
	// 2 (0,2) Corner h=[{3 2}] v=[{0 2}]
	// 3 (2,2) Corner h=[{2 2}] v=[{1 2}]
}
