package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/misopt/bfs"
	"github.com/katalvlaran/misopt/core"
)

// ExampleComponents splits a subset into independent pieces.
func ExampleComponents() {
	g, _ := core.New(7, [][2]int{{0, 1}, {1, 2}, {3, 4}, {5, 6}})
	comps, _ := bfs.Components(g, []int{0, 1, 3, 4, 6})
	fmt.Println(comps)

	// Output:
	// [[0 1] [3 4] [6]]
}
