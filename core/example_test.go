package core_test

import (
	"fmt"

	"github.com/katalvlaran/misopt/core"
)

// ExampleGraph builds a square and inspects it.
func ExampleGraph() {
	//  0───1
	//  │   │
	//  3───2
	g, _ := core.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	fmt.Println(g.Order(), g.Size())
	fmt.Println(g.Neighbors(0))
	fmt.Println(g.CheckIndependent([]int{0, 2}) == nil, g.CheckIndependent([]int{0, 1}) == nil)

	// Output:
	// 4 4
	// [1 3]
	// true false
}
