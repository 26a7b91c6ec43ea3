package grid_test

import (
	"fmt"

	"github.com/katalvlaran/dsakit/grid"
)

// ExampleSpiral prints the clockwise spiral of a 4×5 grid.
func ExampleSpiral() {
	g := [][]int{
		{1, 2, 3, 4, 5},
		{6, 7, 8, 9, 10},
		{11, 12, 13, 14, 15},
		{16, 17, 18, 19, 20},
	}
	order, err := grid.Spiral(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(order)
	// Output: [1 2 3 4 5 10 15 20 19 18 17 16 11 6 7 8 9 14 13 12]
}

// ExampleSearchStaircase walks from the top-right corner towards 9.
func ExampleSearchStaircase() {
	g := [][]int{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}
	at, ok, _ := grid.SearchStaircase(g, 9)
	fmt.Println(at, ok)
	// Output: (2,2) true
}
