package circular_test

import (
	"fmt"

	"github.com/katalvlaran/dsakit/circular"
)

// ExampleArray_Rotate rotates five letters by two without moving any element.
func ExampleArray_Rotate() {
	arr := circular.From([]string{"a", "b", "c", "d", "e"})
	arr.Rotate(2)

	first, _ := arr.Get(0)
	fmt.Println(first)
	for v := range arr.All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output:
	// c
	// c d e a b
}
