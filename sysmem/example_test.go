package sysmem_test

import (
	"fmt"

	"github.com/katalvlaran/sciutil/sysmem"
)

// ExampleAvailable sizes a buffer from free memory, treating 0 as unknown.
func ExampleAvailable() {
	const fallback = 1 << 30
	budget := sysmem.Available() / 2
	if budget == 0 {
		budget = fallback
	}
	fmt.Println(budget > 0)
	// Output:
	// true
}
