package lerp_test

import (
	"fmt"

	"github.com/teranos/lerp"
)

func ExampleLerp() {
	fmt.Println(lerp.Lerp(3.0, 5.0, 0.5))
	fmt.Println(lerp.Lerp(3.0, 4.0, 2.0))
	// Output:
	// 4
	// 5
}

func ExampleRange() {
	for v := range lerp.Range(3.0, 5.0, 4) {
		fmt.Println(v)
	}
	// Output:
	// 3
	// 3.5
	// 4
	// 4.5
}
