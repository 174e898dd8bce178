package gen_test

import (
	"fmt"

	"github.com/webriots/gen"
)

func ExampleNew() {
	// Create a generator. The co handle lets the function send items to
	// the consumer; everything runs on a single logical thread. The
	// function starts on the first pull and is paused inside each Yield
	// until the consumer asks for the next item.
	g := gen.New(func(co *gen.Coro[int]) {
		for i := 0; i < 4; i++ {
			co.Yield(i)
		}
	})

	for v := range g.Seq() {
		fmt.Println(v)
	}
	// Output:
	// 0
	// 1
	// 2
	// 3
}

func ExampleGenerator_Next() {
	g := gen.New(func(co *gen.Coro[string]) {
		co.Yield("one")
		co.Yield("two")
	})

	for {
		v, ok := g.Next()
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// one
	// two
}
