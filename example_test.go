// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof_test

import (
	"fmt"

	"code.hybscloud.com/hof"
)

func ExampleAsyncMapOption() {
	f := hof.AsyncMapOption(hof.Some(1), func(x int) hof.Future[int] {
		return hof.Pure(x + 2)
	})
	v, _ := hof.Wait(f).Get()
	fmt.Println(v)
	// Output: 3
}

func ExampleAsyncAndThenEither() {
	f := hof.AsyncAndThenEither(hof.Right[int](1), func(int) hof.Future[hof.Either[int, int]] {
		return hof.Pure(hof.Left[int, int](77))
	})
	e, _ := hof.Wait(f).GetLeft()
	fmt.Println(e)
	// Output: 77
}

func ExampleAsyncMapSeq() {
	out := hof.Collect(hof.AsyncMapSeq(hof.SeqOf(1, 2), func(x int) hof.Future[int] {
		return hof.Pure(x + 1)
	}))
	fmt.Println(out)
	// Output: [2 3]
}

func ExampleAsyncMapStream() {
	out := hof.Collect(hof.AsyncMapStream(hof.StreamOf(1, 2), func(x int) hof.Future[int] {
		return hof.Pure(x + 1)
	}))
	fmt.Println(out)
	// Output: [2 3]
}

func ExampleBind() {
	f := hof.Bind(hof.Pure(2), func(x int) hof.Future[int] {
		return hof.Pure(x * 10)
	})
	fmt.Println(hof.Wait(f))
	// Output: 20
}
