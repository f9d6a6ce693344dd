// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof_test

import (
	"testing"

	"code.hybscloud.com/hof"
)

func TestOptionAccessors(t *testing.T) {
	s := hof.Some(3)
	if !s.IsSome() || s.IsNone() {
		t.Fatal("Some misclassified")
	}
	if v, ok := s.Get(); !ok || v != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", v, ok)
	}

	n := hof.None[int]()
	if n.IsSome() || !n.IsNone() {
		t.Fatal("None misclassified")
	}
	if v, ok := n.Get(); ok || v != 0 {
		t.Fatalf("got (%d, %v), want (0, false)", v, ok)
	}
}

func TestOptionHelpers(t *testing.T) {
	double := func(x int) int { return x * 2 }

	if got := hof.MapOption(hof.Some(4), double); got != hof.Some(8) {
		t.Fatalf("MapOption(Some(4)) = %v", got)
	}
	if got := hof.MapOption(hof.None[int](), double); !got.IsNone() {
		t.Fatalf("MapOption(None) = %v", got)
	}

	half := func(x int) hof.Option[int] {
		if x%2 != 0 {
			return hof.None[int]()
		}
		return hof.Some(x / 2)
	}
	if got := hof.FlatMapOption(hof.Some(8), half); got != hof.Some(4) {
		t.Fatalf("FlatMapOption(Some(8)) = %v", got)
	}
	if got := hof.FlatMapOption(hof.Some(3), half); !got.IsNone() {
		t.Fatalf("FlatMapOption(Some(3)) = %v", got)
	}

	got := hof.MatchOption(hof.Some(1),
		func(int) string { return "some" },
		func() string { return "none" },
	)
	if got != "some" {
		t.Fatalf("MatchOption(Some) = %q", got)
	}
	got = hof.MatchOption(hof.None[int](),
		func(int) string { return "some" },
		func() string { return "none" },
	)
	if got != "none" {
		t.Fatalf("MatchOption(None) = %q", got)
	}
}

func TestAsyncMapOptionSome(t *testing.T) {
	f := hof.AsyncMapOption(hof.Some(1), func(x int) hof.Future[int] {
		return after(2, x+2)
	})
	if got := hof.Wait(f); got != hof.Some(3) {
		t.Fatalf("got %v, want Some(3)", got)
	}
}

func TestAsyncMapOptionNoneShortCircuit(t *testing.T) {
	invoked := false
	f := hof.AsyncMapOption(hof.None[int](), func(x int) hof.Future[int] {
		invoked = true
		return hof.Pure(x)
	})
	v, ok := f.Poll(noopCx())
	if !ok {
		t.Fatal("expected immediate completion for None")
	}
	if !v.IsNone() {
		t.Fatalf("got %v, want None", v)
	}
	if invoked {
		t.Fatal("transform must not be invoked for None")
	}
}

func TestAsyncMapOptionLazyUntilFirstPoll(t *testing.T) {
	invoked := 0
	f := hof.AsyncMapOption(hof.Some(1), func(x int) hof.Future[int] {
		invoked++
		return after(2, x+1)
	})
	if invoked != 0 {
		t.Fatal("transform invoked at construction")
	}

	cx := noopCx()
	f.Poll(cx)
	f.Poll(cx)
	f.Poll(cx)
	if invoked != 1 {
		t.Fatalf("transform invoked %d times, want 1", invoked)
	}
}

func TestAsyncAndThenOptionSomeToSome(t *testing.T) {
	f := hof.AsyncAndThenOption(hof.Some(2), func(x int) hof.Future[hof.Option[int]] {
		return after(1, hof.Some(x*10))
	})
	if got := hof.Wait(f); got != hof.Some(20) {
		t.Fatalf("got %v, want Some(20)", got)
	}
}

func TestAsyncAndThenOptionSomeToNone(t *testing.T) {
	f := hof.AsyncAndThenOption(hof.Some(2), func(int) hof.Future[hof.Option[int]] {
		return hof.Pure(hof.None[int]())
	})
	if got := hof.Wait(f); !got.IsNone() {
		t.Fatalf("got %v, want None", got)
	}
}

func TestAsyncAndThenOptionNoneShortCircuit(t *testing.T) {
	invoked := false
	f := hof.AsyncAndThenOption(hof.None[int](), func(int) hof.Future[hof.Option[int]] {
		invoked = true
		return hof.Pure(hof.Some(0))
	})
	v, ok := f.Poll(noopCx())
	if !ok || !v.IsNone() {
		t.Fatalf("got (%v, %v), want (None, true)", v, ok)
	}
	if invoked {
		t.Fatal("transform must not be invoked for None")
	}
}

func TestAsyncMapOptionDoublePollPanic(t *testing.T) {
	f := hof.AsyncMapOption(hof.None[int](), func(x int) hof.Future[int] {
		return hof.Pure(x)
	})
	f.Poll(noopCx())

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on double poll")
		}
		if r != "hof: future polled after completion" {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	f.Poll(noopCx())
}

func TestAsyncMapOptionCompletedPanicAfterRun(t *testing.T) {
	f := hof.AsyncMapOption(hof.Some(1), func(x int) hof.Future[int] {
		return hof.Pure(x + 1)
	})
	if v, ok := f.Poll(noopCx()); !ok || v != hof.Some(2) {
		t.Fatalf("got (%v, %v), want (Some(2), true)", v, ok)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on poll after completion")
		}
	}()
	f.Poll(noopCx())
}
