// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

// Monad operations for futures.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are kept as optimizations: Map runs on the single-shot
// engine with the transform as its shaping policy, and Then avoids the
// closure capture a hand-written Bind would incur.

// Map applies a pure function to the result of a future.
// The returned future is single-use, like every future in this package.
func Map[A, B any](f Future[A], fn func(A) B) Future[B] {
	return applyRun[struct{}](f, fn)
}

// Bind sequences two suspending computations: it drives f, then invokes
// fn exactly once on its output and drives the returned future.
func Bind[A, B any](f Future[A], fn func(A) Future[B]) Future[B] {
	return &bindFuture[A, B]{src: f, fn: fn}
}

// Then sequences two futures, discarding the first result.
func Then[A, B any](f Future[A], g Future[B]) Future[B] {
	return &bindFuture[A, B]{src: f, fn: constFuture[A](g)}
}

// constFuture returns a transform that ignores its input and yields g.
func constFuture[A, B any](g Future[B]) func(A) Future[B] {
	return func(A) Future[B] { return g }
}

// bindFuture is the two-stage machine behind Bind and Then: drive src,
// move the (output, fn) pair out once, then drive the derived future.
type bindFuture[A, B any] struct {
	src  Future[A]
	fn   func(A) Future[B]
	fut  Future[B]
	done bool
}

// Poll implements Future. The stage switch and the first poll of the
// derived future happen within the same call, so no scheduler turn is
// wasted between stages.
func (b *bindFuture[A, B]) Poll(cx *Context) (B, bool) {
	if b.done {
		panic("hof: future polled after completion")
	}
	if b.fut == nil {
		a, ok := b.src.Poll(cx)
		if !ok {
			var zero B
			return zero, false
		}
		fn := b.fn
		b.src = nil
		b.fn = nil
		b.fut = fn(a)
	}
	v, ok := b.fut.Poll(cx)
	if !ok {
		var zero B
		return zero, false
	}
	b.fut = nil
	b.done = true
	return v, true
}
