// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

// Polling contract shared by every suspending computation in this package.
// A Future is driven by an external scheduler that calls Poll repeatedly;
// "suspend" means returning not-ready to the caller, never blocking.

// Context is the polling context threaded through every Poll call.
// It carries the wake callback registered by whichever leaf computation
// reports not-ready. Combinators in this package forward the context
// unchanged and never inspect it.
type Context struct {
	wake func()
}

// NewContext creates a polling context with the given wake callback.
// The callback must be safe to invoke from whatever goroutine the leaf
// computation completes on; invoking it more than once per suspension
// must be harmless.
func NewContext(wake func()) *Context {
	return &Context{wake: wake}
}

// Wake invokes the registered wake callback, signalling the driver that
// the computation that suspended is worth polling again.
func (cx *Context) Wake() {
	cx.wake()
}

// Waker returns the wake callback for registration with an external
// event source that outlives the current Poll call.
func (cx *Context) Waker() func() {
	return cx.wake
}

// Future is a suspending computation producing a value of type A.
// Poll returns (value, true) once the computation completes, or
// (zero, false) while it is still pending; in the pending case the
// computation has arranged a wake via the context before returning.
//
// Futures are single-use and exclusively owned by one driver.
// Polling a future that has already completed is a usage defect and
// panics; it indicates a driver bug, not a recoverable condition.
type Future[A any] interface {
	Poll(cx *Context) (A, bool)
}

// FutureFunc adapts a poll function to the Future interface.
type FutureFunc[A any] func(cx *Context) (A, bool)

// Poll implements Future by calling f.
func (f FutureFunc[A]) Poll(cx *Context) (A, bool) { return f(cx) }

// Pure lifts a value into an immediately-ready future.
// Like every future in this package the result is single-use:
// polling it after completion panics.
func Pure[A any](a A) Future[A] {
	return applyReady[struct{}, struct{}, A](a)
}

// Wait drives a future to completion and returns its result.
//
// Wait is the reference driver: it polls in a loop, parking on a
// channel-based waker between not-ready polls. A pending future must
// therefore arrange a wake through the context it was polled with, or
// Wait blocks forever. Callers that already own an event loop should
// poll the future themselves instead.
func Wait[A any](f Future[A]) A {
	wake := make(chan struct{}, 1)
	cx := NewContext(func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	})
	for {
		if v, ok := f.Poll(cx); ok {
			return v
		}
		<-wake
	}
}
