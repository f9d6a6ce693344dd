// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

// Single-shot applier: the one engine behind the Async* adapters and the
// future combinators. It either short-circuits with a fixed result or
// invokes a captured transform exactly once, drives the returned future,
// and reshapes the output through a policy function.

// applyState enumerates the phases of the single-shot engine.
type applyState uint8

const (
	// applyIdle holds a fixed short-circuit result; the transform never runs.
	applyIdle applyState = iota
	// applyArmed holds the captured (value, transform) pair, not yet invoked.
	applyArmed
	// applyRunning drives the future returned by the transform.
	applyRunning
	// applyDone is terminal; polling again is a usage defect.
	applyDone
)

// apply is the single-shot state machine. A is the captured input,
// B the inner future's output, C the shaped result.
//
// The Armed pair is moved out exactly once on the Armed→Running
// transition: both fields are zeroed before the transform is invoked,
// so a reuse bug surfaces as a nil dereference or a Done panic rather
// than a silent second invocation.
type apply[A, B, C any] struct {
	state applyState
	out   C                 // Idle short-circuit result
	arg   A                 // Armed captured value
	fn    func(A) Future[B] // Armed captured transform
	fut   Future[B]         // Running inner future
	shape func(B) C         // output-shaping policy
}

// applyReady constructs the engine in Idle phase with a fixed result.
func applyReady[A, B, C any](out C) *apply[A, B, C] {
	return &apply[A, B, C]{state: applyIdle, out: out}
}

// applyArm constructs the engine in Armed phase. fn is invoked on arg
// exactly once, on the first poll.
func applyArm[A, B, C any](arg A, fn func(A) Future[B], shape func(B) C) *apply[A, B, C] {
	return &apply[A, B, C]{state: applyArmed, arg: arg, fn: fn, shape: shape}
}

// applyRun constructs the engine directly in Running phase, driving an
// existing future through the shaping policy. Used by Map.
func applyRun[A, B, C any](fut Future[B], shape func(B) C) *apply[A, B, C] {
	return &apply[A, B, C]{state: applyRunning, fut: fut, shape: shape}
}

// Poll implements Future. The Armed→Running transition and the first
// poll of the inner future happen within the same call, so arming never
// costs an extra scheduler turn.
func (p *apply[A, B, C]) Poll(cx *Context) (C, bool) {
	switch p.state {
	case applyIdle:
		p.state = applyDone
		out := p.out
		var zero C
		p.out = zero
		return out, true
	case applyArmed:
		arg, fn := p.arg, p.fn
		var zeroA A
		p.arg = zeroA
		p.fn = nil
		p.fut = fn(arg)
		p.state = applyRunning
		fallthrough
	case applyRunning:
		b, ok := p.fut.Poll(cx)
		if !ok {
			var zero C
			return zero, false
		}
		p.fut = nil
		p.state = applyDone
		return p.shape(b), true
	default:
		panic("hof: future polled after completion")
	}
}

// Output-shaping policies. Named generic functions produce a static
// function value per type instantiation, avoiding the heap allocation
// that anonymous closures incur.

// shapeIdentity passes the inner output through unchanged.
func shapeIdentity[A any](a A) A { return a }

// shapeSome wraps the inner output as a present optional.
func shapeSome[A any](a A) Option[A] { return Some(a) }

// shapeRight wraps the inner output as a success value.
func shapeRight[E, A any](a A) Either[E, A] { return Right[E, A](a) }
