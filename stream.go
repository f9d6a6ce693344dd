// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

// Stream is an asynchronous sequence driven by polling.
// PollNext returns (Some(v), true) when the next element is available,
// (None, true) when the stream is exhausted, and (zero, false) while
// pending — in which case a wake has been arranged via the context.
//
// Exhaustion is a normal terminal signal, not a defect: a stream keeps
// reporting exhaustion when polled again.
type Stream[A any] interface {
	PollNext(cx *Context) (Option[A], bool)
}

// StreamFunc adapts a poll function to the Stream interface.
type StreamFunc[A any] func(cx *Context) (Option[A], bool)

// PollNext implements Stream by calling f.
func (f StreamFunc[A]) PollNext(cx *Context) (Option[A], bool) { return f(cx) }

// StreamOfSeq lifts a pull sequence into an always-ready stream.
func StreamOfSeq[A any](s Seq[A]) Stream[A] {
	return StreamFunc[A](func(*Context) (Option[A], bool) {
		if v, ok := s.Next(); ok {
			return Some(v), true
		}
		return None[A](), true
	})
}

// StreamOf creates an always-ready stream over the given elements.
func StreamOf[A any](items ...A) Stream[A] {
	return StreamOfSeq(SeqOf(items...))
}

// AsyncMapStream applies a suspending transform to every element of a
// stream, producing a stream of outputs in upstream order.
//
// Each element passes through up to two suspension points: first until
// the upstream yields the element, then until the per-element future
// completes. Every PollNext call performs at most the work available
// before the first not-ready from either stage. Sequencing and
// exhaustion behave as for [AsyncMapSeq].
func AsyncMapStream[A, B any](s Stream[A], f func(A) Future[B]) Stream[B] {
	return &asyncMap[A, B]{next: s.PollNext, fn: f}
}

// asyncMap is the per-element re-arming machine shared by AsyncMapSeq
// and AsyncMapStream. next is the source step: always ready for a pull
// sequence, possibly pending for a stream.
//
// Invariant: at most one per-element future is in flight; the slot is
// cleared as soon as its result is produced, before the next element
// is requested.
type asyncMap[A, B any] struct {
	next func(cx *Context) (Option[A], bool)
	fn   func(A) Future[B]
	fut  Future[B] // in-flight per-element future, nil when idle
	done bool      // upstream exhausted; terminal
}

// PollNext implements Stream.
func (m *asyncMap[A, B]) PollNext(cx *Context) (Option[B], bool) {
	if m.done {
		return None[B](), true
	}
	if m.fut == nil {
		item, ready := m.next(cx)
		if !ready {
			return None[B](), false
		}
		v, ok := item.Get()
		if !ok {
			m.done = true
			m.next = nil
			m.fn = nil
			return None[B](), true
		}
		m.fut = m.fn(v)
	}
	b, ok := m.fut.Poll(cx)
	if !ok {
		return None[B](), false
	}
	m.fut = nil
	return Some(b), true
}

// Collect drives a stream to exhaustion and returns its elements.
//
// Like [Wait], Collect is a reference driver parking on a channel-based
// waker between not-ready polls; pending stages must arrange a wake
// through the context or Collect blocks forever.
func Collect[A any](s Stream[A]) []A {
	wake := make(chan struct{}, 1)
	cx := NewContext(func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	})
	var out []A
	for {
		item, ready := s.PollNext(cx)
		if !ready {
			<-wake
			continue
		}
		v, ok := item.Get()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
