// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

// Seq is a finite pull-based sequence of elements.
// Next returns the next element and true, or zero and false once the
// sequence is exhausted. Sequences are consumed once; exhaustion is
// permanent.
type Seq[A any] interface {
	Next() (A, bool)
}

// SeqFunc adapts a pull function to the Seq interface.
type SeqFunc[A any] func() (A, bool)

// Next implements Seq by calling f.
func (f SeqFunc[A]) Next() (A, bool) { return f() }

// SeqOf creates a sequence over the given elements, in order.
func SeqOf[A any](items ...A) Seq[A] {
	return &sliceSeq[A]{items: items}
}

type sliceSeq[A any] struct {
	items []A
}

func (s *sliceSeq[A]) Next() (A, bool) {
	if len(s.items) == 0 {
		var zero A
		return zero, false
	}
	v := s.items[0]
	s.items = s.items[1:]
	return v, true
}

// AsyncMapSeq applies a suspending transform to every element of a
// pull sequence, producing a stream of outputs in upstream order.
//
// At most one per-element future is in flight at a time: each element
// is transformed to completion before the next is pulled, so there is
// no pipelining between elements. f is invoked exactly once per
// element. Upstream exhaustion is terminal: the stream reports
// exhaustion on every later poll.
func AsyncMapSeq[A, B any](s Seq[A], f func(A) Future[B]) Stream[B] {
	return &asyncMap[A, B]{
		next: func(*Context) (Option[A], bool) {
			if v, ok := s.Next(); ok {
				return Some(v), true
			}
			return None[A](), true
		},
		fn: f,
	}
}
