// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hof

// Option represents a value that is either present (Some) or absent (None).
type Option[A any] struct {
	some  bool
	value A
}

// Some creates a present optional.
func Some[A any](a A) Option[A] {
	return Option[A]{some: true, value: a}
}

// None creates an absent optional.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool {
	return o.some
}

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.some
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.some {
		return o.value, true
	}
	var zero A
	return zero, false
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[A, T any](o Option[A], onSome func(A) T, onNone func() T) T {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.some {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two optional computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.some {
		return f(o.value)
	}
	return None[B]()
}

// AsyncMapOption applies a suspending transform to the present value.
// The returned future resolves to Some of the transform's eventual
// output, or immediately to None when o is absent — in which case f is
// never invoked. f runs at most once, on the first poll.
func AsyncMapOption[A, B any](o Option[A], f func(A) Future[B]) Future[Option[B]] {
	if v, ok := o.Get(); ok {
		return applyArm(v, f, shapeSome[B])
	}
	return applyReady[A, B](None[B]())
}

// AsyncAndThenOption applies a suspending transform whose output is
// itself an optional. The returned future resolves to whatever optional
// f's future resolves to (present or absent), or immediately to None
// when o is absent without invoking f.
func AsyncAndThenOption[A, B any](o Option[A], f func(A) Future[Option[B]]) Future[Option[B]] {
	if v, ok := o.Get(); ok {
		return applyArm(v, f, shapeIdentity[Option[B]])
	}
	return applyReady[A, Option[B]](None[B]())
}
