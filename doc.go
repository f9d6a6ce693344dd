// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hof provides asynchronous higher-order functions in Go:
// suspending map and and-then combinators over optional values,
// fallible values, pull sequences, and asynchronous streams.
//
// The core type [Future] represents a suspending computation driven by
// an external scheduler through repeated [Future.Poll] calls. A
// transform passed to the Async* combinators returns a Future rather
// than a value; the combinators decide from the carrier's shape whether
// the transform runs at all, invoke it at most once, drive its future
// to completion across polls, and re-wrap the eventual output in the
// original carrier shape.
//
// # Design Philosophy
//
// hof provides:
//   - One single-shot engine reused by every adapter, parameterized by
//     an output-shaping policy instead of duplicated per carrier
//   - An explicit, externally-driven polling contract: no goroutines,
//     no locks, no blocking inside the combinators
//   - Affine discipline throughout: transforms run at most once, and
//     polling a completed future is a defect that panics
//
// # Polling Contract
//
//   - [Context]: polling context forwarded through every poll; carries
//     the wake callback and is never inspected by the combinators
//   - [NewContext], [Context.Wake], [Context.Waker]
//   - [Future]: suspending computation; Poll returns (value, true) on
//     completion or (zero, false) while pending
//   - [FutureFunc]: function adapter for Future
//   - [Pure]: lift a value into an immediately-ready future
//   - [Wait]: reference driver; polls in a loop, parking on a
//     channel-based waker between polls
//
// A future that returns not-ready must first arrange a wake through the
// context; the combinators propagate the not-ready signal upward
// unchanged, along with whatever wake registration the inner
// computation performed.
//
// # Carriers
//
// Optional values:
//
//   - [Option], [Some], [None]
//   - [Option.IsSome], [Option.IsNone], [Option.Get]
//   - [MatchOption], [MapOption], [FlatMapOption]
//   - [AsyncMapOption]: suspending map; absent short-circuits to None
//   - [AsyncAndThenOption]: suspending flat-map; the transform's future
//     resolves to an Option itself
//
// Fallible values — [Either] represents success (Right) or failure (Left):
//
//   - [Left], [Right]
//   - [Either.IsLeft], [Either.IsRight], [Either.GetLeft], [Either.GetRight]
//   - [MatchEither], [MapEither], [FlatMapEither], [MapLeftEither]
//   - [AsyncMapEither]: suspending map; a Left short-circuits with the
//     original error value, unchanged and uninspected
//   - [AsyncAndThenEither]: suspending flat-map sharing the error type
//
// Pull sequences:
//
//   - [Seq]: finite pull-based sequence; [SeqFunc], [SeqOf]
//   - [AsyncMapSeq]: per-element suspending map producing a [Stream];
//     strict sequencing, one element in flight at a time
//
// Asynchronous streams:
//
//   - [Stream]: polling-driven sequence; [StreamFunc], [StreamOf],
//     [StreamOfSeq]
//   - [AsyncMapStream]: per-element suspending map with a suspending
//     upstream; up to two suspension points per element
//   - [Collect]: reference driver draining a stream to exhaustion
//
// # Future Combinators
//
//   - [Map]: apply a pure function to a future's result
//   - [Bind]: sequence two suspending computations
//   - [Then]: sequence, discarding the first result
//
// # Affine Semantics
//
// Every future produced by this package is single-use: polling after
// completion panics with "hof: future polled after completion". This is
// a driver bug, never a recoverable condition. Stream exhaustion is
// different — a normal terminal signal; an exhausted stream keeps
// reporting exhaustion without complaint.
//
// Abandoning a future or stream before completion is the only
// cancellation mechanism: the captured value and any in-flight inner
// future are dropped with it, and nothing is signalled downstream.
//
// # Example
//
//	double := func(x int) hof.Future[int] {
//		return hof.Pure(x * 2)
//	}
//
//	v := hof.Wait(hof.AsyncMapOption(hof.Some(21), double))
//	// v == hof.Some(42)
//
//	out := hof.Collect(hof.AsyncMapSeq(hof.SeqOf(1, 2), func(x int) hof.Future[int] {
//		return hof.Pure(x + 1)
//	}))
//	// out == []int{2, 3}
package hof
