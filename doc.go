// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package comp provides completion futures and completion streams:
// poll-driven asynchronous values that, once pending, must be driven to
// a finished result before being discarded.
//
// Ordinary cancellable futures may be dropped at any time. A completion
// future models primitives (e.g. kernel-submitted I/O) where an external
// agent holds a live reference into memory owned by the operation, so a
// pending operation must be polled until it finishes before its storage
// is reused. The package supplies the two contracts plus a combinator
// algebra that preserves the obligation at every layer.
//
// # Architecture
//
//   - Polling: [Future] and [Stream] return [code.hybscloud.com/iox.ErrWouldBlock]
//     while pending, in the non-blocking boundary convention of iox. Streams
//     return [io.EOF] when no more items will be produced.
//   - Transport: [Pipe] is a leaf stream backed by a bounded lock-free SPSC
//     queue via [code.hybscloud.com/lfq], for feeding a stream from a
//     producer goroutine.
//   - Sum types: short-circuiting collectors consume [code.hybscloud.com/kont.Either]
//     items; [Unfold] steps produce [code.hybscloud.com/kont.Pair] values.
//   - Blocking: [BlockOn] and [Iter] wait past pending results using an
//     [Executor]; the default uses adaptive backoff (iox.Backoff) without
//     spawning goroutines or creating channels.
//
// # Completion obligation
//
// After Poll or PollNext returns ErrWouldBlock, the caller must poll again
// (after arranging a wake-up through the supplied [Context]) until a
// non-pending result is returned, before the operation is discarded.
// This is an unchecked precondition: violating it is undefined behavior,
// not a recoverable error. [Box.Discard] and [SendBox.Discard] provide a
// diagnostic that panics when an erased stream is dropped mid-flight.
//
// # API Topologies
//
//   - Sources: [FromSeq], [FromSlice], [Empty], [Repeat], [Once], [NewPipe], [Unfold].
//   - Transforms: [Map], [Filter], [FilterMap], [Copied], [Cloned].
//   - Sequencing: [Then], [Chain], [StepBy], [Take], [TakeWhile], [Skip], [SkipWhile], [Fuse].
//   - Reductions: [Next], [Nth], [Count], [Last], [Fold], [ForEach], [All], [Any],
//     [Collect], [CollectString], [CollectOption], [CollectEither].
//   - Futures: [Ready], [MapFuture], [AndThen].
//   - Bridge: [BlockOn], [BlockOnExec], [Iter], [Executor].
//   - Erasure: [Box], [SendBox].
//
// # Example
//
//	s := comp.Map(comp.Filter(comp.FromSlice([]int{0, 1, 2, 3, 4}),
//		func(x int) bool { return x%2 == 0 }),
//		func(x int) int { return x * 10 })
//	items, _ := comp.BlockOn(comp.Collect(s)) // [0 20 40]
package comp
