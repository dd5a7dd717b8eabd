// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import (
	"io"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// Poll states tracked by the erasure handles.
const (
	pollIdle uint32 = iota
	pollPending
	pollEnded
)

// Box is an owning, dynamically dispatched handle to a completion
// stream, confined to a single goroutine. The wrapped stream's storage
// is fixed behind the handle and never required to move afterward.
//
// Box tracks whether an item production is mid-flight and turns the
// completion obligation into a diagnostic: Discard panics if called
// while a poll is outstanding. For a handle that may be handed between
// goroutines, use [SendBox]; the two are distinct types so the transfer
// guarantee is visible at compose time.
type Box[T any] struct {
	src   Stream[T]
	state uint32
}

// NewBox creates a single-goroutine erasure handle owning s.
func NewBox[T any](s Stream[T]) *Box[T] {
	return &Box[T]{src: s}
}

// PollNext implements Stream.
func (b *Box[T]) PollNext(cx *Context) (T, error) {
	v, err := b.src.PollNext(cx)
	switch err {
	case iox.ErrWouldBlock:
		b.state = pollPending
	case io.EOF:
		b.state = pollEnded
	default:
		b.state = pollIdle
	}
	return v, err
}

// Discard releases the handle. Panics if an item production is
// mid-flight: a pending stream must be polled to a non-pending result
// first. This check is a diagnostic, not a substitute for the contract.
func (b *Box[T]) Discard() {
	if b.state == pollPending {
		panic("comp: stream discarded while mid-flight")
	}
	b.src = nil
}

// SizeHint forwards the wrapped stream's size estimate.
func (b *Box[T]) SizeHint() (lower, upper int) {
	if b.state == pollEnded || b.src == nil {
		return 0, 0
	}
	return SizeHint(b.src)
}

// SendBox is an owning, dynamically dispatched handle to a completion
// stream that is safe to hand between goroutines between polls. Its
// poll-state diagnostic uses an atomic, so a Discard racing a handoff
// still observes the mid-flight flag.
//
// A stream is only eligible for SendBox if everything it owns may cross
// goroutines; composition over a single-goroutine source must use [Box].
type SendBox[T any] struct {
	src   Stream[T]
	state atomix.Uint32
}

// NewSendBox creates a transfer-safe erasure handle owning s.
func NewSendBox[T any](s Stream[T]) *SendBox[T] {
	return &SendBox[T]{src: s}
}

// PollNext implements Stream.
func (b *SendBox[T]) PollNext(cx *Context) (T, error) {
	v, err := b.src.PollNext(cx)
	switch err {
	case iox.ErrWouldBlock:
		b.state.Store(pollPending)
	case io.EOF:
		b.state.Store(pollEnded)
	default:
		b.state.Store(pollIdle)
	}
	return v, err
}

// Discard releases the handle. Panics if an item production is
// mid-flight, as with [Box.Discard].
func (b *SendBox[T]) Discard() {
	if b.state.Load() == pollPending {
		panic("comp: stream discarded while mid-flight")
	}
	b.src = nil
}

// SizeHint forwards the wrapped stream's size estimate.
func (b *SendBox[T]) SizeHint() (lower, upper int) {
	if b.state.Load() == pollEnded || b.src == nil {
		return 0, 0
	}
	return SizeHint(b.src)
}
