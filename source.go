// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import (
	"io"
	"iter"
	"math"
)

// FromSeq lifts an ordinary Go sequence into a completion stream.
//
// An ordinary sequence may be abandoned at any point, which is a strictly
// stronger guarantee than the completion contract requires, so the lift
// is a direct pass-through: PollNext never returns ErrWouldBlock.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	next, stop := iter.Pull(seq)
	return &seqStream[T]{next: next, stop: stop}
}

type seqStream[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

func (s *seqStream[T]) PollNext(cx *Context) (T, error) {
	var zero T
	if s.done {
		return zero, io.EOF
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		return zero, io.EOF
	}
	return v, nil
}

// FromSlice creates a completion stream yielding the elements of items
// in order. The slice is not copied; it must not be mutated while the
// stream is alive.
func FromSlice[T any](items []T) Stream[T] {
	return &sliceStream[T]{items: items}
}

// Empty creates a completion stream that ends immediately.
func Empty[T any]() Stream[T] {
	return &sliceStream[T]{}
}

type sliceStream[T any] struct {
	items []T
	pos   int
}

func (s *sliceStream[T]) PollNext(cx *Context) (T, error) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, io.EOF
	}
	v := s.items[s.pos]
	s.pos++
	return v, nil
}

func (s *sliceStream[T]) SizeHint() (lower, upper int) {
	n := len(s.items) - s.pos
	return n, n
}

// Repeat creates an infinite completion stream yielding v forever.
// Bound it with [Take] or [TakeWhile] before any draining reduction.
func Repeat[T any](v T) Stream[T] {
	return &repeatStream[T]{v: v}
}

type repeatStream[T any] struct {
	v T
}

func (s *repeatStream[T]) PollNext(cx *Context) (T, error) {
	return s.v, nil
}

func (s *repeatStream[T]) SizeHint() (lower, upper int) {
	return math.MaxInt, -1
}

// Once creates a completion stream yielding the result of fut, then
// ending. The stream is pending while fut is.
func Once[T any](fut Future[T]) Stream[T] {
	return &onceStream[T]{fut: fut}
}

type onceStream[T any] struct {
	fut  Future[T]
	done bool
}

func (s *onceStream[T]) PollNext(cx *Context) (T, error) {
	var zero T
	if s.done {
		return zero, io.EOF
	}
	v, err := s.fut.Poll(cx)
	if err != nil {
		return zero, err
	}
	s.done = true
	return v, nil
}

func (s *onceStream[T]) SizeHint() (lower, upper int) {
	if s.done {
		return 0, 0
	}
	return 1, 1
}
