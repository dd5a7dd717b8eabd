// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import "io"

// Take yields the first n items of s, then ends. Remaining source items
// are never pulled.
func Take[T any](s Stream[T], n int) Stream[T] {
	return &takeStream[T]{src: s, remaining: n}
}

type takeStream[T any] struct {
	src       Stream[T]
	remaining int
}

func (t *takeStream[T]) PollNext(cx *Context) (T, error) {
	if t.remaining <= 0 {
		var zero T
		return zero, io.EOF
	}
	v, err := t.src.PollNext(cx)
	if err != nil {
		var zero T
		return zero, err
	}
	t.remaining--
	return v, nil
}

func (t *takeStream[T]) SizeHint() (lower, upper int) {
	l, u := SizeHint(t.src)
	if l > t.remaining {
		l = t.remaining
	}
	if u < 0 || u > t.remaining {
		u = t.remaining
	}
	return l, u
}

// Skip discards the first n items of s, then yields the rest.
// Discarded items are consumed inside PollNext, re-polling the source
// like [Filter] does.
func Skip[T any](s Stream[T], n int) Stream[T] {
	return &skipStream[T]{src: s, remaining: n}
}

type skipStream[T any] struct {
	src       Stream[T]
	remaining int
}

func (s *skipStream[T]) PollNext(cx *Context) (T, error) {
	for {
		v, err := s.src.PollNext(cx)
		if err != nil {
			var zero T
			return zero, err
		}
		if s.remaining == 0 {
			return v, nil
		}
		s.remaining--
	}
}

// TakeWhile yields items of s while pred returns true, then ends.
// The first rejected item is consumed and discarded, and the source is
// never pulled again.
func TakeWhile[T any](s Stream[T], pred func(T) bool) Stream[T] {
	return &takeWhileStream[T]{src: s, pred: pred}
}

type takeWhileStream[T any] struct {
	src  Stream[T]
	pred func(T) bool
	done bool
}

func (t *takeWhileStream[T]) PollNext(cx *Context) (T, error) {
	var zero T
	if t.done {
		return zero, io.EOF
	}
	v, err := t.src.PollNext(cx)
	if err != nil {
		return zero, err
	}
	if !t.pred(v) {
		t.done = true
		return zero, io.EOF
	}
	return v, nil
}

// SkipWhile discards items of s while pred returns true, then yields
// every remaining item. Once an item is accepted the predicate is never
// consulted again, even if it would match later items.
func SkipWhile[T any](s Stream[T], pred func(T) bool) Stream[T] {
	return &skipWhileStream[T]{src: s, pred: pred, skipping: true}
}

type skipWhileStream[T any] struct {
	src      Stream[T]
	pred     func(T) bool
	skipping bool
}

func (s *skipWhileStream[T]) PollNext(cx *Context) (T, error) {
	for {
		v, err := s.src.PollNext(cx)
		if err != nil {
			var zero T
			return zero, err
		}
		if !s.skipping {
			return v, nil
		}
		if !s.pred(v) {
			s.skipping = false
			return v, nil
		}
	}
}
