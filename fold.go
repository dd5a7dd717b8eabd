// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import "io"

// Draining reductions. Each owns its source stream and an accumulator,
// mutated in item order inside Poll. A pending source result suspends
// the reduction with the accumulator intact; the next Poll resumes
// draining where the previous one stopped.

// Fold creates a future that combines every item of s into an
// accumulator seeded with init, in arrival order, resolving to the
// final accumulator once s ends.
func Fold[T, A any](s Stream[T], init A, f func(A, T) A) Future[A] {
	return &foldFuture[T, A]{src: s, acc: init, f: f}
}

type foldFuture[T, A any] struct {
	src Stream[T]
	acc A
	f   func(A, T) A
}

func (fu *foldFuture[T, A]) Poll(cx *Context) (A, error) {
	for {
		v, err := fu.src.PollNext(cx)
		if err == io.EOF {
			return fu.acc, nil
		}
		if err != nil {
			var zero A
			return zero, err
		}
		fu.acc = fu.f(fu.acc, v)
	}
}

// Count creates a future resolving to the total number of items of s.
func Count[T any](s Stream[T]) Future[int] {
	return Fold(s, 0, func(n int, _ T) int { return n + 1 })
}

// Last creates a future resolving to the final item of s, or None for
// an empty stream.
func Last[T any](s Stream[T]) Future[Option[T]] {
	return Fold(s, None[T](), func(_ Option[T], v T) Option[T] { return Some(v) })
}

// ForEach creates a future that invokes f once per item of s for its
// side effect, in arrival order, resolving once s ends.
func ForEach[T any](s Stream[T], f func(T)) Future[struct{}] {
	return Fold(s, struct{}{}, func(u struct{}, v T) struct{} {
		f(v)
		return u
	})
}
