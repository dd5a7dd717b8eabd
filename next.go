// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import "io"

// Next creates a future resolving to the next item of s, or None if s
// ends first. s may be reused for further items once the future has
// finished.
func Next[T any](s Stream[T]) Future[Option[T]] {
	return &nextFuture[T]{src: s}
}

type nextFuture[T any] struct {
	src Stream[T]
}

func (n *nextFuture[T]) Poll(cx *Context) (Option[T], error) {
	v, err := n.src.PollNext(cx)
	if err == io.EOF {
		return None[T](), nil
	}
	if err != nil {
		return None[T](), err
	}
	return Some(v), nil
}

// Nth creates a future resolving to the item of s at position n
// (0-indexed), or None if s ends first. Skipped items are silently
// discarded.
func Nth[T any](s Stream[T], n int) Future[Option[T]] {
	return &nthFuture[T]{src: s, remaining: n}
}

type nthFuture[T any] struct {
	src       Stream[T]
	remaining int
}

func (f *nthFuture[T]) Poll(cx *Context) (Option[T], error) {
	for {
		v, err := f.src.PollNext(cx)
		if err == io.EOF {
			return None[T](), nil
		}
		if err != nil {
			return None[T](), err
		}
		if f.remaining == 0 {
			return Some(v), nil
		}
		f.remaining--
	}
}
