// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import (
	"io"

	"code.hybscloud.com/kont"
)

// Collect creates a future that drains s into a slice, resolving once
// s ends. Every item must arrive before the slice is produced.
func Collect[T any](s Stream[T]) Future[[]T] {
	return Fold(s, []T(nil), func(acc []T, v T) []T { return append(acc, v) })
}

// CollectString creates a future that drains a rune stream into a string.
func CollectString(s Stream[rune]) Future[string] {
	return MapFuture(Fold(s, []rune(nil), func(acc []rune, r rune) []rune {
		return append(acc, r)
	}), func(rs []rune) string { return string(rs) })
}

// CollectOption creates a future that drains a stream of optional items
// into Some(slice), short-circuiting to None on the first absent item
// without pulling further items.
func CollectOption[T any](s Stream[Option[T]]) Future[Option[[]T]] {
	return &collectOptionFuture[T]{src: s}
}

type collectOptionFuture[T any] struct {
	src Stream[Option[T]]
	acc []T
}

func (c *collectOptionFuture[T]) Poll(cx *Context) (Option[[]T], error) {
	for {
		o, err := c.src.PollNext(cx)
		if err == io.EOF {
			return Some(c.acc), nil
		}
		if err != nil {
			return None[[]T](), err
		}
		v, ok := o.Get()
		if !ok {
			return None[[]T](), nil
		}
		c.acc = append(c.acc, v)
	}
}

// CollectEither creates a future that drains a stream of Either items
// into Right(slice), short-circuiting to the first Left without pulling
// further items. Left values are inspected item values, not failure
// signals from the source's own control flow.
func CollectEither[E, T any](s Stream[kont.Either[E, T]]) Future[kont.Either[E, []T]] {
	return &collectEitherFuture[E, T]{src: s}
}

type collectEitherFuture[E, T any] struct {
	src Stream[kont.Either[E, T]]
	acc []T
}

func (c *collectEitherFuture[E, T]) Poll(cx *Context) (kont.Either[E, []T], error) {
	for {
		e, err := c.src.PollNext(cx)
		if err == io.EOF {
			return kont.Right[E, []T](c.acc), nil
		}
		if err != nil {
			var zero kont.Either[E, []T]
			return zero, err
		}
		if l, ok := e.GetLeft(); ok {
			return kont.Left[E, []T](l), nil
		}
		v, _ := e.GetRight()
		c.acc = append(c.acc, v)
	}
}
