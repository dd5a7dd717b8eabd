// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import (
	"io"
	"math"
)

// Chain yields every item of first, then every item of second.
// The switch happens permanently on first's io.EOF; items never
// interleave, even across poll cycles that suspend partway.
func Chain[T any](first, second Stream[T]) Stream[T] {
	return &chainStream[T]{first: first, second: second}
}

type chainStream[T any] struct {
	first     Stream[T]
	second    Stream[T]
	firstDone bool
}

func (c *chainStream[T]) PollNext(cx *Context) (T, error) {
	if !c.firstDone {
		v, err := c.first.PollNext(cx)
		if err != io.EOF {
			return v, err
		}
		c.firstDone = true
	}
	return c.second.PollNext(cx)
}

func (c *chainStream[T]) SizeHint() (lower, upper int) {
	l1, u1 := SizeHint(c.first)
	l2, u2 := SizeHint(c.second)
	if c.firstDone {
		l1, u1 = 0, 0
	}
	lower = satAdd(l1, l2)
	if u1 < 0 || u2 < 0 {
		return lower, -1
	}
	return lower, satAdd(u1, u2)
}

// satAdd adds two non-negative counts, saturating at math.MaxInt so an
// unbounded half (lower = math.MaxInt) cannot overflow the sum.
func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
