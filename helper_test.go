// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp_test

import (
	"io"
	"testing"

	"code.hybscloud.com/comp"
	"code.hybscloud.com/iox"
)

// driveFuture drives fut to completion on the calling goroutine.
// Fails the test on a terminal error.
func driveFuture[T any](t *testing.T, fut comp.Future[T]) T {
	t.Helper()
	v, err := comp.BlockOn(fut)
	if err != nil {
		t.Fatalf("BlockOn error: %v", err)
	}
	return v
}

// drain collects every item of s, failing the test on a terminal error.
func drain[T any](t *testing.T, s comp.Stream[T]) []T {
	t.Helper()
	return driveFuture(t, comp.Collect(s))
}

// counting wraps a stream, counting polls and yielded items.
// Used to verify short-circuiting reductions pull exactly as many
// items as their result requires.
type counting[T any] struct {
	src   comp.Stream[T]
	polls int
	items int
}

func (c *counting[T]) PollNext(cx *comp.Context) (T, error) {
	c.polls++
	v, err := c.src.PollNext(cx)
	if err == nil {
		c.items++
	}
	return v, err
}

// stutter injects an ErrWouldBlock before every result of the inner
// stream, exercising the pending path of whatever sits above it.
// Wakes the armed context immediately so parking executors resume.
type stutter[T any] struct {
	src   comp.Stream[T]
	ready bool
}

func (s *stutter[T]) PollNext(cx *comp.Context) (T, error) {
	if !s.ready {
		s.ready = true
		if cx != nil && cx.Waker() != nil {
			cx.Waker().Wake()
		}
		var zero T
		return zero, iox.ErrWouldBlock
	}
	s.ready = false
	return s.src.PollNext(cx)
}

// rude yields its items, reports io.EOF once, then misbehaves by
// resuming production forever. Only Fuse makes such a stream sane.
type rude[T any] struct {
	items []T
	extra T
	pos   int
	ended bool
}

func (r *rude[T]) PollNext(cx *comp.Context) (T, error) {
	if r.pos < len(r.items) {
		r.pos++
		return r.items[r.pos-1], nil
	}
	if !r.ended {
		r.ended = true
		var zero T
		return zero, io.EOF
	}
	return r.extra, nil
}

// slowFuture reports pending once before finishing with v.
type slowFuture[T any] struct {
	v     T
	ready bool
}

func (f *slowFuture[T]) Poll(cx *comp.Context) (T, error) {
	if !f.ready {
		f.ready = true
		if cx != nil && cx.Waker() != nil {
			cx.Waker().Wake()
		}
		var zero T
		return zero, iox.ErrWouldBlock
	}
	return f.v, nil
}

// rangeStream yields 0, 1, 2, …, n-1.
func rangeStream(n int) comp.Stream[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return comp.FromSlice(items)
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
