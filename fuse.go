// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import "io"

// Fuse guarantees idempotent exhaustion: after the source first reports
// io.EOF, every later PollNext reports io.EOF without touching the
// source again. This protects against misbehaving streams that would
// otherwise resume producing items, or panic, once ended.
func Fuse[T any](s Stream[T]) Stream[T] {
	return &fuseStream[T]{src: s}
}

type fuseStream[T any] struct {
	src   Stream[T]
	ended bool
}

func (f *fuseStream[T]) PollNext(cx *Context) (T, error) {
	var zero T
	if f.ended {
		return zero, io.EOF
	}
	v, err := f.src.PollNext(cx)
	if err == io.EOF {
		f.ended = true
		return zero, io.EOF
	}
	return v, err
}

func (f *fuseStream[T]) SizeHint() (lower, upper int) {
	if f.ended {
		return 0, 0
	}
	return SizeHint(f.src)
}
