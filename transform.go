// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Stateless per-item transforms. Each adapter owns its source stream
// exclusively from construction and delegates PollNext to it, so the
// completion obligation of a mid-flight item passes through unchanged.

// Map transforms each item of s with f.
func Map[T, U any](s Stream[T], f func(T) U) Stream[U] {
	return &mapStream[T, U]{src: s, f: f}
}

type mapStream[T, U any] struct {
	src Stream[T]
	f   func(T) U
}

func (m *mapStream[T, U]) PollNext(cx *Context) (U, error) {
	v, err := m.src.PollNext(cx)
	if err != nil {
		var zero U
		return zero, err
	}
	return m.f(v), nil
}

func (m *mapStream[T, U]) SizeHint() (lower, upper int) {
	return SizeHint(m.src)
}

// Filter keeps the items of s for which pred returns true.
//
// Rejected items are consumed inside a single PollNext call: the source
// is re-polled until an accepted item, ErrWouldBlock, or io.EOF. The
// internal loop is unbounded; suspension points still propagate
// immediately, so no busy-waiting crosses a pending result.
func Filter[T any](s Stream[T], pred func(T) bool) Stream[T] {
	return &filterStream[T]{src: s, pred: pred}
}

type filterStream[T any] struct {
	src  Stream[T]
	pred func(T) bool
}

func (f *filterStream[T]) PollNext(cx *Context) (T, error) {
	for {
		v, err := f.src.PollNext(cx)
		if err != nil {
			var zero T
			return zero, err
		}
		if f.pred(v) {
			return v, nil
		}
	}
}

// FilterMap transforms items of s with f, keeping only present results.
// Re-polls the source on absent results, like [Filter].
func FilterMap[T, U any](s Stream[T], f func(T) Option[U]) Stream[U] {
	return &filterMapStream[T, U]{src: s, f: f}
}

type filterMapStream[T, U any] struct {
	src Stream[T]
	f   func(T) Option[U]
}

func (f *filterMapStream[T, U]) PollNext(cx *Context) (U, error) {
	for {
		v, err := f.src.PollNext(cx)
		if err != nil {
			var zero U
			return zero, err
		}
		if u, ok := f.f(v).Get(); ok {
			return u, nil
		}
	}
}

// Copied turns a stream of pointers into a stream of owned values by
// dereferencing each item.
func Copied[T any](s Stream[*T]) Stream[T] {
	return &copiedStream[T]{src: s}
}

type copiedStream[T any] struct {
	src Stream[*T]
}

func (c *copiedStream[T]) PollNext(cx *Context) (T, error) {
	p, err := c.src.PollNext(cx)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

func (c *copiedStream[T]) SizeHint() (lower, upper int) {
	return SizeHint(c.src)
}

// Cloner is implemented by types that can produce an owned duplicate
// of themselves.
type Cloner[T any] interface {
	Clone() T
}

// Cloned turns a stream of pointers into a stream of owned values by
// cloning each item.
func Cloned[T any, P interface {
	Cloner[T]
	*T
}](s Stream[P]) Stream[T] {
	return &clonedStream[T, P]{src: s}
}

type clonedStream[T any, P interface {
	Cloner[T]
	*T
}] struct {
	src Stream[P]
}

func (c *clonedStream[T, P]) PollNext(cx *Context) (T, error) {
	p, err := c.src.PollNext(cx)
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Clone(), nil
}

func (c *clonedStream[T, P]) SizeHint() (lower, upper int) {
	return SizeHint(c.src)
}
