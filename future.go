// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Ready creates a future that is already finished with v.
func Ready[T any](v T) Future[T] {
	return readyFuture[T]{v: v}
}

type readyFuture[T any] struct {
	v T
}

func (r readyFuture[T]) Poll(cx *Context) (T, error) {
	return r.v, nil
}

// MapFuture transforms the result of fut with f.
func MapFuture[T, U any](fut Future[T], f func(T) U) Future[U] {
	return &mapFuture[T, U]{fut: fut, f: f}
}

type mapFuture[T, U any] struct {
	fut Future[T]
	f   func(T) U
}

func (m *mapFuture[T, U]) Poll(cx *Context) (U, error) {
	v, err := m.fut.Poll(cx)
	if err != nil {
		var zero U
		return zero, err
	}
	return m.f(v), nil
}

// AndThen sequences two completion operations: when fut finishes, f
// turns its result into the next future, which is then driven to its
// own result. The first future is fully finished before f runs, so no
// inner operation is ever abandoned mid-flight.
func AndThen[T, U any](fut Future[T], f func(T) Future[U]) Future[U] {
	return &andThenFuture[T, U]{first: fut, f: f}
}

type andThenFuture[T, U any] struct {
	first  Future[T]
	f      func(T) Future[U]
	second Future[U]
}

func (a *andThenFuture[T, U]) Poll(cx *Context) (U, error) {
	var zero U
	if a.second == nil {
		v, err := a.first.Poll(cx)
		if err != nil {
			return zero, err
		}
		a.second = a.f(v)
	}
	return a.second.Poll(cx)
}
