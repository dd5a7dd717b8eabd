// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Then transforms each item of s with an asynchronous mapping: f turns
// an item into a completion future whose result becomes the output item.
//
// At most one per-item future is in flight. While one is, PollNext
// polls it rather than the source, so a pending per-item operation is
// always driven to completion before the next item is pulled. Results
// arrive in item order; no interleaving occurs.
func Then[T, U any](s Stream[T], f func(T) Future[U]) Stream[U] {
	return &thenStream[T, U]{src: s, f: f}
}

type thenStream[T, U any] struct {
	src      Stream[T]
	f        func(T) Future[U]
	inflight Future[U]
}

func (t *thenStream[T, U]) PollNext(cx *Context) (U, error) {
	var zero U
	if t.inflight == nil {
		v, err := t.src.PollNext(cx)
		if err != nil {
			return zero, err
		}
		t.inflight = t.f(v)
	}
	u, err := t.inflight.Poll(cx)
	if err != nil {
		return zero, err
	}
	t.inflight = nil
	return u, nil
}
