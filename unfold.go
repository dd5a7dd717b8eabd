// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import (
	"io"

	"code.hybscloud.com/kont"
)

// Unfold creates a completion stream from a seed state and an
// asynchronous step. Each item is produced by awaiting step(state):
// Some(pair) yields pair.Snd and continues from pair.Fst, None ends
// the stream. At most one step future is in flight, and a pending step
// is always driven to completion before the stream can end.
func Unfold[S, T any](seed S, step func(S) Future[Option[kont.Pair[S, T]]]) Stream[T] {
	return &unfoldStream[S, T]{state: seed, step: step}
}

type unfoldStream[S, T any] struct {
	state    S
	step     func(S) Future[Option[kont.Pair[S, T]]]
	inflight Future[Option[kont.Pair[S, T]]]
	done     bool
}

func (u *unfoldStream[S, T]) PollNext(cx *Context) (T, error) {
	var zero T
	if u.done {
		return zero, io.EOF
	}
	if u.inflight == nil {
		u.inflight = u.step(u.state)
	}
	o, err := u.inflight.Poll(cx)
	if err != nil {
		return zero, err
	}
	u.inflight = nil
	p, ok := o.Get()
	if !ok {
		u.done = true
		return zero, io.EOF
	}
	u.state = p.Fst
	return p.Snd, nil
}
