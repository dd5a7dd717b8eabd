// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// StepBy yields the items of s at positions 0, step, 2×step, …,
// preserving their relative order. Skipped items are consumed inside
// PollNext, re-polling the source like [Filter] does.
//
// A zero step would loop forever; it panics immediately instead.
func StepBy[T any](s Stream[T], step int) Stream[T] {
	if step <= 0 {
		panic("comp: non-positive step")
	}
	return &stepByStream[T]{src: s, step: step}
}

type stepByStream[T any] struct {
	src     Stream[T]
	step    int
	pending int // items to discard before the next yield
}

func (st *stepByStream[T]) PollNext(cx *Context) (T, error) {
	for {
		v, err := st.src.PollNext(cx)
		if err != nil {
			var zero T
			return zero, err
		}
		if st.pending == 0 {
			st.pending = st.step - 1
			return v, nil
		}
		st.pending--
	}
}
