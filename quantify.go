// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import "io"

// All creates a future resolving to whether pred holds for every item
// of s. Short-circuits: resolves false on the first failing item
// without pulling further items. An empty stream resolves true.
func All[T any](s Stream[T], pred func(T) bool) Future[bool] {
	return &quantifyFuture[T]{src: s, pred: pred, short: false}
}

// Any creates a future resolving to whether pred holds for some item
// of s. Short-circuits: resolves true on the first matching item
// without pulling further items. An empty stream resolves false.
func Any[T any](s Stream[T], pred func(T) bool) Future[bool] {
	return &quantifyFuture[T]{src: s, pred: pred, short: true}
}

// quantifyFuture resolves short on the first item with pred == short,
// and !short at end of stream. short=false is All, short=true is Any.
type quantifyFuture[T any] struct {
	src   Stream[T]
	pred  func(T) bool
	short bool
}

func (q *quantifyFuture[T]) Poll(cx *Context) (bool, error) {
	for {
		v, err := q.src.PollNext(cx)
		if err == io.EOF {
			return !q.short, nil
		}
		if err != nil {
			return false, err
		}
		if q.pred(v) == q.short {
			return q.short, nil
		}
	}
}
