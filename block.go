// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import (
	"io"
	"iter"

	"code.hybscloud.com/iox"
)

// Executor supplies the synchronous-wait primitive that drives a
// completion operation to its finished result on the calling goroutine.
type Executor interface {
	// Block repeatedly invokes poll until it reports done, waiting
	// between attempts. poll receives a context whose waker is owned
	// by the executor.
	Block(poll func(cx *Context) (done bool))
}

// BackoffExecutor waits with adaptive backoff (iox.Backoff), retrying
// on its own schedule instead of waiting for wake-up delivery. Works
// with any source, without spawning goroutines or creating channels.
type BackoffExecutor struct{}

// Block implements Executor.
func (BackoffExecutor) Block(poll func(*Context) bool) {
	cx := NewContext(NopWaker())
	var bo iox.Backoff
	for !poll(cx) {
		bo.Wait()
	}
}

// ParkExecutor parks the calling goroutine until the armed waker fires.
// Requires the polled operation to deliver wake-ups through the context
// (as [Pipe] does); an operation that returns pending without arming
// the waker never resumes under this executor.
type ParkExecutor struct{}

// Block implements Executor.
func (ParkExecutor) Block(poll func(*Context) bool) {
	ready := make(chan struct{}, 1)
	cx := NewContext(WakerFunc(func() {
		select {
		case ready <- struct{}{}:
		default:
		}
	}))
	for !poll(cx) {
		<-ready
	}
}

// BlockOn drives fut to its finished result on the calling goroutine
// using the adaptive-backoff executor. Returns the result, or the
// terminal error if the underlying primitive failed.
func BlockOn[T any](fut Future[T]) (T, error) {
	return BlockOnExec[T](BackoffExecutor{}, fut)
}

// BlockOnExec drives fut to its finished result using ex as the
// synchronous-wait primitive.
func BlockOnExec[T any](ex Executor, fut Future[T]) (T, error) {
	var (
		result T
		rerr   error
	)
	ex.Block(func(cx *Context) bool {
		v, err := fut.Poll(cx)
		if err == iox.ErrWouldBlock {
			return false
		}
		result, rerr = v, err
		return true
	})
	return result, rerr
}

// Iter converts a completion stream into a blocking iterator: each Next
// drives the stream's next item production to completion using the
// executor's synchronous-wait primitive.
type Iter[T any] struct {
	src Stream[T]
	ex  Executor
	err error
}

// NewIter creates a blocking iterator over s using the
// adaptive-backoff executor.
func NewIter[T any](s Stream[T]) *Iter[T] {
	return NewIterExec(BackoffExecutor{}, s)
}

// NewIterExec creates a blocking iterator over s using ex as the
// synchronous-wait primitive.
func NewIterExec[T any](ex Executor, s Stream[T]) *Iter[T] {
	return &Iter[T]{src: s, ex: ex}
}

// Next blocks until the stream produces its next item.
// Returns (zero, false) once the stream ends or fails; consult Err
// afterward to distinguish the two.
func (it *Iter[T]) Next() (T, bool) {
	var (
		result T
		ok     bool
	)
	if it.err != nil {
		return result, false
	}
	it.ex.Block(func(cx *Context) bool {
		v, err := it.src.PollNext(cx)
		if err == iox.ErrWouldBlock {
			return false
		}
		if err != nil {
			if err != io.EOF {
				it.err = err
			}
			return true
		}
		result, ok = v, true
		return true
	})
	return result, ok
}

// Err returns the terminal error that stopped iteration, if any.
// io.EOF is normal exhaustion and is not reported here.
func (it *Iter[T]) Err() error {
	return it.err
}

// Seq adapts the iterator to an ordinary Go sequence.
func (it *Iter[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// SizeHint forwards the stream's size estimate unmodified.
func (it *Iter[T]) SizeHint() (lower, upper int) {
	return SizeHint(it.src)
}
