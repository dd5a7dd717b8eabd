// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

import (
	"io"
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// defaultPipeCapacity is the bounded capacity used when NewPipe is given
// a non-positive capacity. 4 balances amortizing producer-side
// cached-index refresh cost while keeping ring buffers within a single
// cache line.
const defaultPipeCapacity = 4

// Pipe is a leaf completion stream fed by a single producer.
//
// Transport is a bounded lock-free SPSC queue from lfq: one goroutine
// calls TrySend/Close, one goroutine polls. PollNext returns
// ErrWouldBlock while the queue is empty and the pipe is open, arming
// the poll context's waker so a subsequent TrySend or Close wakes the
// consumer. After Close, remaining items drain and then PollNext
// returns io.EOF.
type Pipe[T any] struct {
	q      lfq.SPSC[T]
	closed atomix.Uint32
	waker  atomic.Pointer[pipeWaker]
	serial Serial
}

type pipeWaker struct {
	w Waker
}

// NewPipe creates a pipe with the given queue capacity.
// A non-positive capacity selects the package default.
func NewPipe[T any](capacity int) *Pipe[T] {
	if capacity <= 0 {
		capacity = defaultPipeCapacity
	}
	p := &Pipe[T]{serial: nextSerial()}
	p.q.Init(capacity)
	return p
}

// Serial returns the serial number assigned to this pipe.
func (p *Pipe[T]) Serial() Serial {
	return p.serial
}

// TrySend enqueues v for the consumer.
// Non-blocking: returns iox.ErrWouldBlock if the bounded queue is full,
// io.ErrClosedPipe if the pipe has been closed.
func (p *Pipe[T]) TrySend(v T) error {
	if p.closed.Load() != 0 {
		return io.ErrClosedPipe
	}
	if err := p.q.Enqueue(&v); err != nil {
		return err
	}
	p.wake()
	return nil
}

// Close marks the pipe as producing no further items. Items already
// enqueued still drain before the consumer observes io.EOF.
// Close is idempotent.
func (p *Pipe[T]) Close() {
	p.closed.Store(1)
	p.wake()
}

func (p *Pipe[T]) wake() {
	if pw := p.waker.Swap(nil); pw != nil && pw.w != nil {
		pw.w.Wake()
	}
}

// PollNext implements Stream.
func (p *Pipe[T]) PollNext(cx *Context) (T, error) {
	if v, err := p.q.Dequeue(); err == nil {
		return v, nil
	}
	if cx != nil && cx.Waker() != nil {
		p.waker.Store(&pipeWaker{w: cx.Waker()})
	}
	// Load closed before the drain dequeue: the producer's enqueues
	// happen before its Close store, so a failed dequeue after
	// observing closed proves the queue is fully drained. Loading in
	// the other order could report io.EOF with an item still queued.
	closed := p.closed.Load() != 0
	// Re-check after arming so a send or close that raced the empty
	// dequeue is not missed.
	if v, err := p.q.Dequeue(); err == nil {
		return v, nil
	}
	var zero T
	if closed {
		return zero, io.EOF
	}
	return zero, iox.ErrWouldBlock
}
