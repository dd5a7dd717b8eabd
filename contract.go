// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Future is a single-value completion operation.
//
// Poll returns (value, nil) when the operation has finished, or
// (zero, iox.ErrWouldBlock) when it cannot make progress now. Any other
// error is a terminal failure of the underlying primitive and is
// propagated by adapters unchanged.
//
// Contract: before Poll returns ErrWouldBlock the caller must have
// arranged, through cx, to be woken when progress is possible; there are
// no implicit retries. After ErrWouldBlock the caller must keep polling
// until a non-pending result is returned before discarding the future.
// A Future must not be copied once polling has begun: its storage
// location is fixed for the remainder of its lifetime.
type Future[T any] interface {
	Poll(cx *Context) (T, error)
}

// Stream is a sequence completion operation.
//
// PollNext returns (item, nil) for the next item, (zero, iox.ErrWouldBlock)
// when the current item production cannot make progress now, and
// (zero, io.EOF) when no more items will be produced. Any other error is
// propagated by adapters unchanged.
//
// The Future contract applies to whichever item production is currently
// mid-flight: after ErrWouldBlock the caller must keep polling until a
// non-pending result before discarding the stream, and the stream must
// not be copied once polling has begun.
type Stream[T any] interface {
	PollNext(cx *Context) (T, error)
}

// Waker delivers a wake-up to the driver of a pending operation.
// Wake must be safe to call from any goroutine.
type Waker interface {
	Wake()
}

// WakerFunc adapts a function to the Waker interface.
type WakerFunc func()

// Wake implements Waker.
func (f WakerFunc) Wake() { f() }

// NopWaker returns a Waker that does nothing. Suitable for executors
// that retry on their own schedule instead of waiting for wake-ups.
func NopWaker() Waker { return nopWaker{} }

type nopWaker struct{}

func (nopWaker) Wake() {}

// Context carries the waker a pending operation should arm before
// returning ErrWouldBlock. Adapters pass it through untouched.
type Context struct {
	waker Waker
}

// NewContext creates a poll context delivering wake-ups to w.
func NewContext(w Waker) *Context {
	return &Context{waker: w}
}

// Waker returns the context's waker.
func (c *Context) Waker() Waker { return c.waker }

// SizeHinter is an optional interface reporting bounds on the number of
// remaining items: lower is a minimum, upper is a maximum or negative
// when unbounded or unknown.
type SizeHinter interface {
	SizeHint() (lower, upper int)
}

// SizeHint reports the bounds of s if it implements SizeHinter,
// otherwise (0, -1).
func SizeHint(s any) (lower, upper int) {
	if h, ok := s.(SizeHinter); ok {
		return h.SizeHint()
	}
	return 0, -1
}
