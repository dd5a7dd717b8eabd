// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp_test

import (
	"io"
	"math"
	"testing"

	"code.hybscloud.com/comp"
	"code.hybscloud.com/kont"
)

func TestThen(t *testing.T) {
	// Each per-item future suspends once before resolving; results must
	// still arrive in item order.
	s := comp.Then(rangeStream(5), func(x int) comp.Future[int] {
		return &slowFuture[int]{v: x * 2}
	})
	got := drain(t, s)
	if !equalSlices(got, []int{0, 2, 4, 6, 8}) {
		t.Fatalf("got %v", got)
	}
}

func TestThenDrivesInflightBeforeNextItem(t *testing.T) {
	// While a per-item future is pending, the source must not be pulled.
	src := &counting[int]{src: rangeStream(3)}
	s := comp.Then[int](src, func(x int) comp.Future[int] {
		return &slowFuture[int]{v: x}
	})
	cx := comp.NewContext(comp.NopWaker())
	if _, err := s.PollNext(cx); err == nil {
		t.Fatal("expected pending first poll")
	}
	if src.items != 1 {
		t.Fatalf("source pulled %d items during in-flight future, want 1", src.items)
	}
	v, err := s.PollNext(cx)
	if err != nil || v != 0 {
		t.Fatalf("got (%v, %v), want (0, nil)", v, err)
	}
}

func TestChain(t *testing.T) {
	s := comp.Chain(comp.FromSlice([]int{4, 5}), comp.FromSlice([]int{6, 7, 8, 9}))
	got := drain(t, s)
	if !equalSlices(got, []int{4, 5, 6, 7, 8, 9}) {
		t.Fatalf("got %v", got)
	}
}

func TestChainNoInterleavingAcrossSuspensions(t *testing.T) {
	// Both halves suspend between items; order must stay strictly
	// first-then-second.
	s := comp.Chain[int](
		&stutter[int]{src: comp.FromSlice([]int{1, 2})},
		&stutter[int]{src: comp.FromSlice([]int{3, 4})},
	)
	got := drain(t, s)
	if !equalSlices(got, []int{1, 2, 3, 4}) {
		t.Fatalf("got %v", got)
	}
}

func TestChainSizeHintUnboundedFirst(t *testing.T) {
	// An unbounded half reports lower = math.MaxInt; the chained hint
	// must saturate instead of overflowing negative.
	s := comp.Chain(comp.Repeat(1), comp.FromSlice([]int{1, 2}))
	lower, upper := comp.SizeHint(s)
	if lower != math.MaxInt || upper != -1 {
		t.Fatalf("hint (%d, %d), want (%d, -1)", lower, upper, math.MaxInt)
	}
}

func TestStepBy(t *testing.T) {
	got := drain(t, comp.StepBy(rangeStream(6), 2))
	if !equalSlices(got, []int{0, 2, 4}) {
		t.Fatalf("got %v", got)
	}
	got = drain(t, comp.StepBy(rangeStream(7), 3))
	if !equalSlices(got, []int{0, 3, 6}) {
		t.Fatalf("got %v", got)
	}
}

func TestStepByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for zero step")
		}
	}()
	comp.StepBy(rangeStream(3), 0)
}

func TestTakeSkip(t *testing.T) {
	if n := driveFuture(t, comp.Count(comp.Take(rangeStream(10), 3))); n != 3 {
		t.Fatalf("take count got %d, want 3", n)
	}
	if n := driveFuture(t, comp.Count(comp.Take(rangeStream(2), 5))); n != 2 {
		t.Fatalf("short take count got %d, want 2", n)
	}
	got := drain(t, comp.Skip(rangeStream(10), 5))
	if !equalSlices(got, []int{5, 6, 7, 8, 9}) {
		t.Fatalf("skip got %v", got)
	}
	if n := driveFuture(t, comp.Count(comp.Skip(rangeStream(3), 7))); n != 0 {
		t.Fatalf("over-skip count got %d, want 0", n)
	}
}

func TestTakeBoundsInfiniteStream(t *testing.T) {
	got := drain(t, comp.Take(comp.Repeat(19), 5))
	if !equalSlices(got, []int{19, 19, 19, 19, 19}) {
		t.Fatalf("got %v", got)
	}
}

func TestTakeWhile(t *testing.T) {
	src := &counting[int]{src: comp.FromSlice([]int{1, 2, 3, 10, 4, 5})}
	s := comp.TakeWhile[int](src, func(x int) bool { return x < 10 })
	got := drain(t, s)
	if !equalSlices(got, []int{1, 2, 3}) {
		t.Fatalf("got %v", got)
	}
	// The rejecting item is consumed and discarded; nothing after it is.
	if src.items != 4 {
		t.Fatalf("consumed %d items, want 4", src.items)
	}
}

func TestSkipWhile(t *testing.T) {
	s := comp.SkipWhile(comp.FromSlice([]int{1, 2, 9, 1, 2}), func(x int) bool { return x < 5 })
	got := drain(t, s)
	// Once skipping stops it never resumes, even though 1 and 2 match.
	if !equalSlices(got, []int{9, 1, 2}) {
		t.Fatalf("got %v", got)
	}
}

func TestSkipWhileCollectString(t *testing.T) {
	s := comp.FromSeq(func(yield func(rune) bool) {
		for _, c := range "   Hi" {
			if !yield(c) {
				return
			}
		}
	})
	text := driveFuture(t, comp.CollectString(comp.SkipWhile(s, func(c rune) bool { return c == ' ' })))
	if text != "Hi" {
		t.Fatalf("got %q, want %q", text, "Hi")
	}
}

func TestFuseIdempotentEnd(t *testing.T) {
	r := &rude[int]{items: []int{5}, extra: 42}
	s := comp.Fuse[int](r)
	cx := comp.NewContext(comp.NopWaker())
	if v, err := s.PollNext(cx); err != nil || v != 5 {
		t.Fatalf("got (%v, %v)", v, err)
	}
	for i := 0; i < 4; i++ {
		if _, err := s.PollNext(cx); err != io.EOF {
			t.Fatalf("poll %d after end: err %v, want io.EOF", i, err)
		}
	}
	// The raw stream would have resumed producing items.
	if v, err := r.PollNext(cx); err != nil || v != 42 {
		t.Fatalf("rude stream should misbehave, got (%v, %v)", v, err)
	}
}

func TestUnfold(t *testing.T) {
	// Squares of 0..4 via an asynchronous step that suspends each time.
	s := comp.Unfold(0, func(n int) comp.Future[comp.Option[kont.Pair[int, int]]] {
		if n == 5 {
			return comp.Ready(comp.None[kont.Pair[int, int]]())
		}
		return &slowFuture[comp.Option[kont.Pair[int, int]]]{
			v: comp.Some(kont.Pair[int, int]{Fst: n + 1, Snd: n * n}),
		}
	})
	got := drain(t, s)
	if !equalSlices(got, []int{0, 1, 4, 9, 16}) {
		t.Fatalf("got %v", got)
	}
}
