// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package comp

// Option represents a value that is either present (Some) or absent (None).
type Option[T any] struct {
	isSome bool
	value  T
}

// Some creates a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{isSome: true, value: v}
}

// None creates an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the value is present.
func (o Option[T]) IsSome() bool {
	return o.isSome
}

// IsNone returns true if the value is absent.
func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Get returns the value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	if o.isSome {
		return o.value, true
	}
	var zero T
	return zero, false
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.isSome {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.isSome {
		return Some(f(o.value))
	}
	return None[U]()
}
