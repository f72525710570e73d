// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Option represents an optional value: Some (present) or None (absent).
//
// The zero value of Option[A] is None. None[A]() returns that zero value
// without allocating, so absent values are a single shared representation
// per payload type.
type Option[A any] struct {
	present bool
	value   A
}

// None creates the absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// Some creates a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if no value is present.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value, or fallback when absent.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the present value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two Option computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}

// FilterOption keeps the value only when pred holds.
func FilterOption[A any](o Option[A], pred func(A) bool) Option[A] {
	if o.present && pred(o.value) {
		return o
	}
	return None[A]()
}

// ZipOption pairs two present values; absent on either side wins.
func ZipOption[A, B any](x Option[A], y Option[B]) Option[Pair[A, B]] {
	return ZipWithOption(x, y, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{Fst: a, Snd: b}
	})
}

// ZipWithOption combines two present values with f; absent on either side wins.
func ZipWithOption[A, B, C any](x Option[A], y Option[B], f func(A, B) C) Option[C] {
	if x.present && y.present {
		return Some(f(x.value, y.value))
	}
	return None[C]()
}

// OrElseOption returns o when present, otherwise the alternative.
// The alternative is computed lazily.
func OrElseOption[A any](o Option[A], alt func() Option[A]) Option[A] {
	if o.present {
		return o
	}
	return alt()
}

// EqualOption reports strict equality: equal tags and equal payloads.
func EqualOption[A Eq[A]](x, y Option[A]) bool {
	if x.present != y.present {
		return false
	}
	if !x.present {
		return true
	}
	return x.value.Equal(y.value)
}

// CompareOption orders None before Some; payloads decide between two Somes.
func CompareOption[A Ord[A]](x, y Option[A]) int {
	switch {
	case x.present == y.present:
		if !x.present {
			return 0
		}
		return x.value.Compare(y.value)
	case x.present:
		return 1
	default:
		return -1
	}
}

// CombineOption combines two present values; an absent side absorbs to None.
func CombineOption[A Semigroup[A]](x, y Option[A]) Option[A] {
	if x.present && y.present {
		return Some(x.value.Combine(y.value))
	}
	return None[A]()
}
