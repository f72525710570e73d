// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Annotated represents a value with an optional side log: Plain (value
// only) or Logged (value plus log). There is no failure variant; under
// evaluation logs accumulate and the computation never halts early.
type Annotated[A, W any] struct {
	value  A
	logged bool
	log    W
}

// Plain creates a value without a log.
func Plain[A, W any](a A) Annotated[A, W] {
	return Annotated[A, W]{value: a}
}

// Logged creates a value carrying a side log.
func Logged[A, W any](a A, w W) Annotated[A, W] {
	return Annotated[A, W]{value: a, logged: true, log: w}
}

// IsPlain returns true if no log is attached.
func (x Annotated[A, W]) IsPlain() bool {
	return !x.logged
}

// IsLogged returns true if a log is attached.
func (x Annotated[A, W]) IsLogged() bool {
	return x.logged
}

// Value returns the primary value. Every variant carries one.
func (x Annotated[A, W]) Value() A {
	return x.value
}

// GetLog returns the log and true, or zero and false.
func (x Annotated[A, W]) GetLog() (W, bool) {
	if x.logged {
		return x.log, true
	}
	var zero W
	return zero, false
}

// MatchAnnotated pattern matches, calling onPlain or onLogged.
func MatchAnnotated[A, W, T any](x Annotated[A, W], onPlain func(A) T, onLogged func(A, W) T) T {
	if x.logged {
		return onLogged(x.value, x.log)
	}
	return onPlain(x.value)
}

// MapAnnotated applies a function to the value, keeping the log.
func MapAnnotated[A, B, W any](x Annotated[A, W], f func(A) B) Annotated[B, W] {
	if x.logged {
		return Logged(f(x.value), x.log)
	}
	return Plain[B, W](f(x.value))
}

// MapLogAnnotated applies a function to the log, if one is attached.
func MapLogAnnotated[A, W, V any](x Annotated[A, W], f func(W) V) Annotated[A, V] {
	if x.logged {
		return Logged(x.value, f(x.log))
	}
	return Plain[A, V](x.value)
}

// FlatMapAnnotated sequences two Annotated computations, combining logs.
func FlatMapAnnotated[W Semigroup[W], A, B any](x Annotated[A, W], f func(A) Annotated[B, W]) Annotated[B, W] {
	next := f(x.value)
	if !x.logged {
		return next
	}
	if next.logged {
		return Logged(next.value, x.log.Combine(next.log))
	}
	return Logged(next.value, x.log)
}

// ZipWithAnnotated combines two values with f, combining logs.
func ZipWithAnnotated[W Semigroup[W], A, B, C any](x Annotated[A, W], y Annotated[B, W], f func(A, B) C) Annotated[C, W] {
	v := f(x.value, y.value)
	switch {
	case x.logged && y.logged:
		return Logged(v, x.log.Combine(y.log))
	case x.logged:
		return Logged(v, x.log)
	case y.logged:
		return Logged(v, y.log)
	default:
		return Plain[C, W](v)
	}
}

// EqualAnnotated reports strict equality: equal tags and equal payloads.
func EqualAnnotated[A Eq[A], W Eq[W]](x, y Annotated[A, W]) bool {
	if x.logged != y.logged {
		return false
	}
	if !x.value.Equal(y.value) {
		return false
	}
	if x.logged {
		return x.log.Equal(y.log)
	}
	return true
}

// CompareAnnotated orders Plain before Logged; values decide first between
// equal tags, then logs.
func CompareAnnotated[A Ord[A], W Ord[W]](x, y Annotated[A, W]) int {
	switch {
	case x.logged != y.logged:
		if y.logged {
			return -1
		}
		return 1
	}
	if c := x.value.Compare(y.value); c != 0 {
		return c
	}
	if x.logged {
		return x.log.Compare(y.log)
	}
	return 0
}

// CombineAnnotated combines values and logs side by side.
func CombineAnnotated[A Semigroup[A], W Semigroup[W]](x, y Annotated[A, W]) Annotated[A, W] {
	return ZipWithAnnotated(x, y, func(a, b A) A { return a.Combine(b) })
}
