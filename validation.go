// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Validation represents accumulating validation: Invalid (errors) or
// Valid (value).
//
// The shape is the same as Either, but the value-level combination
// operators (CombineValidation, ZipWithValidation) merge Invalid errors
// via their Semigroup instead of keeping only the first. Comprehension
// evaluation (RunValidation) is still fail-fast: the generator sees
// values one at a time and halts on the first Invalid; accumulation
// happens only through the direct combination operators.
type Validation[E, A any] struct {
	isValid bool
	errs    E
	value   A
}

// Invalid creates an Invalid value carrying accumulated errors.
func Invalid[E, A any](errs E) Validation[E, A] {
	return Validation[E, A]{isValid: false, errs: errs}
}

// Valid creates a Valid value.
func Valid[E, A any](a A) Validation[E, A] {
	return Validation[E, A]{isValid: true, value: a}
}

// IsValid returns true if this is a Valid value.
func (v Validation[E, A]) IsValid() bool {
	return v.isValid
}

// IsInvalid returns true if this is an Invalid value.
func (v Validation[E, A]) IsInvalid() bool {
	return !v.isValid
}

// GetValid returns the Valid value and true, or zero and false.
func (v Validation[E, A]) GetValid() (A, bool) {
	if v.isValid {
		return v.value, true
	}
	var zero A
	return zero, false
}

// GetInvalid returns the accumulated errors and true, or zero and false.
func (v Validation[E, A]) GetInvalid() (E, bool) {
	if !v.isValid {
		return v.errs, true
	}
	var zero E
	return zero, false
}

// GetOrElse returns the Valid value, or fallback for an Invalid.
func (v Validation[E, A]) GetOrElse(fallback A) A {
	if v.isValid {
		return v.value
	}
	return fallback
}

// MatchValidation pattern matches, calling onInvalid or onValid.
func MatchValidation[E, A, T any](v Validation[E, A], onInvalid func(E) T, onValid func(A) T) T {
	if v.isValid {
		return onValid(v.value)
	}
	return onInvalid(v.errs)
}

// MapValidation applies a function to the Valid value.
func MapValidation[E, A, B any](v Validation[E, A], f func(A) B) Validation[E, B] {
	if v.isValid {
		return Valid[E](f(v.value))
	}
	return Invalid[E, B](v.errs)
}

// FlatMapValidation sequences two Validation computations, fail-fast.
func FlatMapValidation[E, A, B any](v Validation[E, A], f func(A) Validation[E, B]) Validation[E, B] {
	if v.isValid {
		return f(v.value)
	}
	return Invalid[E, B](v.errs)
}

// MapInvalid applies a function to the accumulated errors.
func MapInvalid[E, F, A any](v Validation[E, A], f func(E) F) Validation[F, A] {
	if v.isValid {
		return Valid[F](v.value)
	}
	return Invalid[F, A](f(v.errs))
}

// ZipValidation pairs two Valid values, accumulating errors otherwise.
func ZipValidation[E Semigroup[E], A, B any](x Validation[E, A], y Validation[E, B]) Validation[E, Pair[A, B]] {
	return ZipWithValidation(x, y, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{Fst: a, Snd: b}
	})
}

// ZipWithValidation combines two Valid values with f. When both sides are
// Invalid their errors are combined; a single Invalid side is kept as-is.
// This is the accumulating combination point of the family.
func ZipWithValidation[E Semigroup[E], A, B, C any](x Validation[E, A], y Validation[E, B], f func(A, B) C) Validation[E, C] {
	switch {
	case x.isValid && y.isValid:
		return Valid[E](f(x.value, y.value))
	case !x.isValid && !y.isValid:
		return Invalid[E, C](x.errs.Combine(y.errs))
	case !x.isValid:
		return Invalid[E, C](x.errs)
	default:
		return Invalid[E, C](y.errs)
	}
}

// RecoverValidation handles an Invalid value, keeping Valid unchanged.
func RecoverValidation[E, A any](v Validation[E, A], handler func(E) Validation[E, A]) Validation[E, A] {
	if v.isValid {
		return v
	}
	return handler(v.errs)
}

// ValidationFromEither converts: Left becomes Invalid, Right becomes Valid.
func ValidationFromEither[E, A any](e Either[E, A]) Validation[E, A] {
	if e.isRight {
		return Valid[E](e.right)
	}
	return Invalid[E, A](e.left)
}

// EqualValidation reports strict equality: equal tags and equal payloads.
func EqualValidation[E Eq[E], A Eq[A]](x, y Validation[E, A]) bool {
	if x.isValid != y.isValid {
		return false
	}
	if x.isValid {
		return x.value.Equal(y.value)
	}
	return x.errs.Equal(y.errs)
}

// CompareValidation orders Invalid before Valid; payloads decide between
// equal tags.
func CompareValidation[E Ord[E], A Ord[A]](x, y Validation[E, A]) int {
	switch {
	case x.isValid == y.isValid:
		if x.isValid {
			return x.value.Compare(y.value)
		}
		return x.errs.Compare(y.errs)
	case x.isValid:
		return 1
	default:
		return -1
	}
}

// CombineValidation combines two values, accumulating errors: two Invalid
// sides merge their errors, two Valid sides combine their values, and a
// single Invalid side wins.
func CombineValidation[E Semigroup[E], A Semigroup[A]](x, y Validation[E, A]) Validation[E, A] {
	switch {
	case !x.isValid && !y.isValid:
		return Invalid[E, A](x.errs.Combine(y.errs))
	case !x.isValid:
		return x
	case !y.isValid:
		return y
	default:
		return Valid[E](x.value.Combine(y.value))
	}
}
