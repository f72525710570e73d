// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Either represents a disjunction: Left (failure) or Right (success).
// The evaluator and traversal combinators treat Left as terminating:
// the first Left wins, with no combination.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (failure) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// GetOrElse returns the Right value, or fallback for a Left.
func (e Either[E, A]) GetOrElse(fallback A) A {
	if e.isRight {
		return e.right
	}
	return fallback
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// ZipEither pairs two Right values; the first Left wins.
func ZipEither[E, A, B any](x Either[E, A], y Either[E, B]) Either[E, Pair[A, B]] {
	return ZipWithEither(x, y, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{Fst: a, Snd: b}
	})
}

// ZipWithEither combines two Right values with f; the first Left wins.
func ZipWithEither[E, A, B, C any](x Either[E, A], y Either[E, B], f func(A, B) C) Either[E, C] {
	if !x.isRight {
		return Left[E, C](x.left)
	}
	if !y.isRight {
		return Left[E, C](y.left)
	}
	return Right[E](f(x.right, y.right))
}

// RecoverEither handles a Left value, keeping Right values unchanged.
func RecoverEither[E, A any](e Either[E, A], handler func(E) Either[E, A]) Either[E, A] {
	if e.isRight {
		return e
	}
	return handler(e.left)
}

// EitherFromValidation converts: Invalid becomes Left, Valid becomes Right.
func EitherFromValidation[E, A any](v Validation[E, A]) Either[E, A] {
	if v.isValid {
		return Right[E](v.value)
	}
	return Left[E, A](v.errs)
}

// EqualEither reports strict equality: equal tags and equal payloads.
func EqualEither[E Eq[E], A Eq[A]](x, y Either[E, A]) bool {
	if x.isRight != y.isRight {
		return false
	}
	if x.isRight {
		return x.right.Equal(y.right)
	}
	return x.left.Equal(y.left)
}

// CompareEither orders Left before Right; payloads decide between equal tags.
func CompareEither[E Ord[E], A Ord[A]](x, y Either[E, A]) int {
	switch {
	case x.isRight == y.isRight:
		if x.isRight {
			return x.right.Compare(y.right)
		}
		return x.left.Compare(y.left)
	case x.isRight:
		return 1
	default:
		return -1
	}
}

// CombineEither combines two Right values; the first Left wins unchanged.
func CombineEither[E any, A Semigroup[A]](x, y Either[E, A]) Either[E, A] {
	if !x.isRight {
		return x
	}
	if !y.isRight {
		return y
	}
	return Right[E](x.right.Combine(y.right))
}
