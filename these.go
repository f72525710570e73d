// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// These represents an inclusive disjunction: OnlyLeft, OnlyRight, or Both.
// Both always carries exactly one left and one right payload.
//
// Under evaluation the left side is the accumulating channel: Both
// contributes its left payload and continues with the right one, while
// OnlyLeft terminates with everything accumulated so far.
type These[E, A any] struct {
	hasLeft  bool
	hasRight bool
	left     E
	right    A
}

// OnlyLeft creates a value carrying only a left payload.
func OnlyLeft[E, A any](e E) These[E, A] {
	return These[E, A]{hasLeft: true, left: e}
}

// OnlyRight creates a value carrying only a right payload.
func OnlyRight[E, A any](a A) These[E, A] {
	return These[E, A]{hasRight: true, right: a}
}

// Both creates a value carrying one left and one right payload.
func Both[E, A any](e E, a A) These[E, A] {
	return These[E, A]{hasLeft: true, hasRight: true, left: e, right: a}
}

// IsOnlyLeft returns true if only a left payload is present.
func (t These[E, A]) IsOnlyLeft() bool {
	return t.hasLeft && !t.hasRight
}

// IsOnlyRight returns true if only a right payload is present.
func (t These[E, A]) IsOnlyRight() bool {
	return t.hasRight && !t.hasLeft
}

// IsBoth returns true if both payloads are present.
func (t These[E, A]) IsBoth() bool {
	return t.hasLeft && t.hasRight
}

// HasLeft returns true if a left payload is present (OnlyLeft or Both).
func (t These[E, A]) HasLeft() bool {
	return t.hasLeft
}

// HasRight returns true if a right payload is present (OnlyRight or Both).
func (t These[E, A]) HasRight() bool {
	return t.hasRight
}

// GetLeft returns the left payload and true, or zero and false.
func (t These[E, A]) GetLeft() (E, bool) {
	if t.hasLeft {
		return t.left, true
	}
	var zero E
	return zero, false
}

// GetRight returns the right payload and true, or zero and false.
func (t These[E, A]) GetRight() (A, bool) {
	if t.hasRight {
		return t.right, true
	}
	var zero A
	return zero, false
}

// MatchThese pattern matches on the three variants.
func MatchThese[E, A, T any](t These[E, A], onLeft func(E) T, onRight func(A) T, onBoth func(E, A) T) T {
	switch {
	case t.hasLeft && t.hasRight:
		return onBoth(t.left, t.right)
	case t.hasLeft:
		return onLeft(t.left)
	default:
		return onRight(t.right)
	}
}

// MapThese applies a function to the right payload, keeping the left.
func MapThese[E, A, B any](t These[E, A], f func(A) B) These[E, B] {
	switch {
	case t.hasLeft && t.hasRight:
		return Both(t.left, f(t.right))
	case t.hasLeft:
		return OnlyLeft[E, B](t.left)
	default:
		return OnlyRight[E](f(t.right))
	}
}

// MapLeftThese applies a function to the left payload, keeping the right.
func MapLeftThese[E, F, A any](t These[E, A], f func(E) F) These[F, A] {
	switch {
	case t.hasLeft && t.hasRight:
		return Both(f(t.left), t.right)
	case t.hasLeft:
		return OnlyLeft[F, A](f(t.left))
	default:
		return OnlyRight[F](t.right)
	}
}

// FlatMapThese sequences two These computations. Left payloads met along
// the way are combined; OnlyLeft terminates the chain.
func FlatMapThese[E Semigroup[E], A, B any](t These[E, A], f func(A) These[E, B]) These[E, B] {
	switch {
	case !t.hasRight:
		return OnlyLeft[E, B](t.left)
	case !t.hasLeft:
		return f(t.right)
	}
	next := f(t.right)
	switch {
	case next.hasLeft && next.hasRight:
		return Both(t.left.Combine(next.left), next.right)
	case next.hasLeft:
		return OnlyLeft[E, B](t.left.Combine(next.left))
	default:
		return Both(t.left, next.right)
	}
}

// ZipWithThese combines the right payloads with f, combining left payloads
// per side. A side without a right payload terminates with the combined lefts.
func ZipWithThese[E Semigroup[E], A, B, C any](x These[E, A], y These[E, B], f func(A, B) C) These[E, C] {
	return RunThese[E, C](Bind(YieldThese(x), func(a A) Comp[C] {
		return Map(YieldThese(y), func(b B) C { return f(a, b) })
	}))
}

// TheseFromEither converts: Left becomes OnlyLeft, Right becomes OnlyRight.
func TheseFromEither[E, A any](e Either[E, A]) These[E, A] {
	if e.isRight {
		return OnlyRight[E](e.right)
	}
	return OnlyLeft[E, A](e.left)
}

// TheseFromValidation converts: Invalid becomes OnlyLeft, Valid becomes
// OnlyRight.
func TheseFromValidation[E, A any](v Validation[E, A]) These[E, A] {
	if v.isValid {
		return OnlyRight[E](v.value)
	}
	return OnlyLeft[E, A](v.errs)
}

// TheseFromAnnotated converts: Plain becomes OnlyRight, Logged becomes
// Both with the log on the left. The log round-trips exactly.
func TheseFromAnnotated[A, W any](x Annotated[A, W]) These[W, A] {
	if x.logged {
		return Both(x.log, x.value)
	}
	return OnlyRight[W](x.value)
}

// TheseToEither converts back to a disjunction, success-biased:
// Both keeps only its right payload. Only the two-variant subset
// round-trips through TheseFromEither.
func TheseToEither[E, A any](t These[E, A]) Either[E, A] {
	if t.hasRight {
		return Right[E](t.right)
	}
	return Left[E, A](t.left)
}

// EqualThese reports strict equality: equal tags and equal payloads.
func EqualThese[E Eq[E], A Eq[A]](x, y These[E, A]) bool {
	if x.hasLeft != y.hasLeft || x.hasRight != y.hasRight {
		return false
	}
	if x.hasLeft && !x.left.Equal(y.left) {
		return false
	}
	if x.hasRight && !x.right.Equal(y.right) {
		return false
	}
	return true
}

// CompareThese orders OnlyLeft before OnlyRight before Both; payloads
// decide between equal tags, left payload first.
func CompareThese[E Ord[E], A Ord[A]](x, y These[E, A]) int {
	if rx, ry := theseRank(x), theseRank(y); rx != ry {
		return rx - ry
	}
	if x.hasLeft {
		if c := x.left.Compare(y.left); c != 0 {
			return c
		}
	}
	if x.hasRight {
		if c := x.right.Compare(y.right); c != 0 {
			return c
		}
	}
	return 0
}

func theseRank[E, A any](t These[E, A]) int {
	switch {
	case t.hasLeft && t.hasRight:
		return 2
	case t.hasLeft:
		return 0
	default:
		return 1
	}
}

// CombineThese combines pairwise by side: lefts combine with lefts,
// rights with rights, and a side present in only one operand is kept.
func CombineThese[E Semigroup[E], A Semigroup[A]](x, y These[E, A]) These[E, A] {
	var out These[E, A]
	switch {
	case x.hasLeft && y.hasLeft:
		out.hasLeft = true
		out.left = x.left.Combine(y.left)
	case x.hasLeft:
		out.hasLeft = true
		out.left = x.left
	case y.hasLeft:
		out.hasLeft = true
		out.left = y.left
	}
	switch {
	case x.hasRight && y.hasRight:
		out.hasRight = true
		out.right = x.right.Combine(y.right)
	case x.hasRight:
		out.hasRight = true
		out.right = x.right
	case y.hasRight:
		out.hasRight = true
		out.right = y.right
	}
	return out
}
