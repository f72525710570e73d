// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Capability contracts for payload types.
//
// Instances are declared explicitly as generic bounds at the call sites
// that need them (e.g. [E Semigroup[E]]), never inferred structurally at
// runtime. A payload type opts in by implementing the method set.

// Semigroup is the contract for associative combination.
// Combine must be associative: x.Combine(y.Combine(z)) must equal
// x.Combine(y).Combine(z) for all x, y, z.
//
// Used F-bounded: a type S implements Semigroup[S].
type Semigroup[T any] interface {
	Combine(T) T
}

// Eq is the contract for strict equality.
type Eq[T any] interface {
	Equal(T) bool
}

// Ord is the contract for total ordering.
// Compare returns a negative value, zero, or a positive value when the
// receiver is less than, equal to, or greater than the argument.
// Compare and Equal must agree: Compare(x) == 0 iff Equal(x).
type Ord[T any] interface {
	Eq[T]
	Compare(T) int
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
