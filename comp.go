// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Resumed is the interface for values flowing through comprehension
// suspension and resumption. A comprehension step yields a family value
// and receives back its continue payload as a Resumed value.
type Resumed any

// Comp represents a comprehension: a suspending computation that yields
// family values and terminates with a plain return value of type A.
//
// The encoding is continuation-passing: the function receives "the rest
// of the computation" k and either calls it with a value or returns a
// suspension marker carrying the yielded step and k. The family
// evaluators (RunOption, RunEither, ...) drive the markers to completion
// per family policy.
//
// A comprehension must yield only steps of the family it is evaluated
// for; a foreign step panics in the evaluator.
type Comp[A any] func(k func(A) Resumed) Resumed

// Pure lifts a plain value into a comprehension with no yields.
func Pure[A any](a A) Comp[A] {
	return func(k func(A) Resumed) Resumed {
		return k(a)
	}
}

// Bind sequences two comprehensions (monadic bind).
// It runs m, then passes the result to f to get the next comprehension.
func Bind[A, B any](m Comp[A], f func(A) Comp[B]) Comp[B] {
	return func(k func(B) Resumed) Resumed {
		return m(func(a A) Resumed {
			return f(a)(k)
		})
	}
}

// Map applies a pure function to the result of a comprehension.
//
// Allocation note: Map is equivalent to Bind(m, compose(Pure, f)) but
// avoids the intermediate Pure closure, making it the preferred choice
// when the transformation yields nothing.
func Map[A, B any](m Comp[A], f func(A) B) Comp[B] {
	return func(k func(B) Resumed) Resumed {
		return m(func(a A) Resumed {
			return k(f(a))
		})
	}
}

// Then sequences two comprehensions, discarding the first result.
//
// Allocation note: Then avoids the closure capture of a transformation
// function that would occur with Bind(m, func(_ A) { return n }).
func Then[A, B any](m Comp[A], n Comp[B]) Comp[B] {
	return func(k func(B) Resumed) Resumed {
		return m(func(_ A) Resumed {
			return n(k)
		})
	}
}

// suspension represents a suspended comprehension step.
// Implemented by genericMarker; a single interface dispatch covers all
// marker resume strategies.
type suspension interface {
	Op() any
	Resume(Resumed) Resumed
	release()
}

// toResumed is the identity continuation for evaluator entry points.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func toResumed[A any](a A) Resumed { return a }

// fromResumed recovers the typed payload from a Resumed value. A nil
// Resumed converts to the zero value of A, so payloads that are
// themselves nil interfaces (e.g. a Some carrying a nil error) flow
// through resumption unchanged.
func fromResumed[A any](v Resumed) A {
	a, _ := v.(A)
	return a
}
