// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "sync/atomic"

// Stepping boundary for external drivers.
// Step provides shallow one-yield-at-a-time evaluation, unlike the Run*
// evaluators which drive a comprehension to completion under a family
// policy. An external runtime inspects each yielded step operation itself
// and decides what payload to resume with.

// Suspension represents a comprehension suspended on a yield.
// It holds the pending step operation and a one-shot resumption handle.
//
// Suspension enforces affine semantics: Resume may be called at most
// once. Calling Resume twice panics. Use Discard to explicitly abandon
// a suspension.
type Suspension[A any] struct {
	used atomic.Uintptr
	op   any
	s    suspension
}

// Op returns the step operation that caused the suspension: one of
// OptionStep, EitherStep, ValidationStep, TheseStep, AnnotatedStep, or
// an internal cleanup step. Awaited steps are forced before being exposed.
func (s *Suspension[A]) Op() any { return s.op }

// Resume advances the comprehension with the given payload.
// Returns either a completed value (with nil suspension) or the next
// suspension. Panics if the suspension has already been resumed or
// discarded.
func (s *Suspension[A]) Resume(v Resumed) (A, *Suspension[A]) {
	if s.used.Add(1) != 1 {
		panic("adt: suspension resumed twice")
	}
	return classifyResumed[A](s.s.Resume(v))
}

// TryResume attempts to advance the comprehension.
// Returns (value, suspension, true) on success, or (zero, nil, false)
// if already used.
func (s *Suspension[A]) TryResume(v Resumed) (A, *Suspension[A], bool) {
	if s.used.Add(1) != 1 {
		var zero A
		return zero, nil, false
	}
	a, next := classifyResumed[A](s.s.Resume(v))
	return a, next, true
}

// Discard marks the suspension as consumed without resuming.
func (s *Suspension[A]) Discard() {
	s.used.Store(1)
	s.s.release()
}

// Step drives a comprehension until it either completes or suspends on
// a yield. Returns (value, nil) if the comprehension completed, or
// (zero, suspension) if pending.
//
// Example:
//
//	result, susp := Step(comprehension)
//	for susp != nil {
//	    v := interpret(susp.Op())
//	    result, susp = susp.Resume(v)
//	}
func Step[A any](m Comp[A]) (A, *Suspension[A]) {
	return classifyResumed[A](m(toResumed[A]))
}

// classifyResumed examines a Resumed value and classifies it as either
// a completed value or a suspension. A nil final value means "completed
// with the zero value".
func classifyResumed[A any](result Resumed) (A, *Suspension[A]) {
	if s, ok := result.(suspension); ok {
		op := s.Op()
		if aw, ok := op.(awaitStep); ok {
			op = aw.force()
		}
		var zero A
		return zero, &Suspension[A]{op: op, s: s}
	}
	return fromResumed[A](result), nil
}
