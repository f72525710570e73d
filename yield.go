// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Step operations for comprehension yields.
//
// Each Yield* constructor suspends the comprehension on a step operation
// carrying one family value. The family evaluators classify steps through
// structural interface assertions on the step<Family> methods: a step
// either resumes the comprehension with its continue payload or signals
// termination, recording side-channel values (failure, left accumulator,
// log) in the evaluator state.

// stepResume resumes a comprehension from a suspension marker.
// Uses a typed continuation to avoid closure allocation in the Yield*
// constructors.
func stepResume[A any](m *genericMarker, v Resumed) Resumed {
	k := m.k.(func(A) Resumed)
	releaseMarker(m)
	return k(fromResumed[A](v))
}

// OptionStep is the yield operation carrying an Option value.
// Some resumes with its payload; None terminates.
type OptionStep[X any] struct{ Value Option[X] }

func (s OptionStep[X]) stepOption() (Resumed, bool) {
	if v, ok := s.Value.Get(); ok {
		return v, true
	}
	return nil, false
}

// EitherStep is the yield operation carrying an Either value.
// Right resumes with its payload; Left terminates with its payload.
type EitherStep[E, X any] struct{ Value Either[E, X] }

func (s EitherStep[E, X]) stepEither(ev *eitherEvaluator[E]) (Resumed, bool) {
	if v, ok := s.Value.GetRight(); ok {
		return v, true
	}
	e, _ := s.Value.GetLeft()
	ev.fail(e)
	return nil, false
}

// ValidationStep is the yield operation carrying a Validation value.
// Valid resumes with its payload; the first Invalid terminates, unmerged —
// comprehension evaluation of this family is fail-fast by design.
type ValidationStep[E, X any] struct{ Value Validation[E, X] }

func (s ValidationStep[E, X]) stepValidation(ev *validationEvaluator[E]) (Resumed, bool) {
	if v, ok := s.Value.GetValid(); ok {
		return v, true
	}
	e, _ := s.Value.GetInvalid()
	ev.fail(e)
	return nil, false
}

// TheseStep is the yield operation carrying a These value.
// OnlyRight resumes untouched; Both combines its left payload into the
// evaluator's accumulator and resumes with its right payload; OnlyLeft
// combines its payload and terminates.
type TheseStep[E Semigroup[E], X any] struct{ Value These[E, X] }

func (s TheseStep[E, X]) stepThese(ev *theseEvaluator[E]) (Resumed, bool) {
	if e, ok := s.Value.GetLeft(); ok {
		ev.absorb(e)
	}
	if v, ok := s.Value.GetRight(); ok {
		return v, true
	}
	return nil, false
}

// AnnotatedStep is the yield operation carrying an Annotated value.
// Both variants resume with the primary value; Logged combines its log
// into the evaluator's accumulator first. Never terminates.
type AnnotatedStep[X any, W Semigroup[W]] struct{ Value Annotated[X, W] }

func (s AnnotatedStep[X, W]) stepAnnotated(ev *annotatedEvaluator[W]) (Resumed, bool) {
	if w, ok := s.Value.GetLog(); ok {
		ev.absorb(w)
	}
	return s.Value.Value(), true
}

// awaitStep defers production of a family step until the evaluator
// reaches it, so asynchronous steps are awaited strictly in yield order.
type awaitStep struct{ force func() any }

// yieldComp suspends on the given step operation. Shared body of the
// Yield* and Await* constructors.
func yieldComp[X any](op any) Comp[X] {
	return func(k func(X) Resumed) Resumed {
		m := acquireMarker()
		m.op = op
		m.k = k
		m.resume = stepResume[X]
		return m
	}
}

// YieldOption yields an Option value into the comprehension.
func YieldOption[X any](o Option[X]) Comp[X] {
	return yieldComp[X](OptionStep[X]{Value: o})
}

// YieldEither yields an Either value into the comprehension.
func YieldEither[E, X any](e Either[E, X]) Comp[X] {
	return yieldComp[X](EitherStep[E, X]{Value: e})
}

// YieldValidation yields a Validation value into the comprehension.
func YieldValidation[E, X any](v Validation[E, X]) Comp[X] {
	return yieldComp[X](ValidationStep[E, X]{Value: v})
}

// YieldThese yields a These value into the comprehension.
func YieldThese[E Semigroup[E], X any](t These[E, X]) Comp[X] {
	return yieldComp[X](TheseStep[E, X]{Value: t})
}

// YieldAnnotated yields an Annotated value into the comprehension.
func YieldAnnotated[X any, W Semigroup[W]](a Annotated[X, W]) Comp[X] {
	return yieldComp[X](AnnotatedStep[X, W]{Value: a})
}

// AwaitOption yields the Option produced by a task, awaited in yield order.
func AwaitOption[X any](t Task[Option[X]]) Comp[X] {
	return yieldComp[X](awaitStep{force: func() any { return OptionStep[X]{Value: t()} }})
}

// AwaitEither yields the Either produced by a task, awaited in yield order.
func AwaitEither[E, X any](t Task[Either[E, X]]) Comp[X] {
	return yieldComp[X](awaitStep{force: func() any { return EitherStep[E, X]{Value: t()} }})
}

// AwaitValidation yields the Validation produced by a task, awaited in
// yield order.
func AwaitValidation[E, X any](t Task[Validation[E, X]]) Comp[X] {
	return yieldComp[X](awaitStep{force: func() any { return ValidationStep[E, X]{Value: t()} }})
}

// AwaitThese yields the These produced by a task, awaited in yield order.
func AwaitThese[E Semigroup[E], X any](t Task[These[E, X]]) Comp[X] {
	return yieldComp[X](awaitStep{force: func() any { return TheseStep[E, X]{Value: t()} }})
}

// AwaitAnnotated yields the Annotated produced by a task, awaited in
// yield order.
func AwaitAnnotated[X any, W Semigroup[W]](t Task[Annotated[X, W]]) Comp[X] {
	return yieldComp[X](awaitStep{force: func() any { return AnnotatedStep[X, W]{Value: t()} }})
}
