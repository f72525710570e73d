// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Family evaluators.
//
// Each Run* function interprets a comprehension under one family's
// combination policy: Option/Either/Validation are fail-fast (the first
// terminating step wins, no merge), These threads a left accumulator,
// Annotated threads a log accumulator and never halts. All five share
// one trampoline, eval, parameterized by an evaluator-state type known
// at monomorphization time.

// unhandledStep panics with a descriptive message for foreign-family steps.
// Extracted as a noinline function so that dispatch methods remain inlineable.
//
//go:noinline
func unhandledStep(evaluator string) {
	panic("adt: unhandled step in " + evaluator)
}

// evaluator is the per-family policy: dispatch classifies one step
// operation, returning (payload, true) to resume the comprehension or
// (nil, false) to halt it. Terminating and side-channel payloads are
// recorded on the evaluator state itself.
type evaluator interface {
	dispatch(op any) (Resumed, bool)
}

// eval is the shared trampoline. It drives a started comprehension until
// completion or halt, forcing awaited steps in yield order and running
// cleanup steps (Ensuring, OnHalt) with the same evaluator state, so a
// terminating value yielded during cleanup supersedes the original by
// overwriting it — or, for accumulating families, combines into the
// running accumulator.
//
// Returns (finalValue, false) on completion or (nil, true) on halt.
func eval[P evaluator](p P, result Resumed) (Resumed, bool) {
	for {
		s, ok := result.(suspension)
		if !ok {
			return result, false
		}
		op := s.Op()
		if aw, ok := op.(awaitStep); ok {
			op = aw.force()
		}
		if en, ok := op.(ensureStep); ok {
			v, halted := eval(p, en.body())
			if halted {
				eval(p, en.cleanup())
				s.release()
				return nil, true
			}
			if !en.haltOnly {
				if _, ch := eval(p, en.cleanup()); ch {
					s.release()
					return nil, true
				}
			}
			result = s.Resume(v)
			continue
		}
		v, resume := p.dispatch(op)
		if !resume {
			s.release()
			return nil, true
		}
		result = s.Resume(v)
	}
}

type optionEvaluator struct{}

func (optionEvaluator) dispatch(op any) (Resumed, bool) {
	if s, ok := op.(interface{ stepOption() (Resumed, bool) }); ok {
		return s.stepOption()
	}
	unhandledStep("RunOption")
	return nil, false
}

type eitherEvaluator[E any] struct {
	err E
}

func (ev *eitherEvaluator[E]) fail(e E) { ev.err = e }

func (ev *eitherEvaluator[E]) dispatch(op any) (Resumed, bool) {
	if s, ok := op.(interface {
		stepEither(ev *eitherEvaluator[E]) (Resumed, bool)
	}); ok {
		return s.stepEither(ev)
	}
	unhandledStep("RunEither")
	return nil, false
}

type validationEvaluator[E any] struct {
	errs E
}

func (ev *validationEvaluator[E]) fail(e E) { ev.errs = e }

func (ev *validationEvaluator[E]) dispatch(op any) (Resumed, bool) {
	if s, ok := op.(interface {
		stepValidation(ev *validationEvaluator[E]) (Resumed, bool)
	}); ok {
		return s.stepValidation(ev)
	}
	unhandledStep("RunValidation")
	return nil, false
}

type theseEvaluator[E Semigroup[E]] struct {
	acc E
	set bool
}

// absorb folds one left payload into the running accumulator:
// the first payload sets it, later payloads combine.
func (ev *theseEvaluator[E]) absorb(e E) {
	if ev.set {
		ev.acc = ev.acc.Combine(e)
		return
	}
	ev.acc = e
	ev.set = true
}

func (ev *theseEvaluator[E]) dispatch(op any) (Resumed, bool) {
	if s, ok := op.(interface {
		stepThese(ev *theseEvaluator[E]) (Resumed, bool)
	}); ok {
		return s.stepThese(ev)
	}
	unhandledStep("RunThese")
	return nil, false
}

type annotatedEvaluator[W Semigroup[W]] struct {
	log W
	set bool
}

func (ev *annotatedEvaluator[W]) absorb(w W) {
	if ev.set {
		ev.log = ev.log.Combine(w)
		return
	}
	ev.log = w
	ev.set = true
}

func (ev *annotatedEvaluator[W]) dispatch(op any) (Resumed, bool) {
	if s, ok := op.(interface {
		stepAnnotated(ev *annotatedEvaluator[W]) (Resumed, bool)
	}); ok {
		return s.stepAnnotated(ev)
	}
	unhandledStep("RunAnnotated")
	return nil, false
}

// RunOption evaluates a comprehension of Option yields.
// The first None halts and is returned; completion wraps the return
// value in Some.
func RunOption[A any](m Comp[A]) Option[A] {
	var ev optionEvaluator
	v, halted := eval(ev, m(toResumed[A]))
	if halted {
		return None[A]()
	}
	return Some(fromResumed[A](v))
}

// RunEither evaluates a comprehension of Either yields.
// The first Left halts and is returned as-is; completion wraps the
// return value in Right.
func RunEither[E, A any](m Comp[A]) Either[E, A] {
	ev := &eitherEvaluator[E]{}
	v, halted := eval(ev, m(toResumed[A]))
	if halted {
		return Left[E, A](ev.err)
	}
	return Right[E, A](fromResumed[A](v))
}

// RunValidation evaluates a comprehension of Validation yields.
// The first Invalid halts and is returned unmerged; completion wraps the
// return value in Valid. Error accumulation belongs to ZipWithValidation
// and CombineValidation, not to comprehension evaluation.
func RunValidation[E, A any](m Comp[A]) Validation[E, A] {
	ev := &validationEvaluator[E]{}
	v, halted := eval(ev, m(toResumed[A]))
	if halted {
		return Invalid[E, A](ev.errs)
	}
	return Valid[E](fromResumed[A](v))
}

// RunThese evaluates a comprehension of These yields, threading a left
// accumulator: Both combines its left payload in and resumes, OnlyLeft
// combines and halts with OnlyLeft(accumulator). Completion returns
// OnlyRight(value), or Both(accumulator, value) when the accumulator
// was set.
func RunThese[E Semigroup[E], A any](m Comp[A]) These[E, A] {
	ev := &theseEvaluator[E]{}
	v, halted := eval(ev, m(toResumed[A]))
	if halted {
		return OnlyLeft[E, A](ev.acc)
	}
	a := fromResumed[A](v)
	if ev.set {
		return Both(ev.acc, a)
	}
	return OnlyRight[E](a)
}

// RunAnnotated evaluates a comprehension of Annotated yields, threading
// a log accumulator. Never halts early. Completion returns Plain(value),
// or Logged(value, accumulator) when any step carried a log.
func RunAnnotated[W Semigroup[W], A any](m Comp[A]) Annotated[A, W] {
	ev := &annotatedEvaluator[W]{}
	v, _ := eval(ev, m(toResumed[A]))
	a := fromResumed[A](v)
	if ev.set {
		return Logged(a, ev.log)
	}
	return Plain[A, W](a)
}

// RunOptionAsync defers evaluation into a task. Steps, including awaited
// ones, resume strictly in yield order when the task runs.
func RunOptionAsync[A any](m Comp[A]) Task[Option[A]] {
	return func() Option[A] { return RunOption(m) }
}

// RunEitherAsync defers evaluation into a task.
func RunEitherAsync[E, A any](m Comp[A]) Task[Either[E, A]] {
	return func() Either[E, A] { return RunEither[E, A](m) }
}

// RunValidationAsync defers evaluation into a task.
func RunValidationAsync[E, A any](m Comp[A]) Task[Validation[E, A]] {
	return func() Validation[E, A] { return RunValidation[E, A](m) }
}

// RunTheseAsync defers evaluation into a task.
func RunTheseAsync[E Semigroup[E], A any](m Comp[A]) Task[These[E, A]] {
	return func() These[E, A] { return RunThese[E, A](m) }
}

// RunAnnotatedAsync defers evaluation into a task.
func RunAnnotatedAsync[W Semigroup[W], A any](m Comp[A]) Task[Annotated[A, W]] {
	return func() Annotated[A, W] { return RunAnnotated[W, A](m) }
}
