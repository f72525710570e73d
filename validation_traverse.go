// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Traversal and aggregation combinators for the Validation family.
//
// Generator-style evaluation is fail-fast: elements are seen one at a
// time and the first Invalid halts, unmerged — same control flow as the
// Either forms. Accumulation across multiple Invalids belongs to the
// value-level ZipWithValidation/CombineValidation operators only.

// ReduceValidation folds step over elems in input order; the first
// Invalid halts the fold.
func ReduceValidation[E, T, A any](elems []T, step func(A, T, int) Validation[E, A], initial A) Validation[E, A] {
	return RunValidation[E, A](reduceComp(elems, func(acc A, el T, i int) Comp[A] {
		return YieldValidation(step(acc, el, i))
	}, initial))
}

// TraverseIntoValidation applies f to each element with its index,
// adding each Valid payload to the builder. The first Invalid is
// returned as-is.
func TraverseIntoValidation[E, T, A, C any](elems []T, f func(T, int) Validation[E, A], b Builder[A, C]) Validation[E, C] {
	return RunValidation[E, C](traverseIntoComp(elems, func(el T, i int) Comp[A] {
		return YieldValidation(f(el, i))
	}, b))
}

// TraverseValidation applies f to each element, collecting Valid
// payloads into a slice in input order.
func TraverseValidation[E, T, A any](elems []T, f func(T, int) Validation[E, A]) Validation[E, []A] {
	return TraverseIntoValidation(elems, f, NewSliceBuilder[A]())
}

// AllValidation collects already-built values: the first Invalid wins,
// otherwise all Valid payloads in input order.
func AllValidation[E, A any](values []Validation[E, A]) Validation[E, []A] {
	return TraverseValidation(values, func(v Validation[E, A], _ int) Validation[E, A] { return v })
}

// AllIntoValidation is AllValidation with an explicit builder.
func AllIntoValidation[E, A, C any](values []Validation[E, A], b Builder[A, C]) Validation[E, C] {
	return TraverseIntoValidation(values, func(v Validation[E, A], _ int) Validation[E, A] { return v }, b)
}

// AllPropsValidation collects a string-keyed record of values, preserving
// keys. Keys are visited in sorted order, so the first Invalid is
// deterministic.
func AllPropsValidation[E, A any](props map[string]Validation[E, A]) Validation[E, map[string]A] {
	return RunValidation[E, map[string]A](propsComp(props, func(_ string, v Validation[E, A]) Comp[A] {
		return YieldValidation(v)
	}))
}

// ForEachValidation applies f to each element for its effects,
// discarding payloads.
func ForEachValidation[E, T any](elems []T, f func(T, int) Validation[E, struct{}]) Validation[E, struct{}] {
	return TraverseIntoValidation(elems, f, DiscardBuilder[struct{}]{})
}

// Lift2Validation adapts a binary function to Validation arguments,
// fail-fast. Use ZipWithValidation to accumulate errors instead.
func Lift2Validation[E, A, B, C any](f func(A, B) C) func(Validation[E, A], Validation[E, B]) Validation[E, C] {
	return func(x Validation[E, A], y Validation[E, B]) Validation[E, C] {
		return RunValidation[E, C](Bind(YieldValidation(x), func(a A) Comp[C] {
			return Map(YieldValidation(y), func(b B) C { return f(a, b) })
		}))
	}
}

// Lift3Validation adapts a ternary function to Validation arguments,
// fail-fast.
func Lift3Validation[E, A, B, C, D any](f func(A, B, C) D) func(Validation[E, A], Validation[E, B], Validation[E, C]) Validation[E, D] {
	return func(x Validation[E, A], y Validation[E, B], z Validation[E, C]) Validation[E, D] {
		return RunValidation[E, D](Bind(YieldValidation(x), func(a A) Comp[D] {
			return Bind(YieldValidation(y), func(b B) Comp[D] {
				return Map(YieldValidation(z), func(c C) D { return f(a, b, c) })
			})
		}))
	}
}

// TraverseIntoValidationPar starts f's task for every element
// concurrently and fills the builder in completion order. The first
// Invalid to complete wins; remaining tasks keep running, their results
// discarded.
func TraverseIntoValidationPar[E, T, A, C any](elems []T, f func(T, int) Task[Validation[E, A]], b Builder[A, C]) Task[Validation[E, C]] {
	return func() Validation[E, C] {
		jobs := make([]parJob, len(elems))
		for i, el := range elems {
			i, el := i, el
			jobs[i] = parJob{index: i, run: func() any { return ValidationStep[E, A]{Value: f(el, i)()} }}
		}
		ev := &validationEvaluator[E]{}
		if gather(ev, len(jobs), scatter(jobs), func(_ parResult, v Resumed) { b.Add(fromResumed[A](v)) }) {
			return Invalid[E, C](ev.errs)
		}
		return Valid[E](b.Finish())
	}
}

// TraverseValidationPar starts f's task for every element concurrently
// and restores input order in the final slice.
func TraverseValidationPar[E, T, A any](elems []T, f func(T, int) Task[Validation[E, A]]) Task[Validation[E, []A]] {
	return func() Validation[E, []A] {
		jobs := make([]parJob, len(elems))
		for i, el := range elems {
			i, el := i, el
			jobs[i] = parJob{index: i, run: func() any { return ValidationStep[E, A]{Value: f(el, i)()} }}
		}
		ev := &validationEvaluator[E]{}
		b := NewIndexedBuilder[A](len(elems))
		if gather(ev, len(jobs), scatter(jobs), func(r parResult, v Resumed) { b.Put(r.index, fromResumed[A](v)) }) {
			return Invalid[E, []A](ev.errs)
		}
		return Valid[E](b.Finish())
	}
}

// AllValidationPar forces already-built tasks concurrently, restoring
// input order in the final slice.
func AllValidationPar[E, A any](tasks []Task[Validation[E, A]]) Task[Validation[E, []A]] {
	return TraverseValidationPar(tasks, func(t Task[Validation[E, A]], _ int) Task[Validation[E, A]] { return t })
}

// AllIntoValidationPar forces already-built tasks concurrently, filling
// the builder in completion order.
func AllIntoValidationPar[E, A, C any](tasks []Task[Validation[E, A]], b Builder[A, C]) Task[Validation[E, C]] {
	return TraverseIntoValidationPar(tasks, func(t Task[Validation[E, A]], _ int) Task[Validation[E, A]] { return t }, b)
}

// AllPropsValidationPar forces a record of tasks concurrently, preserving
// keys in the final record.
func AllPropsValidationPar[E, A any](props map[string]Task[Validation[E, A]]) Task[Validation[E, map[string]A]] {
	return func() Validation[E, map[string]A] {
		jobs := make([]parJob, 0, len(props))
		for k, t := range props {
			t := t
			jobs = append(jobs, parJob{key: k, run: func() any { return ValidationStep[E, A]{Value: t()} }})
		}
		ev := &validationEvaluator[E]{}
		b := NewMapBuilder[A]()
		if gather(ev, len(jobs), scatter(jobs), func(r parResult, v Resumed) {
			b.Add(Pair[string, A]{Fst: r.key, Snd: fromResumed[A](v)})
		}) {
			return Invalid[E, map[string]A](ev.errs)
		}
		return Valid[E](b.Finish())
	}
}

// ForEachValidationPar forces f's task for every element concurrently,
// discarding payloads.
func ForEachValidationPar[E, T any](elems []T, f func(T, int) Task[Validation[E, struct{}]]) Task[Validation[E, struct{}]] {
	return TraverseIntoValidationPar(elems, f, DiscardBuilder[struct{}]{})
}
