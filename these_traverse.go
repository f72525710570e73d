// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Traversal and aggregation combinators for the These family.
// Left payloads accumulate across steps via their Semigroup; OnlyLeft
// terminates with everything accumulated so far. Par forms combine
// arriving left payloads in completion order.

// theseOutcome wraps an evaluator's final state around a finished
// container: OnlyLeft on halt, Both when the accumulator was set,
// OnlyRight otherwise.
func theseOutcome[E Semigroup[E], C any](ev *theseEvaluator[E], halted bool, finish func() C) These[E, C] {
	if halted {
		return OnlyLeft[E, C](ev.acc)
	}
	c := finish()
	if ev.set {
		return Both(ev.acc, c)
	}
	return OnlyRight[E](c)
}

// ReduceThese folds step over elems in input order, combining left
// payloads along the way; OnlyLeft halts the fold.
func ReduceThese[E Semigroup[E], T, A any](elems []T, step func(A, T, int) These[E, A], initial A) These[E, A] {
	return RunThese[E, A](reduceComp(elems, func(acc A, el T, i int) Comp[A] {
		return YieldThese(step(acc, el, i))
	}, initial))
}

// TraverseIntoThese applies f to each element with its index, adding
// each right payload to the builder and combining left payloads.
func TraverseIntoThese[E Semigroup[E], T, A, C any](elems []T, f func(T, int) These[E, A], b Builder[A, C]) These[E, C] {
	return RunThese[E, C](traverseIntoComp(elems, func(el T, i int) Comp[A] {
		return YieldThese(f(el, i))
	}, b))
}

// TraverseThese applies f to each element, collecting right payloads
// into a slice in input order and combining left payloads.
func TraverseThese[E Semigroup[E], T, A any](elems []T, f func(T, int) These[E, A]) These[E, []A] {
	return TraverseIntoThese(elems, f, NewSliceBuilder[A]())
}

// AllThese collects already-built values: right payloads in input order,
// left payloads combined; the first OnlyLeft halts.
func AllThese[E Semigroup[E], A any](values []These[E, A]) These[E, []A] {
	return TraverseThese(values, func(v These[E, A], _ int) These[E, A] { return v })
}

// AllIntoThese is AllThese with an explicit builder.
func AllIntoThese[E Semigroup[E], A, C any](values []These[E, A], b Builder[A, C]) These[E, C] {
	return TraverseIntoThese(values, func(v These[E, A], _ int) These[E, A] { return v }, b)
}

// AllPropsThese collects a string-keyed record of values, preserving
// keys. Keys are visited in sorted order, so left accumulation and the
// first OnlyLeft are deterministic.
func AllPropsThese[E Semigroup[E], A any](props map[string]These[E, A]) These[E, map[string]A] {
	return RunThese[E, map[string]A](propsComp(props, func(_ string, v These[E, A]) Comp[A] {
		return YieldThese(v)
	}))
}

// ForEachThese applies f to each element for its effects, discarding
// right payloads but still combining left payloads.
func ForEachThese[E Semigroup[E], T any](elems []T, f func(T, int) These[E, struct{}]) These[E, struct{}] {
	return TraverseIntoThese(elems, f, DiscardBuilder[struct{}]{})
}

// Lift2These adapts a binary function to These arguments, combining
// left payloads.
func Lift2These[E Semigroup[E], A, B, C any](f func(A, B) C) func(These[E, A], These[E, B]) These[E, C] {
	return func(x These[E, A], y These[E, B]) These[E, C] {
		return RunThese[E, C](Bind(YieldThese(x), func(a A) Comp[C] {
			return Map(YieldThese(y), func(b B) C { return f(a, b) })
		}))
	}
}

// Lift3These adapts a ternary function to These arguments, combining
// left payloads.
func Lift3These[E Semigroup[E], A, B, C, D any](f func(A, B, C) D) func(These[E, A], These[E, B], These[E, C]) These[E, D] {
	return func(x These[E, A], y These[E, B], z These[E, C]) These[E, D] {
		return RunThese[E, D](Bind(YieldThese(x), func(a A) Comp[D] {
			return Bind(YieldThese(y), func(b B) Comp[D] {
				return Map(YieldThese(z), func(c C) D { return f(a, b, c) })
			})
		}))
	}
}

// TraverseIntoThesePar starts f's task for every element concurrently,
// filling the builder and combining left payloads in completion order.
// The first OnlyLeft to complete wins with the accumulator as combined
// so far; remaining tasks keep running, their results discarded.
func TraverseIntoThesePar[E Semigroup[E], T, A, C any](elems []T, f func(T, int) Task[These[E, A]], b Builder[A, C]) Task[These[E, C]] {
	return func() These[E, C] {
		jobs := make([]parJob, len(elems))
		for i, el := range elems {
			i, el := i, el
			jobs[i] = parJob{index: i, run: func() any { return TheseStep[E, A]{Value: f(el, i)()} }}
		}
		ev := &theseEvaluator[E]{}
		halted := gather(ev, len(jobs), scatter(jobs), func(_ parResult, v Resumed) { b.Add(fromResumed[A](v)) })
		return theseOutcome(ev, halted, b.Finish)
	}
}

// TraverseThesePar starts f's task for every element concurrently,
// restoring input order in the final slice; left payloads combine in
// completion order.
func TraverseThesePar[E Semigroup[E], T, A any](elems []T, f func(T, int) Task[These[E, A]]) Task[These[E, []A]] {
	return func() These[E, []A] {
		jobs := make([]parJob, len(elems))
		for i, el := range elems {
			i, el := i, el
			jobs[i] = parJob{index: i, run: func() any { return TheseStep[E, A]{Value: f(el, i)()} }}
		}
		ev := &theseEvaluator[E]{}
		b := NewIndexedBuilder[A](len(elems))
		halted := gather(ev, len(jobs), scatter(jobs), func(r parResult, v Resumed) { b.Put(r.index, fromResumed[A](v)) })
		return theseOutcome(ev, halted, b.Finish)
	}
}

// AllThesePar forces already-built tasks concurrently, restoring input
// order in the final slice.
func AllThesePar[E Semigroup[E], A any](tasks []Task[These[E, A]]) Task[These[E, []A]] {
	return TraverseThesePar(tasks, func(t Task[These[E, A]], _ int) Task[These[E, A]] { return t })
}

// AllIntoThesePar forces already-built tasks concurrently, filling the
// builder in completion order.
func AllIntoThesePar[E Semigroup[E], A, C any](tasks []Task[These[E, A]], b Builder[A, C]) Task[These[E, C]] {
	return TraverseIntoThesePar(tasks, func(t Task[These[E, A]], _ int) Task[These[E, A]] { return t }, b)
}

// AllPropsThesePar forces a record of tasks concurrently, preserving
// keys in the final record; left payloads combine in completion order.
func AllPropsThesePar[E Semigroup[E], A any](props map[string]Task[These[E, A]]) Task[These[E, map[string]A]] {
	return func() These[E, map[string]A] {
		jobs := make([]parJob, 0, len(props))
		for k, t := range props {
			t := t
			jobs = append(jobs, parJob{key: k, run: func() any { return TheseStep[E, A]{Value: t()} }})
		}
		ev := &theseEvaluator[E]{}
		b := NewMapBuilder[A]()
		halted := gather(ev, len(jobs), scatter(jobs), func(r parResult, v Resumed) {
			b.Add(Pair[string, A]{Fst: r.key, Snd: fromResumed[A](v)})
		})
		return theseOutcome(ev, halted, b.Finish)
	}
}

// ForEachThesePar forces f's task for every element concurrently,
// discarding right payloads but still combining left payloads.
func ForEachThesePar[E Semigroup[E], T any](elems []T, f func(T, int) Task[These[E, struct{}]]) Task[These[E, struct{}]] {
	return TraverseIntoThesePar(elems, f, DiscardBuilder[struct{}]{})
}
