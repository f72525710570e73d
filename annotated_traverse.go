// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Traversal and aggregation combinators for the Annotated family.
// There is no failure variant: every traversal completes, combining logs
// via their Semigroup — in input order for the sequential forms, in
// completion order for the Par forms.

// annotatedOutcome wraps an evaluator's final log state around a
// finished container.
func annotatedOutcome[W Semigroup[W], C any](ev *annotatedEvaluator[W], c C) Annotated[C, W] {
	if ev.set {
		return Logged(c, ev.log)
	}
	return Plain[C, W](c)
}

// ReduceAnnotated folds step over elems in input order, combining logs
// along the way.
func ReduceAnnotated[W Semigroup[W], T, A any](elems []T, step func(A, T, int) Annotated[A, W], initial A) Annotated[A, W] {
	return RunAnnotated[W, A](reduceComp(elems, func(acc A, el T, i int) Comp[A] {
		return YieldAnnotated(step(acc, el, i))
	}, initial))
}

// TraverseIntoAnnotated applies f to each element with its index, adding
// each value to the builder and combining logs.
func TraverseIntoAnnotated[W Semigroup[W], T, A, C any](elems []T, f func(T, int) Annotated[A, W], b Builder[A, C]) Annotated[C, W] {
	return RunAnnotated[W, C](traverseIntoComp(elems, func(el T, i int) Comp[A] {
		return YieldAnnotated(f(el, i))
	}, b))
}

// TraverseAnnotated applies f to each element, collecting values into a
// slice in input order and combining logs.
func TraverseAnnotated[W Semigroup[W], T, A any](elems []T, f func(T, int) Annotated[A, W]) Annotated[[]A, W] {
	return TraverseIntoAnnotated(elems, f, NewSliceBuilder[A]())
}

// AllAnnotated collects already-built values in input order, combining
// logs.
func AllAnnotated[W Semigroup[W], A any](values []Annotated[A, W]) Annotated[[]A, W] {
	return TraverseAnnotated(values, func(v Annotated[A, W], _ int) Annotated[A, W] { return v })
}

// AllIntoAnnotated is AllAnnotated with an explicit builder.
func AllIntoAnnotated[W Semigroup[W], A, C any](values []Annotated[A, W], b Builder[A, C]) Annotated[C, W] {
	return TraverseIntoAnnotated(values, func(v Annotated[A, W], _ int) Annotated[A, W] { return v }, b)
}

// AllPropsAnnotated collects a string-keyed record of values, preserving
// keys. Keys are visited in sorted order, so log combination is
// deterministic.
func AllPropsAnnotated[W Semigroup[W], A any](props map[string]Annotated[A, W]) Annotated[map[string]A, W] {
	return RunAnnotated[W, map[string]A](propsComp(props, func(_ string, v Annotated[A, W]) Comp[A] {
		return YieldAnnotated(v)
	}))
}

// ForEachAnnotated applies f to each element for its effects, discarding
// values but still combining logs.
func ForEachAnnotated[W Semigroup[W], T any](elems []T, f func(T, int) Annotated[struct{}, W]) Annotated[struct{}, W] {
	return TraverseIntoAnnotated(elems, f, DiscardBuilder[struct{}]{})
}

// Lift2Annotated adapts a binary function to Annotated arguments,
// combining logs.
func Lift2Annotated[W Semigroup[W], A, B, C any](f func(A, B) C) func(Annotated[A, W], Annotated[B, W]) Annotated[C, W] {
	return func(x Annotated[A, W], y Annotated[B, W]) Annotated[C, W] {
		return RunAnnotated[W, C](Bind(YieldAnnotated(x), func(a A) Comp[C] {
			return Map(YieldAnnotated(y), func(b B) C { return f(a, b) })
		}))
	}
}

// Lift3Annotated adapts a ternary function to Annotated arguments,
// combining logs.
func Lift3Annotated[W Semigroup[W], A, B, C, D any](f func(A, B, C) D) func(Annotated[A, W], Annotated[B, W], Annotated[C, W]) Annotated[D, W] {
	return func(x Annotated[A, W], y Annotated[B, W], z Annotated[C, W]) Annotated[D, W] {
		return RunAnnotated[W, D](Bind(YieldAnnotated(x), func(a A) Comp[D] {
			return Bind(YieldAnnotated(y), func(b B) Comp[D] {
				return Map(YieldAnnotated(z), func(c C) D { return f(a, b, c) })
			})
		}))
	}
}

// TraverseIntoAnnotatedPar starts f's task for every element
// concurrently, filling the builder and combining logs in completion
// order.
func TraverseIntoAnnotatedPar[W Semigroup[W], T, A, C any](elems []T, f func(T, int) Task[Annotated[A, W]], b Builder[A, C]) Task[Annotated[C, W]] {
	return func() Annotated[C, W] {
		jobs := make([]parJob, len(elems))
		for i, el := range elems {
			i, el := i, el
			jobs[i] = parJob{index: i, run: func() any { return AnnotatedStep[A, W]{Value: f(el, i)()} }}
		}
		ev := &annotatedEvaluator[W]{}
		gather(ev, len(jobs), scatter(jobs), func(_ parResult, v Resumed) { b.Add(fromResumed[A](v)) })
		return annotatedOutcome(ev, b.Finish())
	}
}

// TraverseAnnotatedPar starts f's task for every element concurrently,
// restoring input order in the final slice; logs combine in completion
// order.
func TraverseAnnotatedPar[W Semigroup[W], T, A any](elems []T, f func(T, int) Task[Annotated[A, W]]) Task[Annotated[[]A, W]] {
	return func() Annotated[[]A, W] {
		jobs := make([]parJob, len(elems))
		for i, el := range elems {
			i, el := i, el
			jobs[i] = parJob{index: i, run: func() any { return AnnotatedStep[A, W]{Value: f(el, i)()} }}
		}
		ev := &annotatedEvaluator[W]{}
		b := NewIndexedBuilder[A](len(elems))
		gather(ev, len(jobs), scatter(jobs), func(r parResult, v Resumed) { b.Put(r.index, fromResumed[A](v)) })
		return annotatedOutcome(ev, b.Finish())
	}
}

// AllAnnotatedPar forces already-built tasks concurrently, restoring
// input order in the final slice.
func AllAnnotatedPar[W Semigroup[W], A any](tasks []Task[Annotated[A, W]]) Task[Annotated[[]A, W]] {
	return TraverseAnnotatedPar(tasks, func(t Task[Annotated[A, W]], _ int) Task[Annotated[A, W]] { return t })
}

// AllIntoAnnotatedPar forces already-built tasks concurrently, filling
// the builder in completion order.
func AllIntoAnnotatedPar[W Semigroup[W], A, C any](tasks []Task[Annotated[A, W]], b Builder[A, C]) Task[Annotated[C, W]] {
	return TraverseIntoAnnotatedPar(tasks, func(t Task[Annotated[A, W]], _ int) Task[Annotated[A, W]] { return t }, b)
}

// AllPropsAnnotatedPar forces a record of tasks concurrently, preserving
// keys in the final record; logs combine in completion order.
func AllPropsAnnotatedPar[W Semigroup[W], A any](props map[string]Task[Annotated[A, W]]) Task[Annotated[map[string]A, W]] {
	return func() Annotated[map[string]A, W] {
		jobs := make([]parJob, 0, len(props))
		for k, t := range props {
			t := t
			jobs = append(jobs, parJob{key: k, run: func() any { return AnnotatedStep[A, W]{Value: t()} }})
		}
		ev := &annotatedEvaluator[W]{}
		b := NewMapBuilder[A]()
		gather(ev, len(jobs), scatter(jobs), func(r parResult, v Resumed) {
			b.Add(Pair[string, A]{Fst: r.key, Snd: fromResumed[A](v)})
		})
		return annotatedOutcome(ev, b.Finish())
	}
}

// ForEachAnnotatedPar forces f's task for every element concurrently,
// discarding values but still combining logs.
func ForEachAnnotatedPar[W Semigroup[W], T any](elems []T, f func(T, int) Task[Annotated[struct{}, W]]) Task[Annotated[struct{}, W]] {
	return TraverseIntoAnnotatedPar(elems, f, DiscardBuilder[struct{}]{})
}
