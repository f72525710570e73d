// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Traversal and aggregation combinators for the Either family.
// Sequential forms process elements in input order and halt on the first
// Left. Par forms start all element tasks concurrently; the first Left
// to complete wins, and the non-indexed forms fill their builder in
// completion order.

// ReduceEither folds step over elems in input order, threading the
// accumulator through the evaluator. The first Left halts the fold.
func ReduceEither[E, T, A any](elems []T, step func(A, T, int) Either[E, A], initial A) Either[E, A] {
	return RunEither[E, A](reduceComp(elems, func(acc A, el T, i int) Comp[A] {
		return YieldEither(step(acc, el, i))
	}, initial))
}

// TraverseIntoEither applies f to each element with its index, adding
// each Right payload to the builder. The first Left is returned as-is.
func TraverseIntoEither[E, T, A, C any](elems []T, f func(T, int) Either[E, A], b Builder[A, C]) Either[E, C] {
	return RunEither[E, C](traverseIntoComp(elems, func(el T, i int) Comp[A] {
		return YieldEither(f(el, i))
	}, b))
}

// TraverseEither applies f to each element, collecting Right payloads
// into a slice in input order.
func TraverseEither[E, T, A any](elems []T, f func(T, int) Either[E, A]) Either[E, []A] {
	return TraverseIntoEither(elems, f, NewSliceBuilder[A]())
}

// AllEither collects already-built values: the first Left wins, otherwise
// all Right payloads in input order.
func AllEither[E, A any](values []Either[E, A]) Either[E, []A] {
	return TraverseEither(values, func(v Either[E, A], _ int) Either[E, A] { return v })
}

// AllIntoEither is AllEither with an explicit builder.
func AllIntoEither[E, A, C any](values []Either[E, A], b Builder[A, C]) Either[E, C] {
	return TraverseIntoEither(values, func(v Either[E, A], _ int) Either[E, A] { return v }, b)
}

// AllPropsEither collects a string-keyed record of values into a record
// of Right payloads, preserving keys. Keys are visited in sorted order,
// so the first Left is deterministic.
func AllPropsEither[E, A any](props map[string]Either[E, A]) Either[E, map[string]A] {
	return RunEither[E, map[string]A](propsComp(props, func(_ string, v Either[E, A]) Comp[A] {
		return YieldEither(v)
	}))
}

// ForEachEither applies f to each element for its effects, discarding
// payloads. Returns the unit success, or the first Left.
func ForEachEither[E, T any](elems []T, f func(T, int) Either[E, struct{}]) Either[E, struct{}] {
	return TraverseIntoEither(elems, f, DiscardBuilder[struct{}]{})
}

// Lift2Either adapts a binary function to Either arguments.
func Lift2Either[E, A, B, C any](f func(A, B) C) func(Either[E, A], Either[E, B]) Either[E, C] {
	return func(x Either[E, A], y Either[E, B]) Either[E, C] {
		return RunEither[E, C](Bind(YieldEither(x), func(a A) Comp[C] {
			return Map(YieldEither(y), func(b B) C { return f(a, b) })
		}))
	}
}

// Lift3Either adapts a ternary function to Either arguments.
func Lift3Either[E, A, B, C, D any](f func(A, B, C) D) func(Either[E, A], Either[E, B], Either[E, C]) Either[E, D] {
	return func(x Either[E, A], y Either[E, B], z Either[E, C]) Either[E, D] {
		return RunEither[E, D](Bind(YieldEither(x), func(a A) Comp[D] {
			return Bind(YieldEither(y), func(b B) Comp[D] {
				return Map(YieldEither(z), func(c C) D { return f(a, b, c) })
			})
		}))
	}
}

// TraverseIntoEitherPar starts f's task for every element concurrently
// and fills the builder in completion order. The first Left to complete
// wins; remaining tasks keep running, their results discarded.
func TraverseIntoEitherPar[E, T, A, C any](elems []T, f func(T, int) Task[Either[E, A]], b Builder[A, C]) Task[Either[E, C]] {
	return func() Either[E, C] {
		jobs := make([]parJob, len(elems))
		for i, el := range elems {
			i, el := i, el
			jobs[i] = parJob{index: i, run: func() any { return EitherStep[E, A]{Value: f(el, i)()} }}
		}
		ev := &eitherEvaluator[E]{}
		if gather(ev, len(jobs), scatter(jobs), func(_ parResult, v Resumed) { b.Add(fromResumed[A](v)) }) {
			return Left[E, C](ev.err)
		}
		return Right[E](b.Finish())
	}
}

// TraverseEitherPar starts f's task for every element concurrently and
// restores input order in the final slice despite completion-order
// resolution.
func TraverseEitherPar[E, T, A any](elems []T, f func(T, int) Task[Either[E, A]]) Task[Either[E, []A]] {
	return func() Either[E, []A] {
		jobs := make([]parJob, len(elems))
		for i, el := range elems {
			i, el := i, el
			jobs[i] = parJob{index: i, run: func() any { return EitherStep[E, A]{Value: f(el, i)()} }}
		}
		ev := &eitherEvaluator[E]{}
		b := NewIndexedBuilder[A](len(elems))
		if gather(ev, len(jobs), scatter(jobs), func(r parResult, v Resumed) { b.Put(r.index, fromResumed[A](v)) }) {
			return Left[E, []A](ev.err)
		}
		return Right[E](b.Finish())
	}
}

// AllEitherPar forces already-built tasks concurrently, restoring input
// order in the final slice.
func AllEitherPar[E, A any](tasks []Task[Either[E, A]]) Task[Either[E, []A]] {
	return TraverseEitherPar(tasks, func(t Task[Either[E, A]], _ int) Task[Either[E, A]] { return t })
}

// AllIntoEitherPar forces already-built tasks concurrently, filling the
// builder in completion order.
func AllIntoEitherPar[E, A, C any](tasks []Task[Either[E, A]], b Builder[A, C]) Task[Either[E, C]] {
	return TraverseIntoEitherPar(tasks, func(t Task[Either[E, A]], _ int) Task[Either[E, A]] { return t }, b)
}

// AllPropsEitherPar forces a record of tasks concurrently, preserving
// keys in the final record.
func AllPropsEitherPar[E, A any](props map[string]Task[Either[E, A]]) Task[Either[E, map[string]A]] {
	return func() Either[E, map[string]A] {
		jobs := make([]parJob, 0, len(props))
		for k, t := range props {
			t := t
			jobs = append(jobs, parJob{key: k, run: func() any { return EitherStep[E, A]{Value: t()} }})
		}
		ev := &eitherEvaluator[E]{}
		b := NewMapBuilder[A]()
		if gather(ev, len(jobs), scatter(jobs), func(r parResult, v Resumed) {
			b.Add(Pair[string, A]{Fst: r.key, Snd: fromResumed[A](v)})
		}) {
			return Left[E, map[string]A](ev.err)
		}
		return Right[E](b.Finish())
	}
}

// ForEachEitherPar forces f's task for every element concurrently,
// discarding payloads.
func ForEachEitherPar[E, T any](elems []T, f func(T, int) Task[Either[E, struct{}]]) Task[Either[E, struct{}]] {
	return TraverseIntoEitherPar(elems, f, DiscardBuilder[struct{}]{})
}
