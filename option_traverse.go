// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Traversal and aggregation combinators for the Option family.
// Sequential forms halt on the first None; Par forms return None as soon
// as the first absent result completes.

// ReduceOption folds step over elems in input order; the first None
// halts the fold.
func ReduceOption[T, A any](elems []T, step func(A, T, int) Option[A], initial A) Option[A] {
	return RunOption(reduceComp(elems, func(acc A, el T, i int) Comp[A] {
		return YieldOption(step(acc, el, i))
	}, initial))
}

// TraverseIntoOption applies f to each element with its index, adding
// each present payload to the builder. The first None halts.
func TraverseIntoOption[T, A, C any](elems []T, f func(T, int) Option[A], b Builder[A, C]) Option[C] {
	return RunOption(traverseIntoComp(elems, func(el T, i int) Comp[A] {
		return YieldOption(f(el, i))
	}, b))
}

// TraverseOption applies f to each element, collecting present payloads
// into a slice in input order.
func TraverseOption[T, A any](elems []T, f func(T, int) Option[A]) Option[[]A] {
	return TraverseIntoOption(elems, f, NewSliceBuilder[A]())
}

// AllOption collects already-built values: None wins, otherwise all
// payloads in input order.
func AllOption[A any](values []Option[A]) Option[[]A] {
	return TraverseOption(values, func(v Option[A], _ int) Option[A] { return v })
}

// AllIntoOption is AllOption with an explicit builder.
func AllIntoOption[A, C any](values []Option[A], b Builder[A, C]) Option[C] {
	return TraverseIntoOption(values, func(v Option[A], _ int) Option[A] { return v }, b)
}

// AllPropsOption collects a string-keyed record of values, preserving
// keys. Keys are visited in sorted order, so the first None is
// deterministic.
func AllPropsOption[A any](props map[string]Option[A]) Option[map[string]A] {
	return RunOption(propsComp(props, func(_ string, v Option[A]) Comp[A] {
		return YieldOption(v)
	}))
}

// ForEachOption applies f to each element for its effects, discarding
// payloads.
func ForEachOption[T any](elems []T, f func(T, int) Option[struct{}]) Option[struct{}] {
	return TraverseIntoOption(elems, f, DiscardBuilder[struct{}]{})
}

// Lift2Option adapts a binary function to Option arguments.
func Lift2Option[A, B, C any](f func(A, B) C) func(Option[A], Option[B]) Option[C] {
	return func(x Option[A], y Option[B]) Option[C] {
		return RunOption(Bind(YieldOption(x), func(a A) Comp[C] {
			return Map(YieldOption(y), func(b B) C { return f(a, b) })
		}))
	}
}

// Lift3Option adapts a ternary function to Option arguments.
func Lift3Option[A, B, C, D any](f func(A, B, C) D) func(Option[A], Option[B], Option[C]) Option[D] {
	return func(x Option[A], y Option[B], z Option[C]) Option[D] {
		return RunOption(Bind(YieldOption(x), func(a A) Comp[D] {
			return Bind(YieldOption(y), func(b B) Comp[D] {
				return Map(YieldOption(z), func(c C) D { return f(a, b, c) })
			})
		}))
	}
}

// TraverseIntoOptionPar starts f's task for every element concurrently
// and fills the builder in completion order. The first None to complete
// wins; remaining tasks keep running, their results discarded.
func TraverseIntoOptionPar[T, A, C any](elems []T, f func(T, int) Task[Option[A]], b Builder[A, C]) Task[Option[C]] {
	return func() Option[C] {
		jobs := make([]parJob, len(elems))
		for i, el := range elems {
			i, el := i, el
			jobs[i] = parJob{index: i, run: func() any { return OptionStep[A]{Value: f(el, i)()} }}
		}
		var ev optionEvaluator
		if gather(ev, len(jobs), scatter(jobs), func(_ parResult, v Resumed) { b.Add(fromResumed[A](v)) }) {
			return None[C]()
		}
		return Some(b.Finish())
	}
}

// TraverseOptionPar starts f's task for every element concurrently and
// restores input order in the final slice.
func TraverseOptionPar[T, A any](elems []T, f func(T, int) Task[Option[A]]) Task[Option[[]A]] {
	return func() Option[[]A] {
		jobs := make([]parJob, len(elems))
		for i, el := range elems {
			i, el := i, el
			jobs[i] = parJob{index: i, run: func() any { return OptionStep[A]{Value: f(el, i)()} }}
		}
		var ev optionEvaluator
		b := NewIndexedBuilder[A](len(elems))
		if gather(ev, len(jobs), scatter(jobs), func(r parResult, v Resumed) { b.Put(r.index, fromResumed[A](v)) }) {
			return None[[]A]()
		}
		return Some(b.Finish())
	}
}

// AllOptionPar forces already-built tasks concurrently, restoring input
// order in the final slice.
func AllOptionPar[A any](tasks []Task[Option[A]]) Task[Option[[]A]] {
	return TraverseOptionPar(tasks, func(t Task[Option[A]], _ int) Task[Option[A]] { return t })
}

// AllIntoOptionPar forces already-built tasks concurrently, filling the
// builder in completion order.
func AllIntoOptionPar[A, C any](tasks []Task[Option[A]], b Builder[A, C]) Task[Option[C]] {
	return TraverseIntoOptionPar(tasks, func(t Task[Option[A]], _ int) Task[Option[A]] { return t }, b)
}

// AllPropsOptionPar forces a record of tasks concurrently, preserving
// keys in the final record.
func AllPropsOptionPar[A any](props map[string]Task[Option[A]]) Task[Option[map[string]A]] {
	return func() Option[map[string]A] {
		jobs := make([]parJob, 0, len(props))
		for k, t := range props {
			t := t
			jobs = append(jobs, parJob{key: k, run: func() any { return OptionStep[A]{Value: t()} }})
		}
		var ev optionEvaluator
		b := NewMapBuilder[A]()
		if gather(ev, len(jobs), scatter(jobs), func(r parResult, v Resumed) {
			b.Add(Pair[string, A]{Fst: r.key, Snd: fromResumed[A](v)})
		}) {
			return None[map[string]A]()
		}
		return Some(b.Finish())
	}
}

// ForEachOptionPar forces f's task for every element concurrently,
// discarding payloads.
func ForEachOptionPar[T any](elems []T, f func(T, int) Task[Option[struct{}]]) Task[Option[struct{}]] {
	return TraverseIntoOptionPar(elems, f, DiscardBuilder[struct{}]{})
}
