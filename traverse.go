// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"slices"
)

// Sequential traversal engine.
//
// Every sequential combinator assembles one comprehension — a Bind chain
// over the elements — and runs the family evaluator exactly once, so
// short-circuiting, accumulation, and cleanup all follow the evaluator's
// policy. Step functions are invoked lazily inside the chain: a halt
// skips every later invocation, and partial builder state is never
// exposed because the builder finishes only on completion.

// reduceComp folds step over elems in iteration order, threading the
// accumulator through the comprehension.
func reduceComp[T, A any](elems []T, step func(A, T, int) Comp[A], initial A) Comp[A] {
	m := Pure(initial)
	for i, el := range elems {
		i, el := i, el
		prev := m
		m = Bind(prev, func(acc A) Comp[A] {
			return step(acc, el, i)
		})
	}
	return m
}

// traverseIntoComp applies step to each element with its 0-based index,
// in iteration order, adding each continue payload to the builder. The
// comprehension completes with the finished container.
func traverseIntoComp[T, A, C any](elems []T, step func(T, int) Comp[A], b Builder[A, C]) Comp[C] {
	m := Pure(struct{}{})
	for i, el := range elems {
		i, el := i, el
		prev := m
		m = Bind(prev, func(_ struct{}) Comp[struct{}] {
			return Map(step(el, i), func(a A) struct{} {
				b.Add(a)
				return struct{}{}
			})
		})
	}
	return Map(m, func(_ struct{}) C {
		return b.Finish()
	})
}

// sortedKeys returns the map's keys in sorted order. The sequential
// AllProps* combinators visit keys sorted so that the first terminating
// value is deterministic; map iteration order is randomized in Go.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// propsComp traverses keys in sorted order, pairing each continue payload
// with its key and building the result record.
func propsComp[V, A any](props map[string]V, step func(string, V) Comp[A]) Comp[map[string]A] {
	keys := sortedKeys(props)
	return traverseIntoComp(keys, func(k string, _ int) Comp[Pair[string, A]] {
		return Map(step(k, props[k]), func(a A) Pair[string, A] {
			return Pair[string, A]{Fst: k, Snd: a}
		})
	}, NewMapBuilder[A]())
}
