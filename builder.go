// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Builder is the accumulator capability that decouples traversal
// algorithms from concrete container types: Add appends one element,
// Finish returns the accumulated container.
//
// A Builder instance is exclusively owned by the single traversal
// invocation that created it. Add after Finish is not guarded.
type Builder[T, C any] interface {
	Add(T)
	Finish() C
}

// SliceBuilder accumulates elements into a slice in Add order.
type SliceBuilder[T any] struct {
	buf []T
}

// NewSliceBuilder creates an empty slice builder.
func NewSliceBuilder[T any]() *SliceBuilder[T] {
	return &SliceBuilder[T]{}
}

// Add appends one element.
func (b *SliceBuilder[T]) Add(v T) {
	b.buf = append(b.buf, v)
}

// Finish returns the accumulated slice.
func (b *SliceBuilder[T]) Finish() []T {
	return b.buf
}

// IndexedBuilder accumulates elements into a pre-sized slice.
// Put writes at an explicit position; the order-restoring Par variants
// use it to rebuild input order from completion-ordered results.
// Add writes at an internal cursor, making it usable as a plain Builder.
type IndexedBuilder[T any] struct {
	buf  []T
	next int
}

// NewIndexedBuilder creates a builder over a slice of n zero elements.
func NewIndexedBuilder[T any](n int) *IndexedBuilder[T] {
	return &IndexedBuilder[T]{buf: make([]T, n)}
}

// Put writes one element at position i.
func (b *IndexedBuilder[T]) Put(i int, v T) {
	b.buf[i] = v
}

// Add writes one element at the cursor position and advances it.
func (b *IndexedBuilder[T]) Add(v T) {
	b.buf[b.next] = v
	b.next++
}

// Finish returns the accumulated slice.
func (b *IndexedBuilder[T]) Finish() []T {
	return b.buf
}

// MapBuilder accumulates key/value pairs into a string-keyed map.
type MapBuilder[V any] struct {
	m map[string]V
}

// NewMapBuilder creates an empty map builder.
func NewMapBuilder[V any]() *MapBuilder[V] {
	return &MapBuilder[V]{m: make(map[string]V)}
}

// Add assigns one key/value pair.
func (b *MapBuilder[V]) Add(p Pair[string, V]) {
	b.m[p.Fst] = p.Snd
}

// Finish returns the accumulated map.
func (b *MapBuilder[V]) Finish() map[string]V {
	return b.m
}

// DiscardBuilder drops every element; ForEach-style traversals use it.
type DiscardBuilder[T any] struct{}

// Add discards the element.
func (DiscardBuilder[T]) Add(T) {}

// Finish returns the unit value.
func (DiscardBuilder[T]) Finish() struct{} {
	return struct{}{}
}
