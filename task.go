// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Task is a deferred computation producing a value of type A when forced.
// Tasks carry no cancellation or timeout: forcing a task that never
// returns stalls its caller indefinitely.
type Task[A any] func() A

// TaskOf lifts a plain value into an already-decided task.
func TaskOf[A any](a A) Task[A] {
	return func() A { return a }
}

// MapTask applies a function to the result of a task when forced.
func MapTask[A, B any](t Task[A], f func(A) B) Task[B] {
	return func() B { return f(t()) }
}

// BindTask sequences two tasks: t is forced first, then f's task.
func BindTask[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return func() B { return f(t())() }
}
