// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"slices"
	"testing"
	"time"

	"code.hybscloud.com/adt"
)

func TestTraverseEitherParRestoresInputOrder(t *testing.T) {
	second := make(chan struct{})
	task := adt.TraverseEitherPar([]int{1, 2}, func(x, i int) adt.Task[adt.Either[string, int]] {
		return func() adt.Either[string, int] {
			if i == 0 {
				<-second
			} else {
				defer close(second)
			}
			return adt.Right[string](x * 10)
		}
	})
	got := task()
	vs, ok := got.GetRight()
	if !ok || !slices.Equal(vs, []int{10, 20}) {
		t.Fatalf("the final slice should follow input order, got %v", got)
	}
}

func TestTraverseIntoEitherParFillsInCompletionOrder(t *testing.T) {
	second := make(chan struct{})
	task := adt.TraverseIntoEitherPar([]int{1, 2}, func(x, i int) adt.Task[adt.Either[string, int]] {
		return func() adt.Either[string, int] {
			if i == 0 {
				<-second
				time.Sleep(50 * time.Millisecond)
			} else {
				defer close(second)
			}
			return adt.Right[string](x * 10)
		}
	}, adt.NewSliceBuilder[int]())
	got := task()
	vs, ok := got.GetRight()
	if !ok || !slices.Equal(vs, []int{20, 10}) {
		t.Fatalf("an explicit builder should see elements in completion order, got %v", got)
	}
}

func TestTraverseEitherParFirstCompletedFailureWins(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	task := adt.TraverseEitherPar([]int{1, 2}, func(x, i int) adt.Task[adt.Either[string, int]] {
		return func() adt.Either[string, int] {
			if i == 0 {
				<-gate
				return adt.Left[string, int]("slow")
			}
			return adt.Left[string, int]("fast")
		}
	})
	got := task()
	if e, _ := got.GetLeft(); e != "fast" {
		t.Fatalf("the first failure to complete should win, got %v", got)
	}
}

func TestTraverseEitherParLateFailureStillWins(t *testing.T) {
	release := make(chan struct{})
	task := adt.TraverseEitherPar([]int{1, 2, 3}, func(x, i int) adt.Task[adt.Either[string, int]] {
		return func() adt.Either[string, int] {
			if i == 2 {
				<-release
				return adt.Left[string, int]("late")
			}
			defer func() {
				if i == 1 {
					close(release)
				}
			}()
			return adt.Right[string](x)
		}
	})
	got := task()
	if e, _ := got.GetLeft(); e != "late" {
		t.Fatalf("successes never terminate, so a failure wins whenever it arrives, got %v", got)
	}
}

func TestTraverseTheseParCombinesLeftsInCompletionOrder(t *testing.T) {
	second := make(chan struct{})
	task := adt.TraverseThesePar([]int{1, 2}, func(x, i int) adt.Task[adt.These[Log, int]] {
		return func() adt.These[Log, int] {
			if i == 0 {
				<-second
				time.Sleep(50 * time.Millisecond)
				return adt.Both[Log]("a", x)
			}
			defer close(second)
			return adt.Both[Log]("b", x)
		}
	})
	got := task()
	if !got.IsBoth() {
		t.Fatalf("got %v, want Both", got)
	}
	if e, _ := got.GetLeft(); e != "ba" {
		t.Fatalf("left payloads should combine in completion order, got %q", e)
	}
	vs, _ := got.GetRight()
	if !slices.Equal(vs, []int{1, 2}) {
		t.Fatalf("values should still follow input order, got %v", vs)
	}
}

func TestTraverseAnnotatedParCombinesLogsInCompletionOrder(t *testing.T) {
	second := make(chan struct{})
	task := adt.TraverseAnnotatedPar([]int{1, 2}, func(x, i int) adt.Task[adt.Annotated[int, Log]] {
		return func() adt.Annotated[int, Log] {
			if i == 0 {
				<-second
				time.Sleep(50 * time.Millisecond)
				return adt.Logged(x, Log("a"))
			}
			defer close(second)
			return adt.Logged(x, Log("b"))
		}
	})
	got := task()
	if w, _ := got.GetLog(); w != "ba" {
		t.Fatalf("logs should combine in completion order, got %q", w)
	}
	vs := got.Value()
	if !slices.Equal(vs, []int{1, 2}) {
		t.Fatalf("values should still follow input order, got %v", vs)
	}
}

func TestAllOptionPar(t *testing.T) {
	task := adt.AllOptionPar([]adt.Task[adt.Option[int]]{
		func() adt.Option[int] { return adt.Some(1) },
		func() adt.Option[int] { return adt.Some(2) },
	})
	got := task()
	vs, ok := got.Get()
	if !ok || !slices.Equal(vs, []int{1, 2}) {
		t.Fatalf("got %v, want Some([1 2])", got)
	}
}

func TestAllOptionParNoneTerminates(t *testing.T) {
	task := adt.AllOptionPar([]adt.Task[adt.Option[int]]{
		func() adt.Option[int] { return adt.Some(1) },
		func() adt.Option[int] { return adt.None[int]() },
	})
	if task().IsSome() {
		t.Fatalf("a None element should terminate the traversal")
	}
}

func TestAllPropsEitherParPreservesKeys(t *testing.T) {
	task := adt.AllPropsEitherPar(map[string]adt.Task[adt.Either[string, int]]{
		"x": func() adt.Either[string, int] { return adt.Right[string](1) },
		"y": func() adt.Either[string, int] { return adt.Right[string](2) },
	})
	got := task()
	m, ok := got.GetRight()
	if !ok || len(m) != 2 || m["x"] != 1 || m["y"] != 2 {
		t.Fatalf("got %v, want map[x:1 y:2]", got)
	}
}

func TestForEachEitherPar(t *testing.T) {
	task := adt.ForEachEitherPar([]int{1, 2, 3}, func(x, i int) adt.Task[adt.Either[string, struct{}]] {
		return func() adt.Either[string, struct{}] {
			return adt.Right[string](struct{}{})
		}
	})
	if !task().IsRight() {
		t.Fatalf("want Right")
	}
}

func TestParEmptyInput(t *testing.T) {
	got := adt.TraverseEitherPar(nil, func(x, i int) adt.Task[adt.Either[string, int]] {
		return func() adt.Either[string, int] { return adt.Right[string](x) }
	})()
	if vs, ok := got.GetRight(); !ok || len(vs) != 0 {
		t.Fatalf("an empty traversal should complete with an empty slice, got %v", got)
	}
}

func TestTraverseEitherParNilInterfacePayload(t *testing.T) {
	task := adt.TraverseEitherPar([]int{1, 2}, func(x, i int) adt.Task[adt.Either[string, error]] {
		return func() adt.Either[string, error] {
			return adt.Right[string, error](nil)
		}
	})
	got := task()
	vs, ok := got.GetRight()
	if !ok || len(vs) != 2 || vs[0] != nil || vs[1] != nil {
		t.Fatalf("a Right carrying a nil interface should flow into the slice, got %v", got)
	}
}

func TestTraverseIntoEitherParNilInterfacePayload(t *testing.T) {
	task := adt.TraverseIntoEitherPar([]int{1}, func(x, i int) adt.Task[adt.Either[string, error]] {
		return func() adt.Either[string, error] {
			return adt.Right[string, error](nil)
		}
	}, adt.NewSliceBuilder[error]())
	got := task()
	vs, ok := got.GetRight()
	if !ok || len(vs) != 1 || vs[0] != nil {
		t.Fatalf("a Right carrying a nil interface should flow into the builder, got %v", got)
	}
}

func TestParPanicIsForwarded(t *testing.T) {
	task := adt.TraverseEitherPar([]int{1}, func(x, i int) adt.Task[adt.Either[string, int]] {
		return func() adt.Either[string, int] { panic("boom") }
	})
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("a panicking task should re-panic in the caller")
		}
		if r != "boom" {
			t.Fatalf("the panic value should be forwarded, got %v", r)
		}
	}()
	task()
}
