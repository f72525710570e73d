// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Parallel traversal engine.
//
// A *Par combinator starts every per-element task on its own goroutine
// before folding any result, then folds results strictly in completion
// order: side-channel payloads (These lefts, Annotated logs) combine in
// completion order, completion-ordered builders see elements as they
// arrive, and order-restoring combinators write at the element's input
// position instead. The first terminating value to complete wins and the
// combinator returns immediately.
//
// Outstanding tasks are not cancelled; they run to completion into a
// buffered channel and their results are dropped unobserved. A panic in
// a task goroutine is forwarded and re-raised by the combinator — faults
// and results form one completion stream, so the first record to arrive
// decides the outcome, and a fault completing after the combinator has
// resolved is dropped exactly like a late result.

// parJob is one element computation: its input position, its record key
// (props traversals), and a thunk producing the family step operation.
type parJob struct {
	index int
	key   string
	run   func() any
}

// parResult is one completed element computation, or its fault.
type parResult struct {
	index   int
	key     string
	op      any
	fault   any
	faulted bool
}

// scatter starts one goroutine per job. The channel is buffered to the
// job count so stragglers never block after an early return.
func scatter(jobs []parJob) <-chan parResult {
	out := make(chan parResult, len(jobs))
	for _, j := range jobs {
		j := j
		go func() {
			defer func() {
				if r := recover(); r != nil {
					out <- parResult{index: j.index, key: j.key, fault: r, faulted: true}
				}
			}()
			out <- parResult{index: j.index, key: j.key, op: j.run()}
		}()
	}
	return out
}

// gather folds n results in completion order under the family policy.
// Returns true as soon as a step terminates; sink receives each continue
// payload together with its result record. Re-raises the first fault.
func gather[P evaluator](p P, n int, ch <-chan parResult, sink func(r parResult, payload Resumed)) bool {
	for i := 0; i < n; i++ {
		r := <-ch
		if r.faulted {
			panic(r.fault)
		}
		v, resume := p.dispatch(r.op)
		if !resume {
			return true
		}
		if sink != nil {
			sink(r, v)
		}
	}
	return false
}
