// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Structured cleanup for comprehensions.
//
// A halting step abandons the rest of the comprehension, so cleanup must
// be declared as a step the evaluator can see. Ensuring and OnHalt wrap a
// body comprehension with a cleanup comprehension that the evaluator runs
// with the same family state. A terminating value yielded by the cleanup
// supersedes the one that triggered it for the fail-fast families; for
// These the left accumulators of the original halt and the cleanup halt
// are combined.

// ensureStep carries the body and cleanup comprehensions as start thunks;
// the evaluator runs both against its own state.
type ensureStep struct {
	body     func() Resumed
	cleanup  func() Resumed
	haltOnly bool
}

func ensureComp[A any](body Comp[A], cleanup Comp[struct{}], haltOnly bool) Comp[A] {
	return func(k func(A) Resumed) Resumed {
		m := acquireMarker()
		m.op = ensureStep{
			body:     func() Resumed { return body(toResumed[A]) },
			cleanup:  func() Resumed { return cleanup(toResumed[struct{}]) },
			haltOnly: haltOnly,
		}
		m.k = k
		m.resume = stepResume[A]
		return m
	}
}

// Ensuring runs cleanup after body, whether body completes or halts.
// The cleanup's return value is discarded; its yields are evaluated under
// the surrounding family policy.
func Ensuring[A any](body Comp[A], cleanup Comp[struct{}]) Comp[A] {
	return ensureComp(body, cleanup, false)
}

// OnHalt runs cleanup only when body halts on a terminating step.
// On completion the cleanup never runs.
func OnHalt[A any](body Comp[A], cleanup Comp[struct{}]) Comp[A] {
	return ensureComp(body, cleanup, true)
}
