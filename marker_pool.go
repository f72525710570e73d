// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "sync"

var genericMarkerPool = sync.Pool{
	New: func() any { return new(genericMarker) },
}

// genericMarker is the pooled suspension record produced by the Yield*,
// Await*, and cleanup constructors. A marker is released back to the pool
// when resumed; a marker abandoned by a halting evaluator is released by
// the evaluator before it returns.
type genericMarker struct {
	op     any
	resume func(*genericMarker, Resumed) Resumed
	k      any
}

func (m *genericMarker) Op() any                  { return m.op }
func (m *genericMarker) Resume(v Resumed) Resumed { return m.resume(m, v) }
func (m *genericMarker) release()                 { releaseMarker(m) }

func acquireMarker() *genericMarker {
	return genericMarkerPool.Get().(*genericMarker)
}

func releaseMarker(m *genericMarker) {
	m.op = nil
	m.resume = nil
	m.k = nil
	genericMarkerPool.Put(m)
}
