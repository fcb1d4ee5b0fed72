// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass

import "sync"

// genericMarker is the single suspension representation shared by every
// effect operation (Reader's Ask, the Accum effect's Contribute, Writer's
// Tell, Error's Throw/Catch). Pooling it keeps per-effect-step allocation
// out of the dispatch hot path; construction elsewhere in a pass may still
// allocate, but the suspend/resume cycle itself does not.
var genericMarkerPool = sync.Pool{
	New: func() any { return new(genericMarker) },
}

type genericMarker struct {
	op     Operation
	resume func(*genericMarker, Resumed) Resumed
	f      any
	k      any
}

func (m *genericMarker) Op() Operation            { return m.op }
func (m *genericMarker) Resume(v Resumed) Resumed { return m.resume(m, v) }

func acquireMarker() *genericMarker {
	return genericMarkerPool.Get().(*genericMarker)
}

func releaseMarker(m *genericMarker) {
	m.op = nil
	m.resume = nil
	m.f = nil
	m.k = nil
	genericMarkerPool.Put(m)
}
