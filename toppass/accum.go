// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass

import "github.com/IBM/fp-go/v2/monoid"

// Accum effect: a monoidal accumulator of type E, combined left-to-right by
// a caller-supplied Monoid instance rather than appended as a slice (that's
// the difference from Writer). This realizes the effect carrier's put-env
// primitive: every TopPass's delta environment is an Accum[Env]
// accumulation seeded at the environment's monoid identity.

// Contribute is the effect operation for combining a delta into the
// accumulator.
type Contribute[E any] struct{ Value E }

func (Contribute[E]) OpResult() struct{} { panic("phantom") }

// DispatchAccum handles Contribute in Accum handler dispatch.
func (o Contribute[E]) DispatchAccum(ctx *AccumContext[E]) (Resumed, bool) {
	ctx.Delta = ctx.M.Concat(ctx.Delta, o.Value)
	return struct{}{}, true
}

// AccumContext holds the running delta and the monoid combining it.
type AccumContext[E any] struct {
	M     monoid.Monoid[E]
	Delta E
}

// NewAccumContext seeds an AccumContext at the monoid's identity element.
func NewAccumContext[E any](m monoid.Monoid[E]) *AccumContext[E] {
	return &AccumContext[E]{M: m, Delta: m.Empty()}
}

// ContributeAccum fuses Contribute + Then: contributes a delta, then runs next.
func ContributeAccum[E, B any](delta E, next Cont[Resumed, B]) Cont[Resumed, B] {
	resume := thenMarkerResume[B]
	return func(k func(B) Resumed) Resumed {
		m := acquireMarker()
		m.op = Contribute[E]{Value: delta}
		m.f = next
		m.k = k
		m.resume = resume
		return m
	}
}
