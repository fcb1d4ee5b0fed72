// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass

import "github.com/IBM/fp-go/v2/monoid"

// flushOutputs re-emits a stage's buffered outputs into the enclosing
// WriteOut chain before continuing with rest. Outputs are forwarded
// unconditionally — even when rest goes on to fail — so a pass's diagnostic
// output always reaches the caller.
func flushOutputs[Output, C any](outputs []Output, rest func() TopPass[C]) TopPass[C] {
	if len(outputs) == 0 {
		return rest()
	}
	return WriteOut(outputs[0], flushOutputs(outputs[1:], rest))
}

// AndThen composes two top passes operating over independent environment
// types into a single pass over their product Pair[E1, E2] — the `>+>`
// env-composition combinator. The combined environment's monoid is
// [PairMonoid] of m1 and m2.
//
// Running AndThen(m1, f1, m2, f2)(x):
//   - runs f1 against the E1 half of the ambient environment;
//   - forwards f1's outputs regardless of outcome;
//   - on f1 failure, fails the whole computation without contributing any
//     delta (atomicity);
//   - otherwise runs f2 against the E2 half, forwards its outputs, and on
//     success contributes Pair{delta1, delta2} as a single PutEnv.
//
// Neither stage's delta is visible to the other; f2 runs against the
// ambient E2 value, not against f1's delta. Callers needing delta1 visible
// to f2 should fold it into the ambient environment beforehand.
func AndThen[E1, E2, Output, Err, A, B, C any](
	m1 monoid.Monoid[E1], f1 func(A) TopPass[B],
	m2 monoid.Monoid[E2], f2 func(B) TopPass[C],
) func(A) TopPass[C] {
	return func(x A) TopPass[C] {
		return Bind(GetEnv[Pair[E1, E2]](), func(envs Pair[E1, E2]) TopPass[C] {
			either1, delta1, outputs1 := runTopPassCore[E1, Output, Err, B](m1, envs.Fst, f1(x))
			return flushOutputs(outputs1, func() TopPass[C] {
				left1, failed := either1.GetLeft()
				if failed {
					return Fail[Err, C](left1)
				}
				y, _ := either1.GetRight()
				either2, delta2, outputs2 := runTopPassCore[E2, Output, Err, C](m2, envs.Snd, f2(y))
				return flushOutputs(outputs2, func() TopPass[C] {
					left2, failed2 := either2.GetLeft()
					if failed2 {
						return Fail[Err, C](left2)
					}
					z, _ := either2.GetRight()
					return PutEnv(Pair[E1, E2]{Fst: delta1, Snd: delta2}, Return[Resumed](z))
				})
			})
		})
	}
}
