// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass

// Pass is the pure counterpart to [TopPass]: a computation over a
// read-only Env, mutable State, and a fallible Err channel, with no I/O
// and no Output accumulation. Passes whose bookkeeping (e.g. a fresh-name
// counter) must not leak into the top-level environment are written as
// Pass[A], with Env and State supplied as type arguments of [RunPass],
// [EvalPass] or [LiftTopPass], and lifted in with [LiftTopPass].
type Pass[A any] = Cont[Resumed, A]

// GetPureEnv reads the ambient environment inside a pure pass.
func GetPureEnv[Env any]() Pass[Env] {
	return Perform(Ask[Env]{})
}

// GetPureState reads the current mutable state.
func GetPureState[St any]() Pass[St] {
	return Perform(Get[St]{})
}

// PutPureState replaces the mutable state.
func PutPureState[St any](s St) Pass[struct{}] {
	return Perform(Put[St]{Value: s})
}

// FailPure aborts the pure pass with an error.
func FailPure[Err, A any](err Err) Pass[A] {
	return ThrowError[Err, A](err)
}

// FreshScope is a monotonic generator of unique names, threaded as a
// value. It is not a shared resource: each pure pass owns its own
// derivation — the zero value is a valid starting scope — and Next returns
// both the fresh name and the advanced scope.
type FreshScope struct {
	next uint64
}

// Next returns a name of the form "<hint>$<n>", unique within this scope's
// lineage, and the scope advanced past it.
func (s FreshScope) Next(hint string) (string, FreshScope) {
	n := s.next
	name := hint + "$" + uitoa(n)
	return name, FreshScope{next: n + 1}
}

// uitoa formats n without importing strconv, matching the small-surface
// style of the rest of this package.
func uitoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// RunPass evaluates a pure pass deterministically against env and an
// initial state, returning the terminal outcome and the final state
// (run-pass).
func RunPass[Env, St, Err, A any](env Env, state St, m Pass[A]) (Either[Err, A], St) {
	return runPurePass[Env, St, Err, A](env, state, m)
}

// EvalPass runs a pure pass and discards the final state (eval-pass).
func EvalPass[Env, St, Err, A any](env Env, state St, m Pass[A]) Either[Err, A] {
	either, _ := runPurePass[Env, St, Err, A](env, state, m)
	return either
}

// LiftTopPass lifts a pure pass into a [TopPass] (lift-top-pass): it
// reads the ambient environment, runs the pure pass against it and the
// given initial state, and folds the result or error back into the top
// pass's effect carrier. A pure pass contributes no delta and writes no
// Output — its bookkeeping state never leaks past this boundary.
func LiftTopPass[Env, St, Err, A any](state St, m Pass[A]) TopPass[A] {
	return Bind(GetEnv[Env](), func(env Env) TopPass[A] {
		either := EvalPass[Env, St, Err, A](env, state, m)
		left, failed := either.GetLeft()
		if failed {
			return Fail[Err, A](left)
		}
		a, _ := either.GetRight()
		return Return[Resumed](a)
	})
}
