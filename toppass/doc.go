// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package toppass provides the effect-carrier abstraction that every
// compiler pass in this module is built on: a continuation-passing
// computation that can read an ambient environment, contribute a delta
// into a monoidal accumulator, emit an ordered stream of outputs, and
// fail with a structured error — or recover from one.
//
// # Core type
//
// [Cont] is the continuation monad at the bottom of the stack:
//
//	type Cont[R, A any] func(k func(A) R) R
//
// [TopPass] specializes it to a concrete effect carrier: environment read,
// delta write, output write, and fallible computation, composed from
// [Cont] via an effect-handler dispatch loop in the same style as an
// algebraic-effects library.
//
// # Fixed operations
//
//   - [GetEnv]: read the ambient environment
//   - [PutEnv]: contribute a delta (combined via the environment's monoid)
//   - [WriteOut]: append one output
//   - [Fail]: short-circuit with an error
//   - [CatchTop]: recover from a failure
//   - [LiftIO]: embed a synchronous side-effecting action
//   - [RunTopPass]: the sole execution boundary
//
// # Pure passes
//
// [Pass] is the parallel pure variant: environment + mutable state +
// fresh-name supply + failure, without I/O or output accumulation. See
// [RunPass], [EvalPass], and [LiftTopPass].
//
// # Env composition
//
// [AndThen] implements the `>+>` combinator: it sequences two top passes
// that operate over independent environments into one pass over their
// product, forwarding outputs in order and failing atomically.
package toppass
