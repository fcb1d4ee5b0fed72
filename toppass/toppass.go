// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass

import (
	"github.com/IBM/fp-go/v2/io"
	"github.com/IBM/fp-go/v2/monoid"
)

// TopPass is the effect carrier for a top-level pipeline stage: a
// computation over an ambient Env, an accumulated delta environment
// combined by Env's monoid, an ordered Output stream, and an Err
// short-circuit channel. It is realized directly as Cont[Resumed, A]; the
// type alias exists for readability at call sites.
type TopPass[A any] = Cont[Resumed, A]

// GetEnv reads the ambient environment (get-env).
func GetEnv[Env any]() TopPass[Env] {
	return Perform(Ask[Env]{})
}

// PutEnv contributes a delta to the environment accumulator, then runs next
// (put-env). The delta is combined into the running total via Env's monoid
// regardless of whether later stages fail — callers that need atomicity
// (e.g. [AndThen]) must gate the PutEnv call itself on success.
func PutEnv[Env, B any](delta Env, next TopPass[B]) TopPass[B] {
	return ContributeAccum(delta, next)
}

// WriteOut appends a value to the output stream, then runs next (write-out).
func WriteOut[Output, B any](o Output, next TopPass[B]) TopPass[B] {
	return TellWriter(o, next)
}

// Fail aborts the current pass with an error (fail).
func Fail[Err, A any](err Err) TopPass[A] {
	return ThrowError[Err, A](err)
}

// CatchTop runs body, recovering from a failure by invoking handler (catch).
func CatchTop[Err, A any](body TopPass[A], handler func(Err) TopPass[A]) TopPass[A] {
	return CatchError(body, handler)
}

// LiftIO embeds a host side effect into the pass (lift-io). The action runs
// exactly once, at the point the surrounding computation reaches it.
func LiftIO[A any](action io.IO[A]) TopPass[A] {
	return func(k func(A) Resumed) Resumed {
		return k(action())
	}
}

// runTopPassCore drives a TopPass to completion against a starting
// environment, returning the outcome, the accumulated delta, and the
// buffered outputs. The delta and outputs are always returned, even on
// failure — a failing pass still reports whatever it wrote before failing,
// while the caller decides whether to keep the delta.
func runTopPassCore[Env, Output, Err, A any](
	m monoid.Monoid[Env], env Env, comp TopPass[A],
) (Either[Err, A], Env, []Output) {
	var output []Output
	accum := NewAccumContext(m)
	h := &topPassHandler[Env, Output, Err, A]{
		env:    &env,
		accum:  accum,
		writer: &WriterContext[Output]{Output: &output},
		ctx:    &ErrorContext[Err]{},
	}
	result := comp(rightCont[Err, A])
	either := handleDispatch[*topPassHandler[Env, Output, Err, A], Either[Err, A]](result, h)
	return either, accum.Delta, output
}

// RunTopPass runs a top-level pass to completion, flushing its buffered
// outputs to sink in emission order before returning (run). sink is called
// once per output, even when the pass ultimately fails.
func RunTopPass[Env, Output, Err, A any](
	sink func(Output), m monoid.Monoid[Env], env Env, comp TopPass[A],
) (Either[Err, A], Env) {
	either, delta, output := runTopPassCore[Env, Output, Err, A](m, env, comp)
	for _, o := range output {
		sink(o)
	}
	return either, delta
}
