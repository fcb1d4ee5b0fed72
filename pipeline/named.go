// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"fmt"

	"github.com/dexlang-go/dexcore/dexcore"
	"github.com/dexlang-go/dexcore/dexerr"
	"github.com/dexlang-go/dexcore/passes"
	"github.com/dexlang-go/dexcore/toppass"
)

// Pretty is satisfied by every IR this core passes between stages. Every IR
// admits a total pretty-print.
type Pretty interface {
	Pretty() string
}

// NamedPureStage wraps a pure Pass-producing collaborator (deshadow,
// type-infer, normalize, simplify, to-imp) into a named top-level stage.
// The collaborator is lifted into the effect carrier with its own
// independent FreshScope — the pipeline never threads a shared scope
// across passes.
func NamedPureStage[In, Out Pretty](name string, f func(In) toppass.Pass[Out], check func(Out) *dexerr.Err) func(In) toppass.TopPass[Out] {
	lifted := func(input In) toppass.TopPass[Out] {
		return toppass.LiftTopPass[passes.TopEnv, toppass.FreshScope, dexerr.Err, Out](toppass.FreshScope{}, f(input))
	}
	return namedPass(name, lifted, check)
}

// NamedTopStage wraps a collaborator that is already an effectful top pass
// (eval-jit, the only stage that performs I/O) into a named top-level
// stage.
func NamedTopStage[In, Out Pretty](name string, f func(In) toppass.TopPass[Out], check func(Out) *dexerr.Err) func(In) toppass.TopPass[Out] {
	return namedPass(name, f, check)
}

// namedPass implements named-pass: run f, pretty-print and emit its output
// as a PassInfo, run check under a debug context naming the post-pass
// stage, and convert any hard host-level exception into a CompilerErr.
//
// Every stage suspends on an effect before its output exists (the pure
// stages on LiftTopPass's environment read, eval-jit on its PutEnv
// contribution), so the closure passed to toppass.Bind only runs once
// handleDispatch's trampoline resumes the stage — after the outer
// catchHardFailures' deferred recover has returned. The out.Pretty() call
// and the check therefore run under a second catchHardFailures of their
// own, so a panic from either also surfaces as a CompilerErr.
func namedPass[In, Out Pretty](name string, f func(In) toppass.TopPass[Out], check func(Out) *dexerr.Err) func(In) toppass.TopPass[Out] {
	return func(input In) toppass.TopPass[Out] {
		return catchHardFailures(name, input, func() toppass.TopPass[Out] {
			return toppass.Bind(f(input), func(out Out) toppass.TopPass[Out] {
				return catchHardFailures(name, input, func() toppass.TopPass[Out] {
					pretty := out.Pretty()
					return toppass.WriteOut[dexcore.Output, Out](
						dexcore.PassInfo{Stage: name, Pretty: pretty},
						checkedReturn(name, out, pretty, check),
					)
				})
			})
		})
	}
}

// checkedReturn runs check against out, if any, and fails with a
// debug-context-enriched error on violation.
func checkedReturn[Out any](name string, out Out, pretty string, check func(Out) *dexerr.Err) toppass.TopPass[Out] {
	if check == nil {
		return toppass.Return[toppass.Resumed](out)
	}
	if err := check(out); err != nil {
		enriched := AddDebugContext(name+" pass with input:\n"+pretty, *err)
		return toppass.Fail[dexerr.Err, Out](enriched)
	}
	return toppass.Return[toppass.Resumed](out)
}

// catchHardFailures recovers a panic escaping body and converts it into a
// CompilerErr carrying the panic's printable form plus the pass's name and
// pretty-printed input. It guards only the synchronous part of body; work
// that runs after body's computation suspends on an effect is outside this
// frame, which is why [namedPass] wraps its pretty-print step in a second
// call. That is how a latent structural error in a pass's output surfaces
// as a compiler error rather than an async crash.
func catchHardFailures[In Pretty, Out any](name string, input In, body func() toppass.TopPass[Out]) toppass.TopPass[Out] {
	return func(k func(Out) toppass.Resumed) (result toppass.Resumed) {
		defer func() {
			if r := recover(); r != nil {
				err := dexerr.New(dexerr.CompilerErr, fmt.Sprint(r))
				err = AddDebugContext(name+" pass with input:\n"+input.Pretty(), err)
				result = toppass.Fail[dexerr.Err, Out](err)(k)
			}
		}()
		return body()(k)
	}
}
