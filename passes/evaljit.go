// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import (
	"github.com/IBM/fp-go/v2/io"

	"github.com/dexlang-go/dexcore/toppass"
)

// EvalJit is the terminal stage of eval-typed: it evaluates a lowered
// ImpModule to completion and contributes the resulting bindings as the
// session environment's delta. It uses no env of its own and is the only
// stage that emits I/O. The evaluation itself is wrapped in lift-io,
// standing in for an actual JIT compile-and-run step — the only
// suspension point this core's staged pipeline has.
//
// By the time a module reaches eval-jit, Simplify has already folded every
// reference to an environment binding into a literal, so evaluation here
// never needs to consult TopEnv — only the bindings introduced earlier in
// the same ImpModule.
func EvalJit(im *ImpModule) toppass.TopPass[TopEnv] {
	return toppass.Bind(
		toppass.LiftIO[TopEnv](io.IO[TopEnv](func() TopEnv { return evalImpModule(im) })),
		func(delta TopEnv) toppass.TopPass[TopEnv] {
			return toppass.PutEnv(delta, toppass.Return[toppass.Resumed](delta))
		},
	)
}

func evalImpModule(im *ImpModule) TopEnv {
	locals := make(map[VarName]Value, len(im.Stmts))
	delta := EmptyTopEnv()
	for _, s := range im.Stmts {
		v := evalExprValue(s.Expr, locals)
		locals[s.Name] = v
		delta = delta.With(s.Name, ValueBinding(v))
	}
	return delta
}

func evalExprValue(e Expr, locals map[VarName]Value) Value {
	switch x := e.(type) {
	case IntLit:
		return IntValue(x.Value)
	case BoolLit:
		return BoolValue(x.Value)
	case Var:
		return locals[x.Name]
	case BinOp:
		l := evalExprValue(x.Left, locals)
		r := evalExprValue(x.Right, locals)
		return IntValue(applyOp(x.Op, l.IntVal, r.IntVal))
	default:
		return Value{}
	}
}
