// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import (
	"github.com/dexlang-go/dexcore/dexerr"
	"github.com/dexlang-go/dexcore/toppass"
)

// TypeInfer assigns a Type to every binding of a fully-deshadowed FModule,
// consulting the ambient environment for names not bound locally. It fails
// with UnboundVarErr, region attached, the moment it encounters a Var that
// resolves neither locally nor in env.
func TypeInfer(m *FModule) toppass.Pass[*Module] {
	return toppass.Bind(toppass.GetPureEnv[TopEnv](), func(env TopEnv) toppass.Pass[*Module] {
		locals := make(map[VarName]Type, len(m.Bindings))
		out := make([]TBinding, 0, len(m.Bindings))
		for _, b := range m.Bindings {
			t, err := inferType(b.Expr, locals, env)
			if err != nil {
				return toppass.FailPure[dexerr.Err, *Module](*err)
			}
			locals[b.Name] = t
			out = append(out, TBinding{Name: b.Name, Type: t, Expr: b.Expr})
		}
		return toppass.Pure(&Module{Bindings: out})
	})
}

func inferType(e Expr, locals map[VarName]Type, env TopEnv) (Type, *dexerr.Err) {
	switch x := e.(type) {
	case IntLit:
		return IntType, nil
	case BoolLit:
		return BoolType, nil
	case Var:
		if t, ok := locals[x.Name]; ok {
			return t, nil
		}
		if b, ok := env.Lookup(x.Name); ok {
			return b.Type, nil
		}
		err := dexerr.NewAt(dexerr.UnboundVarErr, x.Region, "unbound variable: "+x.Name)
		return 0, &err
	case BinOp:
		lt, err := inferType(x.Left, locals, env)
		if err != nil {
			return 0, err
		}
		rt, err := inferType(x.Right, locals, env)
		if err != nil {
			return 0, err
		}
		if lt != IntType || rt != IntType {
			err := dexerr.New(dexerr.TypeErr, "operator "+x.Op+" requires Int operands")
			return 0, &err
		}
		return IntType, nil
	default:
		err := dexerr.New(dexerr.CompilerErr, "type-infer: unrecognized expression form")
		return 0, &err
	}
}
