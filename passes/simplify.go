// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import "github.com/dexlang-go/dexcore/toppass"

// Simplify constant-folds arithmetic over literals and inlines references
// to bindings already proven constant — either earlier in this module or
// in the ambient environment. It never fails: anything it cannot fold it
// leaves as-is.
func Simplify(m *Module) toppass.Pass[*Module] {
	return toppass.Bind(toppass.GetPureEnv[TopEnv](), func(env TopEnv) toppass.Pass[*Module] {
		locals := make(map[VarName]Expr, len(m.Bindings))
		out := make([]TBinding, 0, len(m.Bindings))
		for _, b := range m.Bindings {
			folded := foldExpr(b.Expr, locals, env)
			out = append(out, TBinding{Name: b.Name, Type: b.Type, Expr: folded})
			if isLiteral(folded) {
				locals[b.Name] = folded
			}
		}
		return toppass.Pure(&Module{Bindings: out})
	})
}

func isLiteral(e Expr) bool {
	switch e.(type) {
	case IntLit, BoolLit:
		return true
	default:
		return false
	}
}

func foldExpr(e Expr, locals map[VarName]Expr, env TopEnv) Expr {
	switch x := e.(type) {
	case Var:
		if lit, ok := locals[x.Name]; ok {
			return lit
		}
		if b, ok := env.Lookup(x.Name); ok && b.IsValue {
			return valueToLit(b.Value)
		}
		return x
	case BinOp:
		left := foldExpr(x.Left, locals, env)
		right := foldExpr(x.Right, locals, env)
		if li, ok := left.(IntLit); ok {
			if ri, ok := right.(IntLit); ok {
				return IntLit{Value: applyOp(x.Op, li.Value, ri.Value)}
			}
		}
		return BinOp{Op: x.Op, Left: left, Right: right}
	default:
		return e
	}
}

func applyOp(op string, l, r int64) int64 {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	default:
		return 0
	}
}

func valueToLit(v Value) Expr {
	if v.Type == BoolType {
		return BoolLit{Value: v.BoolVal}
	}
	return IntLit{Value: v.IntVal}
}
