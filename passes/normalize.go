// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import "github.com/dexlang-go/dexcore/toppass"

// Normalize rewrites a typed Module into administrative normal form: every
// BinOp operand is an atom (a literal or a variable reference), with
// nested arithmetic lifted into fresh intermediate bindings ahead of the
// binding that uses them. Normalize consults no environment.
func Normalize(m *Module) toppass.Pass[*Module] {
	return toppass.Bind(toppass.GetPureState[toppass.FreshScope](), func(scope toppass.FreshScope) toppass.Pass[*Module] {
		out := make([]TBinding, 0, len(m.Bindings))
		for _, b := range m.Bindings {
			var extra []TBinding
			atomic := anf(b.Expr, &scope, &extra)
			out = append(out, extra...)
			out = append(out, TBinding{Name: b.Name, Type: b.Type, Expr: atomic})
		}
		return toppass.Bind(toppass.PutPureState(scope), func(struct{}) toppass.Pass[*Module] {
			return toppass.Pure(&Module{Bindings: out})
		})
	})
}

// anf flattens e's immediate BinOp operands, if any, leaving literals and
// variable references untouched.
func anf(e Expr, scope *toppass.FreshScope, extra *[]TBinding) Expr {
	x, ok := e.(BinOp)
	if !ok {
		return e
	}
	return BinOp{Op: x.Op, Left: anfOperand(x.Left, scope, extra), Right: anfOperand(x.Right, scope, extra)}
}

// anfOperand returns an atomic expression usable as a BinOp operand,
// recursively flattening and lifting a compound operand into a fresh
// intermediate binding appended to extra.
func anfOperand(e Expr, scope *toppass.FreshScope, extra *[]TBinding) Expr {
	x, ok := e.(BinOp)
	if !ok {
		return e
	}
	flattened := anf(x, scope, extra)
	name, next := scope.Next("anf")
	*scope = next
	*extra = append(*extra, TBinding{Name: name, Type: IntType, Expr: flattened})
	return Var{Name: name}
}
