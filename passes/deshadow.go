// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import "github.com/dexlang-go/dexcore/toppass"

// Deshadow renames top-level bindings so that every surface name reaching
// later passes is unique, whether the collision is with an earlier binding
// in the same module or with a name already bound in the ambient session
// environment. Bindings are walked in declaration order; each one either
// keeps its surface name or is given a fresh one, and references within
// later expressions are rewritten to
// follow whichever internal name is currently in scope for their surface
// name — the standard shadow-by-renaming transform that lets every
// subsequent pass assume names are globally distinct.
func Deshadow(m *FModule) toppass.Pass[*FModule] {
	return toppass.Bind(toppass.GetPureEnv[TopEnv](), func(env TopEnv) toppass.Pass[*FModule] {
		return toppass.Bind(toppass.GetPureState[toppass.FreshScope](), func(scope toppass.FreshScope) toppass.Pass[*FModule] {
			seen := make(map[VarName]VarName, len(m.Bindings))
			out := make([]FBinding, 0, len(m.Bindings))
			for _, b := range m.Bindings {
				rewritten := rewriteVars(b.Expr, seen)
				internal := b.Name
				_, envCollision := env.Lookup(b.Name)
				_, localCollision := seen[b.Name]
				if envCollision || localCollision {
					var fresh VarName
					fresh, scope = scope.Next(b.Name)
					internal = fresh
				}
				seen[b.Name] = internal
				out = append(out, FBinding{Name: internal, Expr: rewritten})
			}
			return toppass.Bind(toppass.PutPureState(scope), func(struct{}) toppass.Pass[*FModule] {
				return toppass.Pure(&FModule{Bindings: out})
			})
		})
	})
}

// rewriteVars replaces every Var whose surface name is in seen with a Var
// carrying its currently mapped internal name, preserving its Region.
// Names not yet in seen are left alone — they either resolve against the
// ambient environment or are genuinely unbound, a question for type-infer.
func rewriteVars(e Expr, seen map[VarName]VarName) Expr {
	switch x := e.(type) {
	case Var:
		if internal, ok := seen[x.Name]; ok {
			return Var{Name: internal, Region: x.Region}
		}
		return x
	case BinOp:
		return BinOp{Op: x.Op, Left: rewriteVars(x.Left, seen), Right: rewriteVars(x.Right, seen)}
	default:
		return e
	}
}
