// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes_test

import (
	"testing"

	"github.com/dexlang-go/dexcore/passes"
	"github.com/dexlang-go/dexcore/toppass"
)

func TestToImpLowersBindingsStructurally(t *testing.T) {
	m := &passes.Module{Bindings: []passes.TBinding{
		{Name: "x", Type: passes.IntType, Expr: passes.IntLit{Value: 1}},
		{Name: "y", Type: passes.IntType, Expr: passes.BinOp{Op: "+", Left: passes.Var{Name: "x"}, Right: passes.IntLit{Value: 2}}},
	}}

	either := toppass.EvalPass[passes.TopEnv, toppass.FreshScope, string, *passes.ImpModule](
		passes.EmptyTopEnv(), toppass.FreshScope{}, passes.ToImp(m))
	out, ok := either.GetRight()
	if !ok {
		t.Fatalf("ToImp failed unexpectedly: %v", either)
	}
	if len(out.Stmts) != len(m.Bindings) {
		t.Fatalf("got %d statements, want %d", len(out.Stmts), len(m.Bindings))
	}
	for i, b := range m.Bindings {
		s := out.Stmts[i]
		if s.Name != b.Name || s.Type != b.Type || s.Expr != b.Expr {
			t.Fatalf("statement %d does not structurally match its binding: got %+v from %+v", i, s, b)
		}
	}
}

func TestToImpNeverFails(t *testing.T) {
	either := toppass.EvalPass[passes.TopEnv, toppass.FreshScope, string, *passes.ImpModule](
		passes.EmptyTopEnv(), toppass.FreshScope{}, passes.ToImp(&passes.Module{}))
	if either.IsLeft() {
		t.Fatal("ToImp must never fail")
	}
}
