// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import "github.com/dexlang-go/dexcore/dexerr"

// CheckFModule verifies the deshadow invariant: every binding name in m is
// unique. It does not consult the ambient environment — unresolved
// references are type-infer's concern, not deshadow's.
func CheckFModule(m *FModule) *dexerr.Err {
	seen := make(map[VarName]bool, len(m.Bindings))
	for _, b := range m.Bindings {
		if seen[b.Name] {
			err := dexerr.New(dexerr.CompilerErr, "deshadow invariant violated: duplicate name "+b.Name)
			return &err
		}
		seen[b.Name] = true
	}
	return nil
}

// CheckModule verifies the typed-IR invariant: names remain unique, and
// every binding's declared Type agrees with its expression's structural
// type under the bindings declared so far. It exists to catch a bug in
// normalize or simplify rewriting an expression into a shape inconsistent
// with its binding's Type, independent of type-infer having gotten it
// right the first time.
func CheckModule(m *Module) *dexerr.Err {
	locals := make(map[VarName]Type, len(m.Bindings))
	for _, b := range m.Bindings {
		t, err := checkExprType(b.Expr, b.Type, locals)
		if err != nil {
			return err
		}
		if t != b.Type {
			e := dexerr.New(dexerr.CompilerErr, "binding "+b.Name+" declared "+b.Type.String()+" but expression is "+t.String())
			return &e
		}
		locals[b.Name] = b.Type
	}
	return nil
}

// CheckImpModule verifies the imperative-lowering invariant: statement
// order still type-checks locally, the same way CheckModule does for
// Module. eval-jit has no checker of its own, so this is the last
// structural guard before JIT evaluation.
func CheckImpModule(m *ImpModule) *dexerr.Err {
	locals := make(map[VarName]Type, len(m.Stmts))
	for _, s := range m.Stmts {
		t, err := checkExprType(s.Expr, s.Type, locals)
		if err != nil {
			return err
		}
		if t != s.Type {
			e := dexerr.New(dexerr.CompilerErr, "statement "+s.Name+" declared "+s.Type.String()+" but expression is "+t.String())
			return &e
		}
		locals[s.Name] = s.Type
	}
	return nil
}

// checkExprType computes e's structural type against locals only (no
// ambient environment — checkers run after deshadow/type-infer have
// already resolved every reference, and exist only to catch internal
// miscompilation, not user errors).
func checkExprType(e Expr, want Type, locals map[VarName]Type) (Type, *dexerr.Err) {
	switch x := e.(type) {
	case IntLit:
		return IntType, nil
	case BoolLit:
		return BoolType, nil
	case Var:
		if t, ok := locals[x.Name]; ok {
			return t, nil
		}
		// Not locally bound: trust the declared type. Checkers run without
		// env access, so a reference resolved against the session
		// environment by type-infer cannot be re-verified here.
		return want, nil
	case BinOp:
		lt, err := checkExprType(x.Left, IntType, locals)
		if err != nil {
			return 0, err
		}
		rt, err := checkExprType(x.Right, IntType, locals)
		if err != nil {
			return 0, err
		}
		if lt != IntType || rt != IntType {
			e := dexerr.New(dexerr.CompilerErr, "operator "+x.Op+" requires Int operands")
			return 0, &e
		}
		return IntType, nil
	default:
		e := dexerr.New(dexerr.CompilerErr, "unrecognized expression form")
		return 0, &e
	}
}
