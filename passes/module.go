// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import "strings"

// FBinding is one top-level binding in an FModule: a surface name bound to
// an expression, not yet typed.
type FBinding struct {
	Name VarName
	Expr Expr
}

// FModule is the front-end IR, post-parse and post-deshadow: an ordered
// list of top-level bindings whose names are unique (the deshadow
// invariant checked by check-fmodule).
type FModule struct {
	Bindings []FBinding
}

// Pretty renders the module as a sequence of "name := expr" lines, in
// declaration order. Every IR admits a total pretty-print.
func (m *FModule) Pretty() string {
	var b strings.Builder
	for _, bind := range m.Bindings {
		b.WriteString(bind.Name)
		b.WriteString(" := ")
		b.WriteString(bind.Expr.Pretty())
		b.WriteString("\n")
	}
	return b.String()
}

// TBinding is one top-level binding in a typed Module.
type TBinding struct {
	Name VarName
	Type Type
	Expr Expr
}

// Module is the core-typed IR. The same struct is reused, in place, for
// both the normalized (ANF) and simplified forms — normalize and simplify
// rewrite Bindings without changing the shape of Module itself, since this
// fragment has no control flow to canonicalize beyond flattening nested
// arithmetic.
type Module struct {
	Bindings []TBinding
}

// Pretty renders the module as a sequence of "name : type := expr" lines.
func (m *Module) Pretty() string {
	var b strings.Builder
	for _, bind := range m.Bindings {
		b.WriteString(bind.Name)
		b.WriteString(" : ")
		b.WriteString(bind.Type.String())
		b.WriteString(" := ")
		b.WriteString(bind.Expr.Pretty())
		b.WriteString("\n")
	}
	return b.String()
}

// ImpStmt is one statement of an ImpModule: an explicit, already-evaluable
// memory operation assigning name the result of evaluating expr under no
// further lambdas or nested scopes.
type ImpStmt struct {
	Name VarName
	Type Type
	Expr Expr
}

// ImpModule is the imperative lowering of a Module: a flat statement
// sequence with no lambdas, ready for eval-jit. Like FModule and Module,
// it admits a pretty-print and a checker (check-imp-module), which the
// driver runs after imperative lowering, before eval-jit.
type ImpModule struct {
	Stmts []ImpStmt
}

// Pretty renders the module as a sequence of imperative assignment lines.
func (m *ImpModule) Pretty() string {
	var b strings.Builder
	for _, s := range m.Stmts {
		b.WriteString(s.Name)
		b.WriteString(" : ")
		b.WriteString(s.Type.String())
		b.WriteString(" = ")
		b.WriteString(s.Expr.Pretty())
		b.WriteString("\n")
	}
	return b.String()
}
