// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import "github.com/dexlang-go/dexcore/dexerr"

// Expr is the closed set of expression forms this fragment supports.
type Expr interface {
	expr()
	Pretty() string
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

func (IntLit) expr()            {}
func (e IntLit) Pretty() string { return IntValue(e.Value).Pretty() }

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
}

func (BoolLit) expr()            {}
func (e BoolLit) Pretty() string { return BoolValue(e.Value).Pretty() }

// Var is a reference to a name, either a sibling top-level binding or one
// inherited from the ambient environment. Region carries the byte range of
// the occurrence in the source block's text, used to highlight an
// UnboundVarErr with the offending identifier.
type Var struct {
	Name   VarName
	Region dexerr.Region
}

func (Var) expr()            {}
func (v Var) Pretty() string { return v.Name }

// BinOp is one of the three arithmetic operators over two sub-expressions.
type BinOp struct {
	Op          string // "+", "-", "*"
	Left, Right Expr
}

func (BinOp) expr() {}
func (b BinOp) Pretty() string {
	return "(" + b.Left.Pretty() + " " + b.Op + " " + b.Right.Pretty() + ")"
}
