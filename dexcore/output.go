// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dexcore

import "github.com/dexlang-go/dexcore/passes"

// Output is the closed variant of records a block evaluation accumulates:
// a value print, a plain-text line, or a pass's pretty-printed result.
// Outputs are ordered by pass execution order and, within a pass, by
// emission order.
type Output interface {
	output()
}

// ValOut carries a formatted, realized runtime value — the result of
// Command(EvalExpr(format), ...).
type ValOut struct {
	Format string
	Value  passes.Value
}

func (ValOut) output() {}

// TextOut carries a plain-text line — the result of Command(GetType, ...).
type TextOut struct {
	Text string
}

func (TextOut) output() {}

// PassInfo records one pass's name and pretty-printed result, emitted by
// named-pass after every stage.
type PassInfo struct {
	Stage  string
	Pretty string
}

func (PassInfo) output() {}
