// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package passes

import "github.com/dexlang-go/dexcore/toppass"

// ToImp lowers a simplified Module into an ImpModule: a flat sequence of
// imperative assignments. This fragment has no lambdas to eliminate, so
// lowering is a direct, effect-free copy: it consults no env and emits no
// I/O.
func ToImp(m *Module) toppass.Pass[*ImpModule] {
	stmts := make([]ImpStmt, len(m.Bindings))
	for i, b := range m.Bindings {
		stmts[i] = ImpStmt{Name: b.Name, Type: b.Type, Expr: b.Expr}
	}
	return toppass.Pure(&ImpModule{Stmts: stmts})
}
