// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package passes implements the pass collaborators the pipeline driver
// wires together: deshadow, type inference, normalization, simplification,
// imperative lowering, and JIT evaluation, plus their post-condition
// checkers and the IRs that flow between them.
//
// The language fragment implemented here is intentionally small — integer
// and boolean literals, top-level name := expr bindings, variable
// references, and the arithmetic operators +, -, * — just enough surface
// to exercise every invariant the driver relies on (de-shadowing,
// unbound-variable detection, ANF, constant folding, imperative lowering).
package passes
