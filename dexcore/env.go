// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dexcore

import "github.com/dexlang-go/dexcore/passes"

// TopEnv is the session-level binding environment: a mapping from
// fully-qualified names to typed bindings, forming a commutative-with-
// shadowing monoid. Defined in the passes package, since type-infer and
// simplify both need to read it while lowering an IR.
type TopEnv = passes.TopEnv

// EmptyTopEnv returns the identity element of the TopEnv monoid: the
// session's starting environment.
func EmptyTopEnv() TopEnv { return passes.EmptyTopEnv() }
