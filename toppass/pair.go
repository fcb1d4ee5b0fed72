// © The dexcore Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package toppass

// Pair holds two values. AndThen uses Pair[E1, E2] as the product
// environment for two composed top passes.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
